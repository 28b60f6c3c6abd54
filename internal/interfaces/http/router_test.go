package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appinventory "github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	infrapdf "github.com/tu-usuario/almacen-api/internal/infrastructure/pdf"
	apphttp "github.com/tu-usuario/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos, suficientes para probar el contrato HTTP de
// extremo a extremo con app.Test (sin base de datos). La "tx" comparte los
// mismos repos en memoria; aquí no se simula rollback, eso se prueba en la
// capa de aplicación.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID   = "00000000-0000-0000-0000-00000000c0a1"
	testWarehouseID = "00000000-0000-0000-0000-00000000b0d1"
)

type stubCompanies struct{ m map[string]*entity.Company }

func (s *stubCompanies) Create(_ context.Context, c *entity.Company) error { s.m[c.ID] = c; return nil }
func (s *stubCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return s.m[id], nil
}
func (s *stubCompanies) GetByEmail(_ context.Context, email string) (*entity.Company, error) {
	for _, c := range s.m {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}
func (s *stubCompanies) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range s.m {
		out = append(out, c)
	}
	return out, nil
}

type stubWarehouses struct{ m map[string]*entity.Warehouse }

func (s *stubWarehouses) Create(_ context.Context, w *entity.Warehouse) error {
	s.m[w.ID] = w
	return nil
}
func (s *stubWarehouses) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return s.m[id], nil
}
func (s *stubWarehouses) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range s.m {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

type stubSuppliers struct{ m map[string]*entity.Supplier }

func (s *stubSuppliers) Create(_ context.Context, sp *entity.Supplier) error {
	s.m[sp.ID] = sp
	return nil
}
func (s *stubSuppliers) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return s.m[id], nil
}
func (s *stubSuppliers) List(_ context.Context, _, _ int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, sp := range s.m {
		out = append(out, sp)
	}
	return out, nil
}

type stubProducts struct{ m map[string]*entity.Product }

func (s *stubProducts) Create(_ context.Context, p *entity.Product) error { s.m[p.ID] = p; return nil }
func (s *stubProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return s.m[id], nil
}
func (s *stubProducts) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range s.m {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (s *stubProducts) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range s.m {
		out = append(out, p)
	}
	return out, nil
}

type stubInventories struct {
	m          map[string]*entity.Inventory
	candidates []repository.LowStockCandidate
}

func (s *stubInventories) Create(_ context.Context, inv *entity.Inventory) error {
	s.m[inv.ID] = inv
	return nil
}
func (s *stubInventories) GetByProductAndWarehouse(_ context.Context, productID, warehouseID string) (*entity.Inventory, error) {
	for _, inv := range s.m {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			return inv, nil
		}
	}
	return nil, nil
}
func (s *stubInventories) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.Inventory, error) {
	return s.GetByProductAndWarehouse(ctx, productID, warehouseID)
}
func (s *stubInventories) UpdateQuantity(_ context.Context, inventoryID string, quantity int) error {
	if inv, ok := s.m[inventoryID]; ok {
		inv.Quantity = quantity
	}
	return nil
}
func (s *stubInventories) GetLowStockCandidates(_ context.Context, _ string) ([]repository.LowStockCandidate, error) {
	return s.candidates, nil
}

type stubSales struct {
	sales       []*entity.Sale
	recentByInv map[string]int
}

func (s *stubSales) Create(_ context.Context, sale *entity.Sale) error {
	s.sales = append(s.sales, sale)
	return nil
}
func (s *stubSales) SumRecentByInventory(_ context.Context, ids []string, _ time.Time) (map[string]int, error) {
	out := make(map[string]int)
	for _, id := range ids {
		if n, ok := s.recentByInv[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

type stubLogs struct{ entries []*entity.InventoryLog }

func (s *stubLogs) Append(_ context.Context, l *entity.InventoryLog) error {
	s.entries = append(s.entries, l)
	return nil
}

type stubBundles struct{ m map[string][]entity.BundleComponent }

func (s *stubBundles) ReplaceComponents(_ context.Context, bundleProductID string, components []entity.BundleComponent) error {
	s.m[bundleProductID] = components
	return nil
}
func (s *stubBundles) ListComponents(_ context.Context, bundleProductID string) ([]entity.BundleComponent, error) {
	return s.m[bundleProductID], nil
}

// stubTx pasa los mismos repos en memoria al callback, sin rollback.
type stubTx struct {
	products    *stubProducts
	inventories *stubInventories
	logs        *stubLogs
	sales       *stubSales
}

func (s *stubTx) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	logRepo repository.InventoryLogRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(s.products, s.inventories, s.logs, s.sales)
}

type testEnv struct {
	app         *fiber.App
	inventories *stubInventories
	sales       *stubSales
	products    *stubProducts
}

// newTestEnv arma la aplicación Fiber completa con el router de producción y
// fakes detrás: una empresa y una bodega ya sembradas.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	companies := &stubCompanies{m: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, Name: "Distribuidora Andina", Email: "demo@andina.co"},
	}}
	warehouses := &stubWarehouses{m: map[string]*entity.Warehouse{
		testWarehouseID: {ID: testWarehouseID, CompanyID: testCompanyID, Name: "Bodega Norte"},
	}}
	suppliers := &stubSuppliers{m: make(map[string]*entity.Supplier)}
	products := &stubProducts{m: make(map[string]*entity.Product)}
	inventories := &stubInventories{m: make(map[string]*entity.Inventory)}
	sales := &stubSales{recentByInv: make(map[string]int)}
	logs := &stubLogs{}
	bundles := &stubBundles{m: make(map[string][]entity.BundleComponent)}
	tx := &stubTx{products: products, inventories: inventories, logs: logs, sales: sales}

	log := zerolog.Nop()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:     usecase.NewCompanyUseCase(companies),
		WarehouseUC:   usecase.NewWarehouseUseCase(warehouses, companies),
		SupplierUC:    usecase.NewSupplierUseCase(suppliers),
		ProductUC:     usecase.NewProductUseCase(products),
		CreateProduct: appinventory.NewCreateProductUseCase(tx, products, companies, warehouses, suppliers),
		BundleUC:      appinventory.NewBundleUseCase(products, bundles),
		AdjustStock:   appinventory.NewAdjustStockUseCase(tx),
		RecordSale:    appinventory.NewRecordSaleUseCase(tx),
		LowStockUC:    appinventory.NewLowStockAlertsUseCase(companies, inventories, sales, nil, log),
		ReportGen:     infrapdf.NewMarotoReportGenerator(),
		Log:           log,
	})
	return &testEnv{app: app, inventories: inventories, sales: sales, products: products}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertasLowStock_EmpresaInexistenteDa404(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodGet, "/api/companies/no-existe/alerts/low-stock", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestAlertasLowStock_SinAlertasDevuelveListaVacia(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodGet, "/api/companies/"+testCompanyID+"/alerts/low-stock", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(0), body["totalAlerts"])
	alerts, ok := body["alerts"].([]any)
	require.True(t, ok, "alerts debe ser lista JSON, no null")
	assert.Empty(t, alerts)
}

func TestAlertasLowStock_PayloadCamelCaseConProyeccion(t *testing.T) {
	env := newTestEnv(t)
	env.inventories.candidates = []repository.LowStockCandidate{{
		InventoryID:   "inv-1",
		Quantity:      3,
		ProductID:     "prod-1",
		ProductName:   "Café de origen 500g",
		SKU:           "CAFE-500G",
		Threshold:     10,
		WarehouseID:   testWarehouseID,
		WarehouseName: "Bodega Norte",
		SupplierID:    "sup-1",
		SupplierName:  "Importaciones del Pacífico",
		SupplierEmail: "ventas@pacifico-import.co",
	}}
	env.sales.recentByInv["inv-1"] = 30 // 1/día → 3 días con stock 3

	resp := doJSON(t, env.app, http.MethodGet, "/api/companies/"+testCompanyID+"/alerts/low-stock", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["totalAlerts"])

	alerts := body["alerts"].([]any)
	require.Len(t, alerts, 1)
	alert := alerts[0].(map[string]any)
	assert.Equal(t, "prod-1", alert["productId"])
	assert.Equal(t, "CAFE-500G", alert["sku"])
	assert.Equal(t, float64(3), alert["currentStock"])
	assert.Equal(t, float64(10), alert["threshold"])
	assert.Equal(t, float64(3), alert["daysUntilStockout"])

	supplier := alert["supplier"].(map[string]any)
	assert.Equal(t, "sup-1", supplier["id"])
	assert.Equal(t, "ventas@pacifico-import.co", supplier["contactEmail"])
}

func TestAlertasLowStock_PDFRespondeDocumento(t *testing.T) {
	env := newTestEnv(t)
	env.inventories.candidates = []repository.LowStockCandidate{{
		InventoryID: "inv-1", Quantity: 3, ProductID: "prod-1",
		ProductName: "Café", SKU: "CAFE-500G", Threshold: 10,
		WarehouseID: testWarehouseID, WarehouseName: "Bodega Norte",
		SupplierID: "sup-1", SupplierName: "Proveedor", SupplierEmail: "v@p.co",
	}}
	env.sales.recentByInv["inv-1"] = 30

	resp := doJSON(t, env.app, http.MethodGet, "/api/companies/"+testCompanyID+"/alerts/low-stock/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de producto + inventario inicial
// ──────────────────────────────────────────────────────────────────────────────

func createProductBody() map[string]any {
	return map[string]any{
		"name":              "Café de origen 500g",
		"sku":               "CAFE-500G",
		"price":             "28.50",
		"warehouseId":       testWarehouseID,
		"initialQuantity":   12,
		"lowStockThreshold": 10,
	}
}

func TestCrearProducto_201ConProductoEInventario(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/companies/"+testCompanyID+"/products", createProductBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "producto creado", body["message"])
	product := body["product"].(map[string]any)
	assert.NotEmpty(t, product["id"])
	assert.Equal(t, "CAFE-500G", product["sku"])

	// La fila de inventario existe junto con el producto.
	require.Len(t, env.inventories.m, 1)
	for _, inv := range env.inventories.m {
		assert.Equal(t, 12, inv.Quantity)
		assert.Equal(t, testWarehouseID, inv.WarehouseID)
	}
}

func TestCrearProducto_CampoFaltanteDa400(t *testing.T) {
	env := newTestEnv(t)

	body := createProductBody()
	delete(body, "sku")

	resp := doJSON(t, env.app, http.MethodPost, "/api/companies/"+testCompanyID+"/products", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, env.products.m, "ningún estado parcial debe crearse")
}

func TestCrearProducto_SKUDuplicadoDa409(t *testing.T) {
	env := newTestEnv(t)
	env.products.m["existente"] = &entity.Product{ID: "existente", SKU: "CAFE-500G"}

	resp := doJSON(t, env.app, http.MethodPost, "/api/companies/"+testCompanyID+"/products", createProductBody())
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "DUPLICATE", body["code"])
}

func TestCrearProducto_EmpresaInexistenteDa404(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/companies/fantasma/products", createProductBody())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos: ajustes y ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarVenta_201YDescuentaStock(t *testing.T) {
	env := newTestEnv(t)
	env.inventories.m["inv-1"] = &entity.Inventory{
		ID: "inv-1", ProductID: "prod-1", WarehouseID: testWarehouseID, Quantity: 10,
	}

	resp := doJSON(t, env.app, http.MethodPost, "/api/sales", map[string]any{
		"product_id":    "prod-1",
		"warehouse_id":  testWarehouseID,
		"quantity_sold": 4,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 6, env.inventories.m["inv-1"].Quantity)
	require.Len(t, env.sales.sales, 1)
}

func TestRegistrarVenta_StockInsuficienteDa409(t *testing.T) {
	env := newTestEnv(t)
	env.inventories.m["inv-1"] = &entity.Inventory{
		ID: "inv-1", ProductID: "prod-1", WarehouseID: testWarehouseID, Quantity: 2,
	}

	resp := doJSON(t, env.app, http.MethodPost, "/api/sales", map[string]any{
		"product_id":    "prod-1",
		"warehouse_id":  testWarehouseID,
		"quantity_sold": 5,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
}

func TestAjustarStock_200AplicaDelta(t *testing.T) {
	env := newTestEnv(t)
	env.inventories.m["inv-1"] = &entity.Inventory{
		ID: "inv-1", ProductID: "prod-1", WarehouseID: testWarehouseID, Quantity: 10,
	}

	resp := doJSON(t, env.app, http.MethodPost, "/api/inventory/adjustments", map[string]any{
		"product_id":      "prod-1",
		"warehouse_id":    testWarehouseID,
		"quantity_change": 5,
		"reason":          "reposición",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 15, env.inventories.m["inv-1"].Quantity)
}
