package inventory_test

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Simulan el comportamiento
// observable de los repos Postgres: (nil, nil) cuando no hay fila, errores
// inyectables por operación, y rollback por snapshot en el fakeTxRunner.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	getErr    error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) GetByEmail(_ context.Context, email string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(f.companies))
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
}

func (f *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	f.warehouses[w.ID] = w
	return nil
}

func (f *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}

func (f *fakeWarehouseRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.warehouses {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[string]*entity.Supplier)}
}

func (f *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}

func (f *fakeSupplierRepo) List(_ context.Context, _, _ int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range f.suppliers {
		out = append(out, s)
	}
	return out, nil
}

type fakeProductRepo struct {
	products  map[string]*entity.Product
	createErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeInventoryRepo struct {
	inventories map[string]*entity.Inventory
	candidates  []repository.LowStockCandidate
	createErr   error
	queryErr    error
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{inventories: make(map[string]*entity.Inventory)}
}

func (f *fakeInventoryRepo) Create(_ context.Context, inv *entity.Inventory) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.inventories[inv.ID] = inv
	return nil
}

func (f *fakeInventoryRepo) GetByProductAndWarehouse(_ context.Context, productID, warehouseID string) (*entity.Inventory, error) {
	for _, inv := range f.inventories {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.Inventory, error) {
	return f.GetByProductAndWarehouse(ctx, productID, warehouseID)
}

func (f *fakeInventoryRepo) UpdateQuantity(_ context.Context, inventoryID string, quantity int) error {
	if inv, ok := f.inventories[inventoryID]; ok {
		inv.Quantity = quantity
	}
	return nil
}

func (f *fakeInventoryRepo) GetLowStockCandidates(_ context.Context, _ string) ([]repository.LowStockCandidate, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.candidates, nil
}

type fakeSaleRepo struct {
	sales       []*entity.Sale
	recentByInv map[string]int
	sumErr      error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{recentByInv: make(map[string]int)}
}

func (f *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	f.sales = append(f.sales, s)
	return nil
}

func (f *fakeSaleRepo) SumRecentByInventory(_ context.Context, inventoryIDs []string, _ time.Time) (map[string]int, error) {
	if f.sumErr != nil {
		return nil, f.sumErr
	}
	out := make(map[string]int)
	for _, id := range inventoryIDs {
		if n, ok := f.recentByInv[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

type fakeLogRepo struct {
	entries []*entity.InventoryLog
}

func (f *fakeLogRepo) Append(_ context.Context, l *entity.InventoryLog) error {
	f.entries = append(f.entries, l)
	return nil
}

// fakeTxRunner pasa los fakes al callback y simula el rollback restaurando un
// snapshot de productos e inventario cuando el callback devuelve error: nada
// escrito dentro de la "tx" fallida sobrevive.
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	invRepo     *fakeInventoryRepo
	logRepo     *fakeLogRepo
	saleRepo    *fakeSaleRepo
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{
		productRepo: newFakeProductRepo(),
		invRepo:     newFakeInventoryRepo(),
		logRepo:     &fakeLogRepo{},
		saleRepo:    newFakeSaleRepo(),
	}
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	logRepo repository.InventoryLogRepository,
	saleRepo repository.SaleRepository,
) error) error {
	productSnap := snapshotEntities(f.productRepo.products)
	invSnap := snapshotEntities(f.invRepo.inventories)
	logSnap := len(f.logRepo.entries)
	saleSnap := len(f.saleRepo.sales)

	if err := fn(f.productRepo, f.invRepo, f.logRepo, f.saleRepo); err != nil {
		f.productRepo.products = productSnap
		f.invRepo.inventories = invSnap
		f.logRepo.entries = f.logRepo.entries[:logSnap]
		f.saleRepo.sales = f.saleRepo.sales[:saleSnap]
		return err
	}
	return nil
}

// snapshotEntities copia el mapa Y las entidades apuntadas: las mutaciones en
// sitio (UpdateQuantity) no deben sobrevivir a un rollback simulado.
func snapshotEntities[V any](m map[string]*V) map[string]*V {
	out := make(map[string]*V, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}

type fakeAlertsCache struct {
	store  map[string]*dto.LowStockAlertsResponse
	getErr error
	setErr error
	gets   int
	sets   int
}

func newFakeAlertsCache() *fakeAlertsCache {
	return &fakeAlertsCache{store: make(map[string]*dto.LowStockAlertsResponse)}
}

func (f *fakeAlertsCache) Get(_ context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.store[companyID], nil
}

func (f *fakeAlertsCache) Set(_ context.Context, companyID string, resp *dto.LowStockAlertsResponse) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.store[companyID] = resp
	return nil
}
