// seed aplica el esquema base y carga datos de demostración: una empresa con
// dos bodegas, proveedores, productos con umbral de stock bajo, inventario y
// ventas recientes para ejercitar el motor de alertas.
//
// Uso: go run ./cmd/seed
// Requiere las mismas variables de entorno que el API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/almacen-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Esquema primero: el script es idempotente (CREATE IF NOT EXISTS).
	schemaPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "001_init.sql")
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "leer esquema: %v\n", err)
		os.Exit(1)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "aplicar esquema: %v\n", err)
		os.Exit(1)
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)

	now := time.Now()

	company := &entity.Company{
		ID:        uuid.NewString(),
		Name:      "Distribuidora Andina",
		Email:     "demo@distribuidora-andina.co",
		CreatedAt: now,
		UpdatedAt: now,
	}
	must(companyRepo.Create(ctx, company), "empresa")

	bodegaNorte := &entity.Warehouse{
		ID: uuid.NewString(), CompanyID: company.ID,
		Name: "Bodega Norte", Location: "Bogotá",
		CreatedAt: now, UpdatedAt: now,
	}
	bodegaSur := &entity.Warehouse{
		ID: uuid.NewString(), CompanyID: company.ID,
		Name: "Bodega Sur", Location: "Cali",
		CreatedAt: now, UpdatedAt: now,
	}
	must(warehouseRepo.Create(ctx, bodegaNorte), "bodega norte")
	must(warehouseRepo.Create(ctx, bodegaSur), "bodega sur")

	proveedor := &entity.Supplier{
		ID: uuid.NewString(), Name: "Importaciones del Pacífico",
		Email: "ventas@pacifico-import.co", Phone: "+57 601 555 0101",
		CreatedAt: now, UpdatedAt: now,
	}
	must(supplierRepo.Create(ctx, proveedor), "proveedor")

	// Producto con stock bajo y ventas recientes: dispara alerta con proyección.
	cafe := &entity.Product{
		ID: uuid.NewString(), SupplierID: &proveedor.ID,
		SKU: "CAFE-500G", Name: "Café de origen 500g",
		Price: decimal.NewFromFloat(28.50), LowStockThreshold: 10,
		CreatedAt: now, UpdatedAt: now,
	}
	// Producto con stock bajo pero sin ventas: alerta sin proyección.
	panela := &entity.Product{
		ID: uuid.NewString(), SupplierID: &proveedor.ID,
		SKU: "PANELA-1KG", Name: "Panela orgánica 1kg",
		Price: decimal.NewFromFloat(9.90), LowStockThreshold: 5,
		CreatedAt: now, UpdatedAt: now,
	}
	// Producto con stock holgado: no dispara alerta.
	arroz := &entity.Product{
		ID: uuid.NewString(), SupplierID: &proveedor.ID,
		SKU: "ARROZ-5KG", Name: "Arroz premium 5kg",
		Price: decimal.NewFromFloat(15.00), LowStockThreshold: 20,
		CreatedAt: now, UpdatedAt: now,
	}
	must(productRepo.Create(ctx, cafe), "producto café")
	must(productRepo.Create(ctx, panela), "producto panela")
	must(productRepo.Create(ctx, arroz), "producto arroz")

	invCafe := &entity.Inventory{
		ID: uuid.NewString(), ProductID: cafe.ID, WarehouseID: bodegaNorte.ID,
		Quantity: 6, CreatedAt: now, UpdatedAt: now,
	}
	invPanela := &entity.Inventory{
		ID: uuid.NewString(), ProductID: panela.ID, WarehouseID: bodegaSur.ID,
		Quantity: 3, CreatedAt: now, UpdatedAt: now,
	}
	invArroz := &entity.Inventory{
		ID: uuid.NewString(), ProductID: arroz.ID, WarehouseID: bodegaNorte.ID,
		Quantity: 120, CreatedAt: now, UpdatedAt: now,
	}
	must(inventoryRepo.Create(ctx, invCafe), "inventario café")
	must(inventoryRepo.Create(ctx, invPanela), "inventario panela")
	must(inventoryRepo.Create(ctx, invArroz), "inventario arroz")

	// Ventas de café repartidas en las últimas dos semanas (30 unidades):
	// con 6 en stock la proyección da 6 días hasta agotarse.
	for i := 0; i < 10; i++ {
		sale := &entity.Sale{
			ID:           uuid.NewString(),
			InventoryID:  invCafe.ID,
			QuantitySold: 3,
			SaleDate:     now.AddDate(0, 0, -(i + 1)),
			CreatedAt:    now,
		}
		must(saleRepo.Create(ctx, sale), "venta café")
	}

	fmt.Printf("Datos de demo listos. Empresa: %s\n", company.ID)
	fmt.Printf("Alertas: GET /api/companies/%s/alerts/low-stock\n", company.ID)
}

func must(err error, what string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "sembrar %s: %v\n", what, err)
		os.Exit(1)
	}
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
