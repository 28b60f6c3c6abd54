package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	appinventory "github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	SupplierUC    *usecase.SupplierUseCase
	ProductUC     *usecase.ProductUseCase
	CreateProduct *appinventory.CreateProductUseCase
	BundleUC      *appinventory.BundleUseCase
	AdjustStock   *appinventory.AdjustStockUseCase
	RecordSale    *appinventory.RecordSaleUseCase
	LowStockUC    *appinventory.LowStockAlertsUseCase
	ReportGen     appinventory.AlertReportGenerator
	Log           zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Warehouses por empresa
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	companies.Post("/:companyId/warehouses", warehouseHandler.Create)
	companies.Get("/:companyId/warehouses", warehouseHandler.ListByCompany)
	api.Get("/warehouses/:id", warehouseHandler.GetByID)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Products: el registro producto+inventario cuelga de la empresa
	productHandler := NewProductHandler(deps.CreateProduct, deps.ProductUC, deps.BundleUC, deps.Log)
	companies.Post("/:companyId/products", productHandler.Create)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/bundle", productHandler.SetBundle)
	products.Get("/:id/bundle", productHandler.GetBundle)

	// Movimientos de inventario y ventas
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.RecordSale, deps.Log)
	api.Post("/inventory/adjustments", inventoryHandler.Adjust)
	api.Post("/sales", inventoryHandler.RecordSale)

	// Motor de alertas de stock bajo
	alertHandler := NewAlertHandler(deps.LowStockUC, deps.CompanyUC, deps.ReportGen, deps.Log)
	companies.Get("/:companyId/alerts/low-stock", alertHandler.GetLowStock)
	companies.Get("/:companyId/alerts/low-stock/pdf", alertHandler.GetLowStockPDF)
}
