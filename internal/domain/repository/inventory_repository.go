package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// LowStockCandidate es el resultado crudo del join Product×Inventory×Warehouse×Supplier
// para una fila de inventario en o por debajo del umbral del producto.
type LowStockCandidate struct {
	InventoryID   string
	Quantity      int
	ProductID     string
	ProductName   string
	SKU           string
	Threshold     int
	WarehouseID   string
	WarehouseName string
	SupplierID    string
	SupplierName  string
	SupplierEmail string
}

// InventoryRepository define el puerto para el stock por producto+bodega (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido dentro de una tx.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByProductAndWarehouse(ctx context.Context, productID, warehouseID string) (*entity.Inventory, error)
	GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.Inventory, error)
	UpdateQuantity(ctx context.Context, inventoryID string, quantity int) error

	// GetLowStockCandidates devuelve las filas de inventario de la empresa cuyo
	// stock actual es menor o igual al umbral del producto. Join interno con
	// products, warehouses y suppliers: un producto sin proveedor queda excluido
	// en silencio. Orden determinista: product_id ascendente, luego warehouse_id.
	GetLowStockCandidates(ctx context.Context, companyID string) ([]LowStockCandidate, error)
}
