package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// SKU es único a nivel global (constraint en DB); el stock se maneja por bodega en Inventory.
// LowStockThreshold es la cantidad a partir de la cual (inclusive) el producto
// se considera bajo de stock en una bodega.
type Product struct {
	ID                string
	SupplierID        *string // nil = sin proveedor asignado
	SKU               string
	Name              string
	Price             decimal.Decimal
	IsBundle          bool
	LowStockThreshold int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
