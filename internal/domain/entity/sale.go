package entity

import "time"

// Sale registra un evento de venta (append-only) sobre una fila de Inventory.
// Es la única dependencia de lectura del motor de alertas además del stock actual.
type Sale struct {
	ID           string
	InventoryID  string
	QuantitySold int
	SaleDate     time.Time
	CreatedAt    time.Time
}
