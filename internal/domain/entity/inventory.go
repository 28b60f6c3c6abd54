package entity

import "time"

// Inventory representa el stock actual de un producto en una bodega.
// El par (ProductID, WarehouseID) es único: a lo sumo una fila por producto y bodega.
type Inventory struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
