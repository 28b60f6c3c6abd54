package entity

import "time"

// Warehouse representa una bodega de una empresa (multi-bodega por tenant).
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
