package entity

import "time"

// Supplier representa un proveedor independiente que abastece productos.
// No pertenece a ninguna empresa: varias empresas pueden comprarle al mismo proveedor.
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
