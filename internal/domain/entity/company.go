package entity

import "time"

// Company representa una organización/tenant de la plataforma de bodegas.
// El email de contacto es único a nivel global (constraint en DB).
type Company struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
