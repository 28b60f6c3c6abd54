package entity

import "time"

// Razones estándar para entradas en inventory_logs.
const (
	LogReasonInitialStock = "initial_stock"
	LogReasonSale         = "sale"
	LogReasonAdjustment   = "adjustment"
)

// InventoryLog es el registro de auditoría (append-only) de cambios de stock.
// Referencia la fila de Inventory afectada; nunca se lee desde el motor de alertas.
type InventoryLog struct {
	ID             string
	InventoryID    string
	QuantityChange int
	Reason         string
	CreatedAt      time.Time
}
