package dto

import "time"

// AdjustStockRequest entrada para un ajuste manual de stock (entrada o merma).
// QuantityChange es puntero para distinguir "ausente" de cero; cero se rechaza.
type AdjustStockRequest struct {
	ProductID      string `json:"product_id" validate:"required"`
	WarehouseID    string `json:"warehouse_id" validate:"required"`
	QuantityChange *int   `json:"quantity_change" validate:"required"`
	Reason         string `json:"reason" validate:"required,min=1,max=200"`
}

// RecordSaleRequest entrada para registrar una venta sobre una bodega.
// SaleDate opcional: vacío = ahora.
type RecordSaleRequest struct {
	ProductID    string     `json:"product_id" validate:"required"`
	WarehouseID  string     `json:"warehouse_id" validate:"required"`
	QuantitySold int        `json:"quantity_sold" validate:"required,min=1"`
	SaleDate     *time.Time `json:"sale_date"`
}
