package dto

// AlertSupplierDTO datos de contacto del proveedor dentro de una alerta.
type AlertSupplierDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
}

// LowStockAlertDTO una alerta de stock bajo para un par (producto, bodega).
// DaysUntilStockout es nil cuando la velocidad de venta es cero (sin proyección).
type LowStockAlertDTO struct {
	ProductID         string           `json:"productId"`
	ProductName       string           `json:"productName"`
	SKU               string           `json:"sku"`
	WarehouseID       string           `json:"warehouseId"`
	WarehouseName     string           `json:"warehouseName"`
	CurrentStock      int              `json:"currentStock"`
	Threshold         int              `json:"threshold"`
	DaysUntilStockout *int             `json:"daysUntilStockout"`
	Supplier          AlertSupplierDTO `json:"supplier"`
}

// LowStockAlertsResponse respuesta del motor de alertas.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"totalAlerts"`
}
