package stock

// SalesWindowDays es la ventana fija de "ventas recientes" para el motor de alertas.
const SalesWindowDays = 30

// DaysUntilStockout implementa la proyección de quiebre de stock (servicio de dominio).
// VelocidadDiaria = VentasRecientes / DíasVentana; Días = floor(Stock / VelocidadDiaria).
// Devuelve nil cuando la velocidad es cero o negativa: sin ventas no hay proyección
// posible (y nunca una división por cero).
func DaysUntilStockout(quantity, recentSales, windowDays int) *int {
	if windowDays <= 0 || recentSales <= 0 {
		return nil
	}
	avgDaily := float64(recentSales) / float64(windowDays)
	if avgDaily <= 0 {
		return nil
	}
	days := int(float64(quantity) / avgDaily) // truncamiento hacia cero
	return &days
}
