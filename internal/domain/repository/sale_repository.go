package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// SaleRepository define el puerto para el registro de ventas (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error

	// SumRecentByInventory agrega la cantidad vendida por fila de inventario desde
	// `since` (inclusive) en UNA sola consulta GROUP BY sobre todos los ids.
	// Los ids sin ventas en la ventana simplemente no aparecen en el mapa.
	SumRecentByInventory(ctx context.Context, inventoryIDs []string, since time.Time) (map[string]int, error)
}
