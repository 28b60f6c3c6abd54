package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// InventoryLogRepository define el puerto para la bitácora de stock (solo escritura).
type InventoryLogRepository interface {
	Append(ctx context.Context, log *entity.InventoryLog) error
}
