package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// AdjustStockUseCase aplica un ajuste manual de stock (entrada o merma) de
// forma transaccional: bloquea la fila de inventario (SELECT FOR UPDATE),
// aplica el cambio y deja rastro en inventory_logs.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// Adjust valida y aplica el ajuste. Un cambio de cero o un resultado negativo
// se rechazan (ErrInvalidInput / ErrInsufficientStock).
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, in dto.AdjustStockRequest) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}
	change := *in.QuantityChange
	if change == 0 {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		invRepo repository.InventoryRepository,
		logRepo repository.InventoryLogRepository,
		_ repository.SaleRepository,
	) error {
		inv, err := invRepo.GetForUpdate(ctx, in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		newQty := inv.Quantity + change
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}
		if err := invRepo.UpdateQuantity(ctx, inv.ID, newQty); err != nil {
			return err
		}
		return logRepo.Append(ctx, &entity.InventoryLog{
			ID:             uuid.New().String(),
			InventoryID:    inv.ID,
			QuantityChange: change,
			Reason:         in.Reason,
			CreatedAt:      time.Now(),
		})
	})
}
