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

// RecordSaleUseCase registra una venta de forma transaccional: bloquea la fila
// de inventario, verifica stock suficiente, descuenta, inserta la venta
// (alimento del motor de alertas) y deja rastro en inventory_logs.
type RecordSaleUseCase struct {
	txRunner TxRunner
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner}
}

// Record valida y registra la venta. Stock insuficiente → ErrInsufficientStock.
func (uc *RecordSaleUseCase) Record(ctx context.Context, in dto.RecordSaleRequest) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	saleDate := now
	if in.SaleDate != nil {
		saleDate = *in.SaleDate
	}

	return uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		invRepo repository.InventoryRepository,
		logRepo repository.InventoryLogRepository,
		saleRepo repository.SaleRepository,
	) error {
		inv, err := invRepo.GetForUpdate(ctx, in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if inv.Quantity < in.QuantitySold {
			return domain.ErrInsufficientStock
		}
		if err := invRepo.UpdateQuantity(ctx, inv.ID, inv.Quantity-in.QuantitySold); err != nil {
			return err
		}
		if err := saleRepo.Create(ctx, &entity.Sale{
			ID:           uuid.New().String(),
			InventoryID:  inv.ID,
			QuantitySold: in.QuantitySold,
			SaleDate:     saleDate,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		return logRepo.Append(ctx, &entity.InventoryLog{
			ID:             uuid.New().String(),
			InventoryID:    inv.ID,
			QuantityChange: -in.QuantitySold,
			Reason:         entity.LogReasonSale,
			CreatedAt:      now,
		})
	})
}
