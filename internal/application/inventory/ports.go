package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las escrituras de
// inventario: todo se confirma o nada sobrevive (Commit/Rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		logRepo repository.InventoryLogRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// AlertsCache cachea respuestas del motor de alertas por empresa (TTL corto).
// Get devuelve (nil, nil) en cache miss; un error de cache nunca debe tumbar
// la petición, el caller lo degrada a miss.
type AlertsCache interface {
	Get(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error)
	Set(ctx context.Context, companyID string, resp *dto.LowStockAlertsResponse) error
}

// AlertReportGenerator renderiza el listado de alertas como documento PDF.
type AlertReportGenerator interface {
	GenerateLowStockPDF(ctx context.Context, companyName string, alerts []dto.LowStockAlertDTO) ([]byte, error)
}
