package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/internal/domain/stock"
)

// LowStockAlertsUseCase calcula las alertas de stock bajo de una empresa.
//
// Para cada par (producto, bodega) en o por debajo del umbral, suma las ventas
// de los últimos 30 días (límite inferior inclusivo) y proyecta los días hasta
// el quiebre. Los candidatos sin ventas recientes NO generan alerta: están
// dormidos, no urgentes (regla de negocio, no un bug). Lectura pura: el motor
// nunca escribe.
type LowStockAlertsUseCase struct {
	companyRepo repository.CompanyRepository
	invRepo     repository.InventoryRepository
	saleRepo    repository.SaleRepository
	cache       AlertsCache // nil = sin cache
	log         zerolog.Logger
}

// NewLowStockAlertsUseCase construye el motor de alertas. cache puede ser nil.
func NewLowStockAlertsUseCase(
	companyRepo repository.CompanyRepository,
	invRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
	cache AlertsCache,
	log zerolog.Logger,
) *LowStockAlertsUseCase {
	return &LowStockAlertsUseCase{
		companyRepo: companyRepo,
		invRepo:     invRepo,
		saleRepo:    saleRepo,
		cache:       cache,
		log:         log,
	}
}

// GetLowStockAlerts devuelve las alertas de la empresa indicada.
// Única ruta de error de negocio: empresa inexistente (ErrNotFound).
// Lista vacía es un resultado normal, no un error.
func (uc *LowStockAlertsUseCase) GetLowStockAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, companyID); err != nil {
			// Cache caído = cache miss; el cálculo sigue contra la DB.
			uc.log.Warn().Err(err).Str("company_id", companyID).Msg("cache de alertas no disponible")
		} else if cached != nil {
			return cached, nil
		}
	}

	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	candidates, err := uc.invRepo.GetLowStockCandidates(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := &dto.LowStockAlertsResponse{Alerts: []dto.LowStockAlertDTO{}}
	if len(candidates) == 0 {
		uc.setCache(ctx, companyID, resp)
		return resp, nil
	}

	// Una sola consulta agregada GROUP BY inventory_id para todos los candidatos
	// (nada de una query por fila). Ids sin ventas en la ventana → 0.
	since := time.Now().AddDate(0, 0, -stock.SalesWindowDays)
	inventoryIDs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		inventoryIDs = append(inventoryIDs, c.InventoryID)
	}
	recentByInv, err := uc.saleRepo.SumRecentByInventory(ctx, inventoryIDs, since)
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		recent := recentByInv[c.InventoryID]
		if recent <= 0 {
			continue
		}
		resp.Alerts = append(resp.Alerts, dto.LowStockAlertDTO{
			ProductID:         c.ProductID,
			ProductName:       c.ProductName,
			SKU:               c.SKU,
			WarehouseID:       c.WarehouseID,
			WarehouseName:     c.WarehouseName,
			CurrentStock:      c.Quantity,
			Threshold:         c.Threshold,
			DaysUntilStockout: stock.DaysUntilStockout(c.Quantity, recent, stock.SalesWindowDays),
			Supplier: dto.AlertSupplierDTO{
				ID:           c.SupplierID,
				Name:         c.SupplierName,
				ContactEmail: c.SupplierEmail,
			},
		})
	}
	resp.TotalAlerts = len(resp.Alerts)

	uc.setCache(ctx, companyID, resp)
	return resp, nil
}

func (uc *LowStockAlertsUseCase) setCache(ctx context.Context, companyID string, resp *dto.LowStockAlertsResponse) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, companyID, resp); err != nil {
		uc.log.Warn().Err(err).Str("company_id", companyID).Msg("no se pudo cachear alertas")
	}
}
