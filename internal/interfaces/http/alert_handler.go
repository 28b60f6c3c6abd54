package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	appinventory "github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
)

// AlertHandler expone el motor de alertas de stock bajo en JSON y en PDF.
type AlertHandler struct {
	alertsUC  *appinventory.LowStockAlertsUseCase
	companyUC *usecase.CompanyUseCase
	reportGen appinventory.AlertReportGenerator
	log       zerolog.Logger
}

// NewAlertHandler construye el handler. reportGen puede ser nil si el
// endpoint PDF no se registra.
func NewAlertHandler(
	alertsUC *appinventory.LowStockAlertsUseCase,
	companyUC *usecase.CompanyUseCase,
	reportGen appinventory.AlertReportGenerator,
	log zerolog.Logger,
) *AlertHandler {
	return &AlertHandler{alertsUC: alertsUC, companyUC: companyUC, reportGen: reportGen, log: log}
}

// GetLowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Lista los ítems de inventario de la empresa cuyo stock está en
//
//	o por debajo del umbral del producto, con proyección de días
//	hasta agotarse según las ventas de los últimos 30 días.
//
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	out, err := h.alertsUC.GetLowStockAlerts(c.Context(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		h.log.Error().Err(err).Str("company_id", companyID).Msg("alertas de stock bajo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// GetLowStockPDF godoc
// @Summary      Alertas de stock bajo en PDF
// @Description  El mismo listado de alertas, renderizado como reporte PDF
//
//	para reabastecimiento.
//
// @Tags         alerts
// @Produce      application/pdf
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock/pdf [get]
func (h *AlertHandler) GetLowStockPDF(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	out, err := h.alertsUC.GetLowStockAlerts(c.Context(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		h.log.Error().Err(err).Str("company_id", companyID).Msg("alertas de stock bajo (pdf)")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}

	company, err := h.companyUC.GetByID(c.Context(), companyID)
	if err != nil || company == nil {
		h.log.Error().Err(err).Str("company_id", companyID).Msg("empresa para reporte pdf")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}

	pdfBytes, err := h.reportGen.GenerateLowStockPDF(c.Context(), company.Name, out.Alerts)
	if err != nil {
		h.log.Error().Err(err).Str("company_id", companyID).Msg("generar reporte pdf")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="alertas-stock-bajo.pdf"`)
	return c.Send(pdfBytes)
}
