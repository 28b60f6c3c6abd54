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

// ProductHandler maneja las peticiones HTTP para Product, incluido el registro
// transaccional producto+inventario y la composición de bundles.
type ProductHandler struct {
	createUC *appinventory.CreateProductUseCase
	readUC   *usecase.ProductUseCase
	bundleUC *appinventory.BundleUseCase
	log      zerolog.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(
	createUC *appinventory.CreateProductUseCase,
	readUC *usecase.ProductUseCase,
	bundleUC *appinventory.BundleUseCase,
	log zerolog.Logger,
) *ProductHandler {
	return &ProductHandler{createUC: createUC, readUC: readUC, bundleUC: bundleUC, log: log}
}

// Create godoc
// @Summary      Crear producto con inventario inicial
// @Description  Crea el producto y su fila de inventario en la bodega indicada
//
//	como una sola transacción: o ambos existen o ninguno.
//
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        body       body  dto.CreateProductRequest  true  "name, sku, price, warehouseId, initialQuantity"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.Create(c.Context(), companyID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, sku, price, warehouseId e initialQuantity son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa, bodega o proveedor no encontrado"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un producto con ese SKU"})
		}
		// Sin detalle interno en la respuesta; el error completo va al log.
		h.log.Error().Err(err).Str("company_id", companyID).Msg("crear producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.readUC.GetByID(c.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("product_id", id).Msg("obtener producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.readUC.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		h.log.Error().Err(err).Msg("listar productos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// SetBundle godoc
// @Summary      Reemplazar composición de un bundle
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto bundle"
// @Param        body  body  dto.SetBundleRequest  true  "Componentes"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/bundle [put]
func (h *ProductHandler) SetBundle(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.SetBundleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.bundleUC.SetComponents(c.Context(), id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "composición inválida (el producto debe ser bundle y no contenerse a sí mismo)"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		h.log.Error().Err(err).Str("product_id", id).Msg("definir bundle")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(fiber.Map{"message": "composición actualizada"})
}

// GetBundle godoc
// @Summary      Obtener composición de un bundle
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto bundle"
// @Success      200  {object}  dto.BundleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/bundle [get]
func (h *ProductHandler) GetBundle(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.bundleUC.GetComponents(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		h.log.Error().Err(err).Str("product_id", id).Msg("obtener bundle")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
