package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada del registro de producto + inventario inicial.
// Los nombres de campo siguen el contrato público del endpoint (camelCase).
// Price e InitialQuantity son punteros para distinguir "ausente" de cero.
type CreateProductRequest struct {
	Name              string           `json:"name" validate:"required,min=1,max=200"`
	SKU               string           `json:"sku" validate:"required,min=1,max=100"`
	Price             *decimal.Decimal `json:"price" validate:"required"`
	WarehouseID       string           `json:"warehouseId" validate:"required"`
	InitialQuantity   *int             `json:"initialQuantity" validate:"required,min=0"`
	SupplierID        string           `json:"supplierId"`
	IsBundle          bool             `json:"isBundle"`
	LowStockThreshold int              `json:"lowStockThreshold" validate:"min=0"`
}

// CreatedProduct resumen del producto recién creado.
type CreatedProduct struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// CreateProductResponse respuesta 201 del registro de producto.
type CreateProductResponse struct {
	Message string         `json:"message"`
	Product CreatedProduct `json:"product"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID                string          `json:"id"`
	SupplierID        *string         `json:"supplierId"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	IsBundle          bool            `json:"isBundle"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BundleComponentDTO línea de composición de un bundle.
type BundleComponentDTO struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// SetBundleRequest reemplaza la composición completa de un bundle.
type SetBundleRequest struct {
	Components []BundleComponentDTO `json:"components" validate:"required,min=1,dive"`
}

// BundleResponse composición actual de un bundle.
type BundleResponse struct {
	BundleProductID string               `json:"bundle_product_id"`
	Components      []BundleComponentDTO `json:"components"`
}
