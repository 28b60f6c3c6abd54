package inventory

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateProductUseCase registra un producto junto con su fila de inventario
// inicial como UNA sola transacción: ningún fallo parcial deja un producto
// huérfano sin inventario. El pre-chequeo de SKU da feedback rápido; la guarda
// real contra la carrera check-then-act es el constraint único en DB (23505),
// que el repositorio mapea a ErrDuplicate dentro de la tx.
type CreateProductUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	companyRepo   repository.CompanyRepository
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		companyRepo:   companyRepo,
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
	}
}

// Create valida la entrada, verifica SKU y bodega, y crea producto + inventario
// inicial (+ bitácora) de forma atómica.
func (uc *CreateProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	// La bodega debe existir y pertenecer a la empresa de la ruta.
	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	var supplierID *string
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		supplierID = &in.SupplierID
	}

	// Pre-chequeo optimista de unicidad de SKU (feedback rápido, sin tocar la tx).
	existing, _ := uc.productRepo.GetBySKU(ctx, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		SupplierID:        supplierID,
		SKU:               in.SKU,
		Name:              in.Name,
		Price:             *in.Price,
		IsBundle:          in.IsBundle,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	inv := &entity.Inventory{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		WarehouseID: in.WarehouseID,
		Quantity:    *in.InitialQuantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		logRepo repository.InventoryLogRepository,
		_ repository.SaleRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if err := invRepo.Create(ctx, inv); err != nil {
			return err
		}
		return logRepo.Append(ctx, &entity.InventoryLog{
			ID:             uuid.New().String(),
			InventoryID:    inv.ID,
			QuantityChange: inv.Quantity,
			Reason:         entity.LogReasonInitialStock,
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{
		Message: "producto creado",
		Product: dto.CreatedProduct{ID: product.ID, Name: product.Name, SKU: product.SKU},
	}, nil
}
