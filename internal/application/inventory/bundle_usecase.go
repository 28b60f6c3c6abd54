package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// BundleUseCase administra la composición de bundles (products que contienen
// otros products en cantidades fijas). La composición no participa en el
// motor de alertas; es parte del modelo compartido.
type BundleUseCase struct {
	productRepo repository.ProductRepository
	bundleRepo  repository.BundleRepository
}

// NewBundleUseCase construye el caso de uso.
func NewBundleUseCase(productRepo repository.ProductRepository, bundleRepo repository.BundleRepository) *BundleUseCase {
	return &BundleUseCase{productRepo: productRepo, bundleRepo: bundleRepo}
}

// SetComponents reemplaza la composición completa de un bundle.
// El producto debe existir, ser is_bundle y no contenerse a sí mismo.
func (uc *BundleUseCase) SetComponents(ctx context.Context, bundleProductID string, in dto.SetBundleRequest) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}
	bundle, err := uc.productRepo.GetByID(ctx, bundleProductID)
	if err != nil {
		return err
	}
	if bundle == nil {
		return domain.ErrNotFound
	}
	if !bundle.IsBundle {
		return domain.ErrInvalidInput
	}

	components := make([]entity.BundleComponent, 0, len(in.Components))
	for _, c := range in.Components {
		if c.ProductID == bundleProductID {
			return domain.ErrInvalidInput
		}
		component, err := uc.productRepo.GetByID(ctx, c.ProductID)
		if err != nil {
			return err
		}
		if component == nil {
			return domain.ErrNotFound
		}
		components = append(components, entity.BundleComponent{
			BundleProductID:    bundleProductID,
			ComponentProductID: c.ProductID,
			Quantity:           c.Quantity,
		})
	}
	return uc.bundleRepo.ReplaceComponents(ctx, bundleProductID, components)
}

// GetComponents devuelve la composición actual de un bundle.
func (uc *BundleUseCase) GetComponents(ctx context.Context, bundleProductID string) (*dto.BundleResponse, error) {
	bundle, err := uc.productRepo.GetByID(ctx, bundleProductID)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, domain.ErrNotFound
	}
	components, err := uc.bundleRepo.ListComponents(ctx, bundleProductID)
	if err != nil {
		return nil, err
	}
	out := &dto.BundleResponse{
		BundleProductID: bundleProductID,
		Components:      make([]dto.BundleComponentDTO, 0, len(components)),
	}
	for _, c := range components {
		out.Components = append(out.Components, dto.BundleComponentDTO{
			ProductID: c.ComponentProductID,
			Quantity:  c.Quantity,
		})
	}
	return out, nil
}
