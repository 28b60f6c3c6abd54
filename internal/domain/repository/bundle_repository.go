package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// BundleRepository define el puerto para la composición de bundles (DIP).
// ReplaceComponents sustituye la composición completa del bundle de forma atómica.
type BundleRepository interface {
	ReplaceComponents(ctx context.Context, bundleProductID string, components []entity.BundleComponent) error
	ListComponents(ctx context.Context, bundleProductID string) ([]entity.BundleComponent, error)
}
