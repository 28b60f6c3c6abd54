package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.BundleRepository = (*BundleRepo)(nil)

// BundleRepo implementación del puerto BundleRepository sobre PostgreSQL.
// ReplaceComponents necesita su propia transacción, por eso recibe el pool.
type BundleRepo struct {
	pool *pgxpool.Pool
}

// NewBundleRepository construye el adaptador de bundles.
func NewBundleRepository(pool *pgxpool.Pool) *BundleRepo {
	return &BundleRepo{pool: pool}
}

// ReplaceComponents sustituye la composición completa del bundle de forma atómica.
func (r *BundleRepo) ReplaceComponents(ctx context.Context, bundleProductID string, components []entity.BundleComponent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM product_bundles WHERE bundle_product_id = $1`, bundleProductID,
	); err != nil {
		return fmt.Errorf("delete bundle components: %w", err)
	}
	for _, c := range components {
		if _, err := tx.Exec(ctx,
			`INSERT INTO product_bundles (bundle_product_id, product_id, quantity) VALUES ($1, $2, $3)`,
			c.BundleProductID, c.ComponentProductID, c.Quantity,
		); err != nil {
			return fmt.Errorf("insert bundle component: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListComponents devuelve la composición actual del bundle.
func (r *BundleRepo) ListComponents(ctx context.Context, bundleProductID string) ([]entity.BundleComponent, error) {
	query := `
		SELECT bundle_product_id, product_id, quantity
		FROM product_bundles WHERE bundle_product_id = $1
		ORDER BY product_id`
	rows, err := r.pool.Query(ctx, query, bundleProductID)
	if err != nil {
		return nil, fmt.Errorf("list bundle components: %w", err)
	}
	defer rows.Close()

	var list []entity.BundleComponent
	for rows.Next() {
		var c entity.BundleComponent
		if err := rows.Scan(&c.BundleProductID, &c.ComponentProductID, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan bundle component: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
