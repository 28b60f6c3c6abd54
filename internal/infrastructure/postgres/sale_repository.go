package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste un evento de venta (append-only).
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, inventory_id, quantity_sold, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.InventoryID, sale.QuantitySold, sale.SaleDate, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// SumRecentByInventory agrega la cantidad vendida por fila de inventario desde
// `since` (inclusive) en una sola consulta GROUP BY sobre todos los ids.
// Ids sin ventas en la ventana no aparecen en el mapa (el caller los trata como 0).
func (r *SaleRepo) SumRecentByInventory(ctx context.Context, inventoryIDs []string, since time.Time) (map[string]int, error) {
	sums := make(map[string]int, len(inventoryIDs))
	if len(inventoryIDs) == 0 {
		return sums, nil
	}

	const query = `
	SELECT inventory_id, COALESCE(SUM(quantity_sold), 0) AS recent_sales
	FROM sales
	WHERE inventory_id = ANY($1)
	  AND sale_date   >= $2
	GROUP BY inventory_id`

	rows, err := r.q.Query(ctx, query, inventoryIDs, since)
	if err != nil {
		return nil, fmt.Errorf("sum recent sales: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			inventoryID string
			total       int
		)
		if err := rows.Scan(&inventoryID, &total); err != nil {
			return nil, fmt.Errorf("scan recent sales: %w", err)
		}
		sums[inventoryID] = total
	}
	return sums, rows.Err()
}
