package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una nueva fila de inventario. El constraint único sobre
// (product_id, warehouse_id) garantiza a lo sumo una fila por producto y bodega.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.ProductID, inv.WarehouseID, inv.Quantity, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByProductAndWarehouse obtiene la fila de inventario. Devuelve (nil, nil) si no existe.
func (r *InventoryRepo) GetByProductAndWarehouse(ctx context.Context, productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, productID, warehouseID), "get inventory")
}

// GetForUpdate obtiene la fila de inventario y la bloquea (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, productID, warehouseID), "get inventory for update")
}

// UpdateQuantity fija la cantidad de una fila de inventario.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, inventoryID string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory SET quantity = $2, updated_at = now() WHERE id = $1`,
		inventoryID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// GetLowStockCandidates devuelve las filas de inventario de la empresa en o por
// debajo del umbral del producto. Join interno con products, warehouses y
// suppliers: un producto sin proveedor o una bodega de otra empresa quedan
// excluidos en silencio, no son un error. Orden determinista (product_id,
// warehouse_id) para resultados reproducibles.
func (r *InventoryRepo) GetLowStockCandidates(ctx context.Context, companyID string) ([]repository.LowStockCandidate, error) {
	const query = `
	SELECT
	    i.id                     AS inventory_id,
	    i.quantity,
	    p.id                     AS product_id,
	    p.name                   AS product_name,
	    p.sku,
	    p.low_stock_threshold,
	    w.id                     AS warehouse_id,
	    w.name                   AS warehouse_name,
	    s.id                     AS supplier_id,
	    s.name                   AS supplier_name,
	    s.email                  AS supplier_email
	FROM inventory i
	JOIN products   p ON p.id = i.product_id
	JOIN warehouses w ON w.id = i.warehouse_id
	JOIN suppliers  s ON s.id = p.supplier_id
	WHERE w.company_id = $1
	  AND i.quantity  <= p.low_stock_threshold
	ORDER BY p.id, w.id`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("get low stock candidates: %w", err)
	}
	defer rows.Close()

	var items []repository.LowStockCandidate
	for rows.Next() {
		var c repository.LowStockCandidate
		if err := rows.Scan(
			&c.InventoryID, &c.Quantity,
			&c.ProductID, &c.ProductName, &c.SKU, &c.Threshold,
			&c.WarehouseID, &c.WarehouseName,
			&c.SupplierID, &c.SupplierName, &c.SupplierEmail,
		); err != nil {
			return nil, fmt.Errorf("scan low stock candidate: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}
