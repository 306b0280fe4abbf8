package inventory

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type InventoryRepository interface {
	// ProductExistsForUpdateTx locks the product row, serializing the
	// platform-stock recompute per product.
	ProductExistsForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (bool, error)
	UpsertInventoryTx(ctx context.Context, tx *sqlx.Tx, productID, locationID uint64, delta int64) (int64, error)
	UpsertAssignmentTx(ctx context.Context, tx *sqlx.Tx, binID, productID uint64, delta int64) error
	InsertMovementTx(ctx context.Context, tx *sqlx.Tx, item *model.InsertMovementTxItem) (uint64, error)
	RecomputeProductStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error)
	Replay(ctx context.Context, productID, locationID uint64) ([]model.InventoryMovement, error)
	GetInventory(ctx context.Context, productID, locationID uint64) (*model.ProductInventory, error)
	ListLowStock(ctx context.Context, locationID uint64) ([]model.LowStockItem, error)
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

func (r *SQL) ProductExistsForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (bool, error) {
	var id uint64
	if err := tx.GetContext(ctx, &id, "SELECT id FROM product WHERE id = ? FOR UPDATE", productID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *SQL) UpsertInventoryTx(ctx context.Context, tx *sqlx.Tx, productID, locationID uint64, delta int64) (int64, error) {
	if delta < 0 {
		// a decrement must land on an existing row with enough stock;
		// lazily inserting a negative row would hide drift
		q := `UPDATE product_inventory SET quantity_on_hand = quantity_on_hand + ?, last_movement_at = NOW()
WHERE product_id = ? AND location_id = ? AND quantity_on_hand + ? >= 0`
		res, err := tx.ExecContext(ctx, q, delta, productID, locationID, delta)
		if err != nil {
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if affected == 0 {
			return 0, sql.ErrNoRows
		}
	} else {
		q := `INSERT INTO product_inventory (product_id, location_id, quantity_on_hand, last_movement_at)
VALUES (?, ?, ?, NOW())
ON DUPLICATE KEY UPDATE quantity_on_hand = quantity_on_hand + VALUES(quantity_on_hand), last_movement_at = NOW()`
		if _, err := tx.ExecContext(ctx, q, productID, locationID, delta); err != nil {
			return 0, err
		}
	}

	var onHand int64
	sel := "SELECT quantity_on_hand FROM product_inventory WHERE product_id = ? AND location_id = ?"
	if err := tx.GetContext(ctx, &onHand, sel, productID, locationID); err != nil {
		return 0, err
	}
	return onHand, nil
}

func (r *SQL) UpsertAssignmentTx(ctx context.Context, tx *sqlx.Tx, binID, productID uint64, delta int64) error {
	q := `INSERT INTO bin_assignment (bin_id, product_id, quantity, assigned_at, status)
VALUES (?, ?, ?, NOW(), 'active')
ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity), assigned_at = NOW()`
	_, err := tx.ExecContext(ctx, q, binID, productID, delta)
	return err
}

func (r *SQL) InsertMovementTx(ctx context.Context, tx *sqlx.Tx, item *model.InsertMovementTxItem) (uint64, error) {
	q := `INSERT INTO inventory_movement (product_id, location_id, movement_type, quantity, reference_type, notes, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`
	res, err := tx.ExecContext(ctx, q, item.ProductID, item.LocationID, item.MovementType, item.Quantity, item.ReferenceType, item.Notes, item.CreatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) RecomputeProductStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(SUM(quantity_on_hand),0) as total FROM product_inventory WHERE product_id = ?"
	if err := tx.GetContext(ctx, &total, q, productID); err != nil {
		return 0, err
	}
	stock := int64(0)
	if total.Valid {
		stock = total.Int64
	}
	if _, err := tx.ExecContext(ctx, "UPDATE product SET stock = ? WHERE id = ?", stock, productID); err != nil {
		return 0, err
	}
	return stock, nil
}

// Replay returns the ordered ledger for a product; locationID 0 means
// all locations.
func (r *SQL) Replay(ctx context.Context, productID, locationID uint64) ([]model.InventoryMovement, error) {
	q := "SELECT id, product_id, location_id, movement_type, quantity, reference_type, notes, created_by, created_at FROM inventory_movement WHERE product_id = ?"
	args := []interface{}{productID}
	if locationID > 0 {
		q += " AND location_id = ?"
		args = append(args, locationID)
	}
	q += " ORDER BY created_at, id"

	rows, err := r.conn.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]model.InventoryMovement, 0)
	for rows.Next() {
		var m model.InventoryMovement
		if err := rows.StructScan(&m); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, nil
}

func (r *SQL) GetInventory(ctx context.Context, productID, locationID uint64) (*model.ProductInventory, error) {
	var inv model.ProductInventory
	q := "SELECT id, product_id, location_id, quantity_on_hand, quantity_reserved, reorder_point, max_stock_level, last_movement_at FROM product_inventory WHERE product_id = ? AND location_id = ?"
	if err := r.conn.GetContext(ctx, &inv, q, productID, locationID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *SQL) ListLowStock(ctx context.Context, locationID uint64) ([]model.LowStockItem, error) {
	q := `SELECT product_id, location_id, quantity_on_hand, reorder_point
FROM product_inventory
WHERE reorder_point > 0 AND quantity_on_hand <= reorder_point`
	args := []interface{}{}
	if locationID > 0 {
		q += " AND location_id = ?"
		args = append(args, locationID)
	}
	q += " ORDER BY product_id"

	rows, err := r.conn.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LowStockItem, 0)
	for rows.Next() {
		var it model.LowStockItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
