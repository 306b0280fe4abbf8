package bin

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BinRepository interface {
	ResolveBin(ctx context.Context, locationID uint64, address string) (*model.BinView, error)
	// ResolveBinForUpdateTx locks the bin row so concurrent receives
	// into the same bin serialize.
	ResolveBinForUpdateTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, address string) (*model.BinView, error)
	ListEmptyBins(ctx context.Context, locationID uint64, page, perPage int) ([]model.BinView, int64, error)
	UpdateBinQuantityTx(ctx context.Context, tx *sqlx.Tx, binID uint64, quantity int64, occupancy constant.OccupancyStatus) error
	UpdateBinOccupancyTx(ctx context.Context, tx *sqlx.Tx, binID uint64, occupancy constant.OccupancyStatus) error
	CountBinsByZone(ctx context.Context, zoneID uint64) (total int64, occupied int64, err error)
	ListEmptyShelves(ctx context.Context, locationID uint64, page, perPage int) ([]model.SpaceView, int64, error)
	ListEmptyRacks(ctx context.Context, locationID uint64, page, perPage int) ([]model.SpaceView, int64, error)
}

func NewBinRepository(conn *sqlx.DB) BinRepository {
	return &SQL{conn: conn}
}

const binViewBase = `SELECT b.id, b.address, b.level, b.position, b.type, b.occupancy_status, b.current_quantity, b.capacity, b.status,
r.id as rack_id, r.code as rack_code, z.id as zone_id, z.location_id
FROM bin b
JOIN rack r ON b.rack_id = r.id
JOIN zone z ON r.zone_id = z.id`

func (r *SQL) ResolveBin(ctx context.Context, locationID uint64, address string) (*model.BinView, error) {
	var view model.BinView
	q := binViewBase + " WHERE z.location_id = ? AND b.address = ?"
	if err := r.conn.GetContext(ctx, &view, q, locationID, address); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &view, nil
}

func (r *SQL) ResolveBinForUpdateTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, address string) (*model.BinView, error) {
	var view model.BinView
	q := binViewBase + " WHERE z.location_id = ? AND b.address = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &view, q, locationID, address); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &view, nil
}

// ListEmptyBins lists empty active bins; locationID 0 spans all
// locations.
func (r *SQL) ListEmptyBins(ctx context.Context, locationID uint64, page, perPage int) ([]model.BinView, int64, error) {
	offset := (page - 1) * perPage

	where := " WHERE b.occupancy_status = ? AND b.status = ?"
	args := []interface{}{constant.OccupancyEmpty, constant.BinStatusActive}
	if locationID > 0 {
		where += " AND z.location_id = ?"
		args = append(args, locationID)
	}

	q := binViewBase + where + " ORDER BY z.location_id, r.code, b.level, b.position LIMIT ? OFFSET ?"
	rows, err := r.conn.QueryxContext(ctx, q, append(args, perPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.BinView, 0)
	for rows.Next() {
		var it model.BinView
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	countQ := "SELECT COUNT(*) FROM bin b JOIN rack r ON b.rack_id = r.id JOIN zone z ON r.zone_id = z.id" + where
	if err := r.conn.GetContext(ctx, &total, countQ, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *SQL) UpdateBinQuantityTx(ctx context.Context, tx *sqlx.Tx, binID uint64, quantity int64, occupancy constant.OccupancyStatus) error {
	res, err := tx.ExecContext(ctx, "UPDATE bin SET current_quantity = ?, occupancy_status = ? WHERE id = ?", quantity, occupancy, binID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) UpdateBinOccupancyTx(ctx context.Context, tx *sqlx.Tx, binID uint64, occupancy constant.OccupancyStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE bin SET occupancy_status = ? WHERE id = ?", occupancy, binID)
	return err
}

func (r *SQL) CountBinsByZone(ctx context.Context, zoneID uint64) (int64, int64, error) {
	type counts struct {
		Total    int64 `db:"total"`
		Occupied int64 `db:"occupied"`
	}
	var c counts
	q := `SELECT COUNT(*) as total, COALESCE(SUM(CASE WHEN b.occupancy_status NOT IN (?, ?) THEN 1 ELSE 0 END),0) as occupied
FROM bin b JOIN rack r ON b.rack_id = r.id
WHERE r.zone_id = ? AND b.status = ?`
	if err := r.conn.GetContext(ctx, &c, q, constant.OccupancyEmpty, constant.OccupancyBlocked, zoneID, constant.BinStatusActive); err != nil {
		return 0, 0, err
	}
	return c.Total, c.Occupied, nil
}

func (r *SQL) ListEmptyShelves(ctx context.Context, locationID uint64, page, perPage int) ([]model.SpaceView, int64, error) {
	offset := (page - 1) * perPage

	where := " WHERE b.status = ?"
	args := []interface{}{constant.BinStatusActive}
	if locationID > 0 {
		where += " AND z.location_id = ?"
		args = append(args, locationID)
	}
	having := " HAVING COUNT(*) = SUM(CASE WHEN b.occupancy_status = ? THEN 1 ELSE 0 END)"
	args = append(args, constant.OccupancyEmpty)

	// a shelf is empty when every active bin on it is empty
	q := `SELECT z.location_id, z.id as zone_id, r.id as rack_id, r.code as rack_code, b.level, COUNT(*) as free_bins
FROM bin b
JOIN rack r ON b.rack_id = r.id
JOIN zone z ON r.zone_id = z.id` + where + `
GROUP BY z.location_id, z.id, r.id, r.code, b.level` + having + `
ORDER BY z.location_id, r.code, b.level LIMIT ? OFFSET ?`
	rows, err := r.conn.QueryxContext(ctx, q, append(args, perPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.SpaceView, 0)
	for rows.Next() {
		var it model.SpaceView
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	countQ := `SELECT COUNT(*) FROM (SELECT r.id
FROM bin b
JOIN rack r ON b.rack_id = r.id
JOIN zone z ON r.zone_id = z.id` + where + `
GROUP BY r.id, b.level` + having + `) t`
	if err := r.conn.GetContext(ctx, &total, countQ, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *SQL) ListEmptyRacks(ctx context.Context, locationID uint64, page, perPage int) ([]model.SpaceView, int64, error) {
	offset := (page - 1) * perPage

	where := " WHERE b.status = ?"
	args := []interface{}{constant.BinStatusActive}
	if locationID > 0 {
		where += " AND z.location_id = ?"
		args = append(args, locationID)
	}
	having := " HAVING COUNT(*) = SUM(CASE WHEN b.occupancy_status = ? THEN 1 ELSE 0 END)"
	args = append(args, constant.OccupancyEmpty)

	q := `SELECT z.location_id, z.id as zone_id, r.id as rack_id, r.code as rack_code, COUNT(*) as free_bins
FROM bin b
JOIN rack r ON b.rack_id = r.id
JOIN zone z ON r.zone_id = z.id` + where + `
GROUP BY z.location_id, z.id, r.id, r.code` + having + `
ORDER BY z.location_id, r.code LIMIT ? OFFSET ?`
	rows, err := r.conn.QueryxContext(ctx, q, append(args, perPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.SpaceView, 0)
	for rows.Next() {
		var it model.SpaceView
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	countQ := `SELECT COUNT(*) FROM (SELECT r.id
FROM bin b
JOIN rack r ON b.rack_id = r.id
JOIN zone z ON r.zone_id = z.id` + where + `
GROUP BY r.id` + having + `) t`
	if err := r.conn.GetContext(ctx, &total, countQ, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
