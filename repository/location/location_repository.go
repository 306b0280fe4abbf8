package location

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

type LocationRepository interface {
	GetLocationByID(ctx context.Context, id uint64) (*model.LocationEntity, error)
	GetZoneByID(ctx context.Context, id uint64) (*model.ZoneEntity, error)
	GetZoneByCodeTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, code string) (*model.ZoneEntity, error)
	GetRackByID(ctx context.Context, id uint64) (*model.RackEntity, error)
	InsertZoneTx(ctx context.Context, tx *sqlx.Tx, zone *model.ZoneEntity) (uint64, error)
	InsertRackTx(ctx context.Context, tx *sqlx.Tx, rack *model.RackEntity) (uint64, error)
	InsertBinTx(ctx context.Context, tx *sqlx.Tx, bin *model.BinEntity) (uint64, error)
	UpdateRackLevelsTx(ctx context.Context, tx *sqlx.Tx, rackID uint64, levels int) error
	UpdateRackPositionsTx(ctx context.Context, tx *sqlx.Tx, rackID uint64, positions int) error
}

func NewLocationRepository(conn *sqlx.DB) LocationRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetLocationByID(ctx context.Context, id uint64) (*model.LocationEntity, error) {
	var loc model.LocationEntity
	q := "SELECT id, name, code, address, city, capacity, temp_controlled, security_level, status, created_at, updated_at FROM location WHERE id = ?"
	if err := r.conn.GetContext(ctx, &loc, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}

func (r *SQL) GetZoneByID(ctx context.Context, id uint64) (*model.ZoneEntity, error) {
	var zone model.ZoneEntity
	q := "SELECT id, location_id, code, name, type, status FROM zone WHERE id = ?"
	if err := r.conn.GetContext(ctx, &zone, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &zone, nil
}

func (r *SQL) GetZoneByCodeTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, code string) (*model.ZoneEntity, error) {
	var zone model.ZoneEntity
	q := "SELECT id, location_id, code, name, type, status FROM zone WHERE location_id = ? AND code = ?"
	if err := tx.GetContext(ctx, &zone, q, locationID, code); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &zone, nil
}

func (r *SQL) GetRackByID(ctx context.Context, id uint64) (*model.RackEntity, error) {
	var rack model.RackEntity
	q := "SELECT id, zone_id, code, name, levels, positions, status FROM rack WHERE id = ?"
	if err := r.conn.GetContext(ctx, &rack, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rack, nil
}

func (r *SQL) InsertZoneTx(ctx context.Context, tx *sqlx.Tx, zone *model.ZoneEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO zone (location_id, code, name, type, status) VALUES (?, ?, ?, ?, ?)",
		zone.LocationID, zone.Code, zone.Name, zone.Type, zone.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertRackTx(ctx context.Context, tx *sqlx.Tx, rack *model.RackEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO rack (zone_id, code, name, levels, positions, status) VALUES (?, ?, ?, ?, ?, ?)",
		rack.ZoneID, rack.Code, rack.Name, rack.Levels, rack.Positions, rack.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertBinTx(ctx context.Context, tx *sqlx.Tx, bin *model.BinEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO bin (rack_id, code, address, level, position, type, occupancy_status, current_quantity, capacity, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		bin.RackID, bin.Code, bin.Address, bin.Level, bin.Position, bin.Type, constant.OccupancyEmpty, 0, bin.Capacity, bin.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) UpdateRackLevelsTx(ctx context.Context, tx *sqlx.Tx, rackID uint64, levels int) error {
	_, err := tx.ExecContext(ctx, "UPDATE rack SET levels = ? WHERE id = ?", levels, rackID)
	return err
}

func (r *SQL) UpdateRackPositionsTx(ctx context.Context, tx *sqlx.Tx, rackID uint64, positions int) error {
	_, err := tx.ExecContext(ctx, "UPDATE rack SET positions = ? WHERE id = ?", positions, rackID)
	return err
}
