package model

import (
	"time"

	"github.com/muhammadheryan/warehouse/constant"
)

// LocationEntity represents the location table entity
type LocationEntity struct {
	ID             uint64                  `db:"id" json:"id"`
	Name           string                  `db:"name" json:"name"`
	Code           string                  `db:"code" json:"code"`
	Address        string                  `db:"address" json:"address"`
	City           string                  `db:"city" json:"city"`
	Capacity       *int64                  `db:"capacity" json:"capacity,omitempty"`
	TempControlled bool                    `db:"temp_controlled" json:"temp_controlled"`
	SecurityLevel  int                     `db:"security_level" json:"security_level"`
	Status         constant.LocationStatus `db:"status" json:"status"`
	CreatedAt      time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time              `db:"updated_at" json:"updated_at,omitempty"`
}

type ZoneEntity struct {
	ID         uint64              `db:"id" json:"id"`
	LocationID uint64              `db:"location_id" json:"location_id"`
	Code       string              `db:"code" json:"code"`
	Name       string              `db:"name" json:"name"`
	Type       constant.ZoneType   `db:"type" json:"type"`
	Status     constant.ZoneStatus `db:"status" json:"status"`
}

type RackEntity struct {
	ID        uint64              `db:"id" json:"id"`
	ZoneID    uint64              `db:"zone_id" json:"zone_id"`
	Code      string              `db:"code" json:"code"`
	Name      string              `db:"name" json:"name"`
	Levels    int                 `db:"levels" json:"levels"`
	Positions int                 `db:"positions" json:"positions"`
	Status    constant.RackStatus `db:"status" json:"status"`
}

type BinEntity struct {
	ID              uint64                   `db:"id" json:"id"`
	RackID          uint64                   `db:"rack_id" json:"rack_id"`
	Code            string                   `db:"code" json:"code"`
	Address         string                   `db:"address" json:"address"`
	Level           int                      `db:"level" json:"level"`
	Position        int                      `db:"position" json:"position"`
	Type            constant.BinType         `db:"type" json:"type"`
	OccupancyStatus constant.OccupancyStatus `db:"occupancy_status" json:"occupancy_status"`
	CurrentQuantity int64                    `db:"current_quantity" json:"current_quantity"`
	Capacity        int64                    `db:"capacity" json:"capacity"`
	Status          constant.BinStatus       `db:"status" json:"status"`
}

// BinView is the read model returned by bin resolution; it joins the
// hierarchy so callers get the owning rack, zone and location.
type BinView struct {
	ID              uint64                   `db:"id" json:"id"`
	Address         string                   `db:"address" json:"address"`
	Level           int                      `db:"level" json:"level"`
	Position        int                      `db:"position" json:"position"`
	Type            constant.BinType         `db:"type" json:"type"`
	OccupancyStatus constant.OccupancyStatus `db:"occupancy_status" json:"occupancy_status"`
	CurrentQuantity int64                    `db:"current_quantity" json:"current_quantity"`
	Capacity        int64                    `db:"capacity" json:"capacity"`
	Status          constant.BinStatus       `db:"status" json:"status"`
	RackID          uint64                   `db:"rack_id" json:"rack_id"`
	RackCode        string                   `db:"rack_code" json:"rack_code"`
	ZoneID          uint64                   `db:"zone_id" json:"zone_id"`
	LocationID      uint64                   `db:"location_id" json:"location_id"`
}

type ListEmptyBinsRequest struct {
	LocationID uint64 `validate:"required"`
	Page       int
	PerPage    int
}

type ListEmptyBinsResponse struct {
	Items      []BinView `json:"items"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}

type BinOverrideRequest struct {
	LocationID uint64 `json:"-"`
	Address    string `json:"-"`
	// Status must be blocked or reserved; clearing re-derives from quantity.
	Status  constant.OccupancyStatus `json:"status" validate:"required,oneof=blocked reserved"`
	ActorID uint64                   `json:"-"`
}
