package model

import "github.com/muhammadheryan/warehouse/constant"

type FindEmptySpacesRequest struct {
	LocationID  uint64                    `validate:"omitempty,gt=0"`
	Granularity constant.SpaceGranularity `validate:"required,oneof=bin shelf rack"`
	Page        int
	PerPage     int
}

// SpaceView is one empty slot at the requested granularity. For shelf
// and rack granularity Level and Address describe the roll-up, not a bin.
type SpaceView struct {
	LocationID  uint64                    `db:"location_id" json:"location_id"`
	ZoneID      uint64                    `db:"zone_id" json:"zone_id"`
	RackID      uint64                    `db:"rack_id" json:"rack_id"`
	RackCode    string                    `db:"rack_code" json:"rack_code"`
	Level       int                       `db:"level" json:"level,omitempty"`
	Address     string                    `db:"address" json:"address,omitempty"`
	FreeBins    int64                     `db:"free_bins" json:"free_bins"`
	Granularity constant.SpaceGranularity `db:"-" json:"granularity"`
}

type FindEmptySpacesResponse struct {
	Items      []SpaceView `json:"items"`
	TotalCount int64       `json:"total_count"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
}

type UtilizationSummary struct {
	ZoneID       uint64  `json:"zone_id"`
	TotalBins    int64   `json:"total_bins"`
	OccupiedBins int64   `json:"occupied_bins"`
	Percentage   float64 `json:"percentage"`
}

type LowStockItem struct {
	ProductID      uint64 `db:"product_id" json:"product_id"`
	LocationID     uint64 `db:"location_id" json:"location_id"`
	QuantityOnHand int64  `db:"quantity_on_hand" json:"quantity_on_hand"`
	ReorderPoint   int64  `db:"reorder_point" json:"reorder_point"`
}
