package model

import "fmt"

type GenerateStructureRequest struct {
	LocationID        uint64 `json:"-"`
	RackCount         int    `json:"rack_count" validate:"required,gte=1,lte=50"`
	LevelsPerRack     int    `json:"levels_per_rack" validate:"required,gte=1,lte=10"`
	PositionsPerLevel int    `json:"positions_per_level" validate:"required,gte=1,lte=20"`
	ActorID           uint64 `json:"-"`
}

type GenerateStructureResponse struct {
	ZoneID      uint64 `json:"zone_id"`
	BinsCreated int    `json:"bins_created"`
}

type AddRackLevelRequest struct {
	RackID  uint64 `json:"-"`
	ActorID uint64 `json:"-"`
}

type AddRackPositionsRequest struct {
	RackID  uint64 `json:"-"`
	Count   int    `json:"count" validate:"required,gte=1,lte=20"`
	ActorID uint64 `json:"-"`
}

type AddRackResponse struct {
	BinsCreated int `json:"bins_created"`
}

// RackCode formats the code for the r-th rack in a zone, 1-based.
func RackCode(r int) string {
	return fmt.Sprintf("R%02d", r)
}

// BinAddress formats the immutable operator-facing bin address,
// e.g. "R01-L2-P03". Positions are zero-padded to two digits.
func BinAddress(rackCode string, level, position int) string {
	return fmt.Sprintf("%s-L%d-P%02d", rackCode, level, position)
}
