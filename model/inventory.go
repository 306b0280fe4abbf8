package model

import (
	"time"

	"github.com/muhammadheryan/warehouse/constant"
)

type ProductInventory struct {
	ID             uint64     `db:"id" json:"id"`
	ProductID      uint64     `db:"product_id" json:"product_id"`
	LocationID     uint64     `db:"location_id" json:"location_id"`
	QuantityOnHand int64      `db:"quantity_on_hand" json:"quantity_on_hand"`
	QuantityRsvd   int64      `db:"quantity_reserved" json:"quantity_reserved"`
	ReorderPoint   int64      `db:"reorder_point" json:"reorder_point"`
	MaxStockLevel  int64      `db:"max_stock_level" json:"max_stock_level"`
	LastMovementAt *time.Time `db:"last_movement_at" json:"last_movement_at,omitempty"`
}

type BinAssignment struct {
	ID         uint64    `db:"id" json:"id"`
	BinID      uint64    `db:"bin_id" json:"bin_id"`
	ProductID  uint64    `db:"product_id" json:"product_id"`
	Quantity   int64     `db:"quantity" json:"quantity"`
	AssignedAt time.Time `db:"assigned_at" json:"assigned_at"`
	Status     string    `db:"status" json:"status"`
}

// InventoryMovement is an append-only ledger row; never updated or
// deleted once written.
type InventoryMovement struct {
	ID            uint64                 `db:"id" json:"id"`
	ProductID     uint64                 `db:"product_id" json:"product_id"`
	LocationID    uint64                 `db:"location_id" json:"location_id"`
	MovementType  constant.MovementType  `db:"movement_type" json:"movement_type"`
	Quantity      int64                  `db:"quantity" json:"quantity"`
	ReferenceType constant.ReferenceType `db:"reference_type" json:"reference_type"`
	Notes         string                 `db:"notes" json:"notes,omitempty"`
	CreatedBy     uint64                 `db:"created_by" json:"created_by"`
	CreatedAt     time.Time              `db:"created_at" json:"created_at"`
}

// InsertMovementTxItem is the write model for appending a ledger row
// inside an allocation transaction.
type InsertMovementTxItem struct {
	ProductID     uint64
	LocationID    uint64
	MovementType  constant.MovementType
	Quantity      int64
	ReferenceType constant.ReferenceType
	Notes         string
	CreatedBy     uint64
}

type ReceiveRequest struct {
	ProductID     uint64                 `json:"product_id" validate:"required"`
	LocationID    uint64                 `json:"location_id" validate:"required"`
	BinAddress    string                 `json:"bin_address" validate:"required"`
	Quantity      int64                  `json:"quantity" validate:"required,gt=0"`
	Notes         string                 `json:"notes"`
	ReferenceType constant.ReferenceType `json:"reference_type" validate:"omitempty,oneof=receiving purchase_order manual"`
	ActorID       uint64                 `json:"-"`
	RequestID     string                 `json:"-"`
}

type MoveRequest struct {
	ProductID      uint64 `json:"product_id" validate:"required"`
	FromLocationID uint64 `json:"from_location_id" validate:"required"`
	FromBinAddress string `json:"from_bin_address" validate:"required"`
	ToLocationID   uint64 `json:"to_location_id" validate:"required"`
	ToBinAddress   string `json:"to_bin_address" validate:"required"`
	Quantity       int64  `json:"quantity" validate:"required,gt=0"`
	Notes          string `json:"notes"`
	ActorID        uint64 `json:"-"`
	RequestID      string `json:"-"`
}

type AllocationResult struct {
	BinQuantity      int64  `json:"new_bin_quantity"`
	LocationTotal    int64  `json:"new_location_total"`
	PlatformStock    int64  `json:"new_platform_stock"`
	SourceBinQty     int64  `json:"source_bin_quantity,omitempty"`
	SourceLocationID uint64 `json:"source_location_id,omitempty"`
}

type ReconcileResult struct {
	ProductID      uint64 `json:"product_id"`
	LocationID     uint64 `json:"location_id"`
	LedgerTotal    int64  `json:"ledger_total"`
	AggregateTotal int64  `json:"aggregate_total"`
	Drift          int64  `json:"drift"`
}
