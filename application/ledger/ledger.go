package ledger

import (
	"context"

	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	inventoryrepo "github.com/muhammadheryan/warehouse/repository/inventory"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

// LedgerApp exposes the read side of the movement ledger. Appends only
// ever happen inside an allocation transaction.
type LedgerApp interface {
	Replay(ctx context.Context, productID, locationID uint64) ([]model.InventoryMovement, error)
	ReconcileLocation(ctx context.Context, productID, locationID uint64) (*model.ReconcileResult, error)
}

type ledgerAppImpl struct {
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewLedgerApp(inventoryRepo inventoryrepo.InventoryRepository) LedgerApp {
	return &ledgerAppImpl{inventoryRepo: inventoryRepo}
}

func (s *ledgerAppImpl) Replay(ctx context.Context, productID, locationID uint64) ([]model.InventoryMovement, error) {
	if productID == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	movements, err := s.inventoryRepo.Replay(ctx, productID, locationID)
	if err != nil {
		logger.Error("[Replay] replay failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return movements, nil
}

// ReconcileLocation recomputes a location total from the ledger and
// compares it with the cached aggregate. Drift means the aggregates
// were mutated outside an allocation transaction.
func (s *ledgerAppImpl) ReconcileLocation(ctx context.Context, productID, locationID uint64) (*model.ReconcileResult, error) {
	if productID == 0 || locationID == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	movements, err := s.inventoryRepo.Replay(ctx, productID, locationID)
	if err != nil {
		logger.Error("[ReconcileLocation] replay failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var ledgerTotal int64
	for _, m := range movements {
		switch m.MovementType {
		case constant.MovementIn, constant.MovementAdjustment:
			ledgerTotal += m.Quantity
		case constant.MovementOut:
			ledgerTotal -= m.Quantity
		}
	}

	var aggregateTotal int64
	inv, err := s.inventoryRepo.GetInventory(ctx, productID, locationID)
	if err != nil {
		logger.Error("[ReconcileLocation] get inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if inv != nil {
		aggregateTotal = inv.QuantityOnHand
	}

	return &model.ReconcileResult{
		ProductID:      productID,
		LocationID:     locationID,
		LedgerTotal:    ledgerTotal,
		AggregateTotal: aggregateTotal,
		Drift:          ledgerTotal - aggregateTotal,
	}, nil
}
