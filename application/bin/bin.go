package bin

import (
	"context"

	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	binrepo "github.com/muhammadheryan/warehouse/repository/bin"
	txrepo "github.com/muhammadheryan/warehouse/repository/tx"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

type BinApp interface {
	ResolveBin(ctx context.Context, locationID uint64, address string) (*model.BinView, error)
	ListEmptyBins(ctx context.Context, req *model.ListEmptyBinsRequest) (*model.ListEmptyBinsResponse, error)
	SetOverride(ctx context.Context, req *model.BinOverrideRequest) error
	ClearOverride(ctx context.Context, locationID uint64, address string, actorID uint64) error
}

type binAppImpl struct {
	txRepo  txrepo.TxRepository
	binRepo binrepo.BinRepository
}

func NewBinApp(txRepo txrepo.TxRepository, binRepo binrepo.BinRepository) BinApp {
	return &binAppImpl{txRepo: txRepo, binRepo: binRepo}
}

// DeriveOccupancy maps a quantity against the bin capacity to the
// derived occupancy variant. Blocked and reserved are never returned;
// they are operator overrides handled outside derivation.
func DeriveOccupancy(quantity, capacity int64) constant.OccupancyStatus {
	if quantity <= 0 {
		return constant.OccupancyEmpty
	}
	if capacity > 0 && quantity >= capacity {
		return constant.OccupancyFull
	}
	return constant.OccupancyPartial
}

// NextOccupancy keeps an operator override in place and derives
// otherwise.
func NextOccupancy(current constant.OccupancyStatus, quantity, capacity int64) constant.OccupancyStatus {
	if current == constant.OccupancyBlocked || current == constant.OccupancyReserved {
		return current
	}
	return DeriveOccupancy(quantity, capacity)
}

func (s *binAppImpl) ResolveBin(ctx context.Context, locationID uint64, address string) (*model.BinView, error) {
	view, err := s.binRepo.ResolveBin(ctx, locationID, address)
	if err != nil {
		logger.Error("[ResolveBin] resolve failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if view == nil {
		return nil, errors.SetCustomError(constant.ErrBinNotFound)
	}
	return view, nil
}

func (s *binAppImpl) ListEmptyBins(ctx context.Context, req *model.ListEmptyBinsRequest) (*model.ListEmptyBinsResponse, error) {
	page := req.Page
	perPage := req.PerPage
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}

	items, total, err := s.binRepo.ListEmptyBins(ctx, req.LocationID, page, perPage)
	if err != nil {
		logger.Error("[ListEmptyBins] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ListEmptyBinsResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *binAppImpl) SetOverride(ctx context.Context, req *model.BinOverrideRequest) error {
	if req.Status != constant.OccupancyBlocked && req.Status != constant.OccupancyReserved {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SetOverride] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	view, err := s.binRepo.ResolveBinForUpdateTx(ctx, tx, req.LocationID, req.Address)
	if err != nil {
		logger.Error("[SetOverride] resolve bin", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if view == nil {
		return errors.SetCustomError(constant.ErrBinNotFound)
	}

	if err := s.binRepo.UpdateBinOccupancyTx(ctx, tx, view.ID, req.Status); err != nil {
		logger.Error("[SetOverride] update occupancy", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[SetOverride] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[SetOverride] bin override set",
		zap.Uint64("location_id", req.LocationID),
		zap.String("address", req.Address),
		zap.String("status", string(req.Status)),
		zap.Uint64("actor_id", req.ActorID),
	)
	return nil
}

func (s *binAppImpl) ClearOverride(ctx context.Context, locationID uint64, address string, actorID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ClearOverride] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	view, err := s.binRepo.ResolveBinForUpdateTx(ctx, tx, locationID, address)
	if err != nil {
		logger.Error("[ClearOverride] resolve bin", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if view == nil {
		return errors.SetCustomError(constant.ErrBinNotFound)
	}

	// clearing re-derives the status from the stored quantity
	derived := DeriveOccupancy(view.CurrentQuantity, view.Capacity)
	if err := s.binRepo.UpdateBinOccupancyTx(ctx, tx, view.ID, derived); err != nil {
		logger.Error("[ClearOverride] update occupancy", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ClearOverride] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[ClearOverride] bin override cleared",
		zap.Uint64("location_id", locationID),
		zap.String("address", address),
		zap.Uint64("actor_id", actorID),
	)
	return nil
}
