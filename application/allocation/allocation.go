package allocation

import (
	"context"
	"time"

	binapp "github.com/muhammadheryan/warehouse/application/bin"
	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	binrepo "github.com/muhammadheryan/warehouse/repository/bin"
	inventoryrepo "github.com/muhammadheryan/warehouse/repository/inventory"
	redisrepo "github.com/muhammadheryan/warehouse/repository/redis"
	txrepo "github.com/muhammadheryan/warehouse/repository/tx"
	"github.com/muhammadheryan/warehouse/thirdparty/rabbitmq"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

type AllocationApp interface {
	Receive(ctx context.Context, req *model.ReceiveRequest) (*model.AllocationResult, error)
	Move(ctx context.Context, req *model.MoveRequest) (*model.AllocationResult, error)
}

type allocationAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	binRepo       binrepo.BinRepository
	inventoryRepo inventoryrepo.InventoryRepository
	redisRepo     redisrepo.Repository
	publisher     *rabbitmq.Publisher
}

func NewAllocationApp(config *config.Config, txRepo txrepo.TxRepository, binRepo binrepo.BinRepository, inventoryRepo inventoryrepo.InventoryRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) AllocationApp {
	return &allocationAppImpl{
		config:        config,
		txRepo:        txRepo,
		binRepo:       binRepo,
		inventoryRepo: inventoryRepo,
		redisRepo:     redisRepo,
		publisher:     publisher,
	}
}

// Receive books quantity of a product into a bin as one transaction:
// bin quantity and occupancy, the location inventory aggregate, the
// movement ledger, the bin assignment and the platform stock cache
// all commit together or not at all.
func (s *allocationAppImpl) Receive(ctx context.Context, req *model.ReceiveRequest) (*model.AllocationResult, error) {
	if req.Quantity <= 0 || req.Quantity > s.config.Allocation.MaxQuantity {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	if err := s.claimRequestID(ctx, req.RequestID); err != nil {
		return nil, err
	}

	referenceType := req.ReferenceType
	if referenceType == "" {
		referenceType = constant.ReferenceReceiving
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Receive] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// lock the product row first; this serializes the platform stock
	// recompute per product and keeps lock order product -> bin
	exists, err := s.inventoryRepo.ProductExistsForUpdateTx(ctx, tx, req.ProductID)
	if err != nil {
		logger.Error("[Receive] lock product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrProductNotFound)
	}

	bin, err := s.binRepo.ResolveBinForUpdateTx(ctx, tx, req.LocationID, req.BinAddress)
	if err != nil {
		logger.Error("[Receive] resolve bin", zap.String("error", err.Error()), zap.String("address", req.BinAddress))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if bin == nil || bin.Status != constant.BinStatusActive {
		return nil, errors.SetCustomError(constant.ErrBinNotFound)
	}
	if bin.OccupancyStatus == constant.OccupancyBlocked {
		return nil, errors.SetCustomError(constant.ErrBinBlocked)
	}

	newQty := bin.CurrentQuantity + req.Quantity
	occupancy := binapp.NextOccupancy(bin.OccupancyStatus, newQty, bin.Capacity)
	if err := s.binRepo.UpdateBinQuantityTx(ctx, tx, bin.ID, newQty, occupancy); err != nil {
		logger.Error("[Receive] update bin", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	locationTotal, err := s.inventoryRepo.UpsertInventoryTx(ctx, tx, req.ProductID, bin.LocationID, req.Quantity)
	if err != nil {
		logger.Error("[Receive] upsert inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.inventoryRepo.InsertMovementTx(ctx, tx, &model.InsertMovementTxItem{
		ProductID:     req.ProductID,
		LocationID:    bin.LocationID,
		MovementType:  constant.MovementIn,
		Quantity:      req.Quantity,
		ReferenceType: referenceType,
		Notes:         req.Notes,
		CreatedBy:     req.ActorID,
	}); err != nil {
		logger.Error("[Receive] insert movement", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.inventoryRepo.UpsertAssignmentTx(ctx, tx, bin.ID, req.ProductID, req.Quantity); err != nil {
		logger.Error("[Receive] upsert assignment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	platformStock, err := s.inventoryRepo.RecomputeProductStockTx(ctx, tx, req.ProductID)
	if err != nil {
		logger.Error("[Receive] recompute stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Receive] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishMovement(rabbitmq.StockMovementMessage{
		ProductID:    req.ProductID,
		LocationID:   bin.LocationID,
		MovementType: constant.MovementIn,
		Quantity:     req.Quantity,
		BinAddress:   bin.Address,
		ActorID:      req.ActorID,
		OccurredAt:   time.Now(),
	})

	return &model.AllocationResult{
		BinQuantity:   newQty,
		LocationTotal: locationTotal,
		PlatformStock: platformStock,
	}, nil
}

// Move relocates quantity between two bins, possibly across locations.
// The ledger records it as a paired out and in row inside the same
// transaction.
func (s *allocationAppImpl) Move(ctx context.Context, req *model.MoveRequest) (*model.AllocationResult, error) {
	if req.Quantity <= 0 || req.Quantity > s.config.Allocation.MaxQuantity {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	if req.FromLocationID == req.ToLocationID && req.FromBinAddress == req.ToBinAddress {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.claimRequestID(ctx, req.RequestID); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Move] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	exists, err := s.inventoryRepo.ProductExistsForUpdateTx(ctx, tx, req.ProductID)
	if err != nil {
		logger.Error("[Move] lock product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrProductNotFound)
	}

	source, err := s.binRepo.ResolveBinForUpdateTx(ctx, tx, req.FromLocationID, req.FromBinAddress)
	if err != nil {
		logger.Error("[Move] resolve source bin", zap.String("error", err.Error()), zap.String("address", req.FromBinAddress))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if source == nil || source.Status != constant.BinStatusActive {
		return nil, errors.SetCustomError(constant.ErrBinNotFound)
	}
	if source.OccupancyStatus == constant.OccupancyBlocked {
		return nil, errors.SetCustomError(constant.ErrBinBlocked)
	}
	if source.CurrentQuantity < req.Quantity {
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}

	dest, err := s.binRepo.ResolveBinForUpdateTx(ctx, tx, req.ToLocationID, req.ToBinAddress)
	if err != nil {
		logger.Error("[Move] resolve dest bin", zap.String("error", err.Error()), zap.String("address", req.ToBinAddress))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if dest == nil || dest.Status != constant.BinStatusActive {
		return nil, errors.SetCustomError(constant.ErrBinNotFound)
	}
	if dest.OccupancyStatus == constant.OccupancyBlocked {
		return nil, errors.SetCustomError(constant.ErrBinBlocked)
	}

	sourceQty := source.CurrentQuantity - req.Quantity
	sourceOccupancy := binapp.NextOccupancy(source.OccupancyStatus, sourceQty, source.Capacity)
	if err := s.binRepo.UpdateBinQuantityTx(ctx, tx, source.ID, sourceQty, sourceOccupancy); err != nil {
		logger.Error("[Move] update source bin", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	destQty := dest.CurrentQuantity + req.Quantity
	destOccupancy := binapp.NextOccupancy(dest.OccupancyStatus, destQty, dest.Capacity)
	if err := s.binRepo.UpdateBinQuantityTx(ctx, tx, dest.ID, destQty, destOccupancy); err != nil {
		logger.Error("[Move] update dest bin", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.inventoryRepo.UpsertInventoryTx(ctx, tx, req.ProductID, source.LocationID, -req.Quantity); err != nil {
		logger.Error("[Move] upsert source inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	destTotal, err := s.inventoryRepo.UpsertInventoryTx(ctx, tx, req.ProductID, dest.LocationID, req.Quantity)
	if err != nil {
		logger.Error("[Move] upsert dest inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.inventoryRepo.InsertMovementTx(ctx, tx, &model.InsertMovementTxItem{
		ProductID:     req.ProductID,
		LocationID:    source.LocationID,
		MovementType:  constant.MovementOut,
		Quantity:      req.Quantity,
		ReferenceType: constant.ReferenceManual,
		Notes:         req.Notes,
		CreatedBy:     req.ActorID,
	}); err != nil {
		logger.Error("[Move] insert out movement", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if _, err := s.inventoryRepo.InsertMovementTx(ctx, tx, &model.InsertMovementTxItem{
		ProductID:     req.ProductID,
		LocationID:    dest.LocationID,
		MovementType:  constant.MovementIn,
		Quantity:      req.Quantity,
		ReferenceType: constant.ReferenceManual,
		Notes:         req.Notes,
		CreatedBy:     req.ActorID,
	}); err != nil {
		logger.Error("[Move] insert in movement", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.inventoryRepo.UpsertAssignmentTx(ctx, tx, source.ID, req.ProductID, -req.Quantity); err != nil {
		logger.Error("[Move] upsert source assignment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.inventoryRepo.UpsertAssignmentTx(ctx, tx, dest.ID, req.ProductID, req.Quantity); err != nil {
		logger.Error("[Move] upsert dest assignment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	platformStock, err := s.inventoryRepo.RecomputeProductStockTx(ctx, tx, req.ProductID)
	if err != nil {
		logger.Error("[Move] recompute stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Move] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishMovement(rabbitmq.StockMovementMessage{
		ProductID:    req.ProductID,
		LocationID:   dest.LocationID,
		MovementType: constant.MovementTransfer,
		Quantity:     req.Quantity,
		BinAddress:   dest.Address,
		ActorID:      req.ActorID,
		OccurredAt:   time.Now(),
	})

	return &model.AllocationResult{
		BinQuantity:      destQty,
		LocationTotal:    destTotal,
		PlatformStock:    platformStock,
		SourceBinQty:     sourceQty,
		SourceLocationID: source.LocationID,
	}, nil
}

// claimRequestID enforces exactly-once semantics for retried calls;
// an empty id skips the guard.
func (s *allocationAppImpl) claimRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return nil
	}
	first, err := s.redisRepo.RegisterRequestID(ctx, requestID, s.config.Allocation.IdempotencyTTL)
	if err != nil {
		logger.Warn("[Allocation] request id guard unavailable", zap.String("error", err.Error()))
		return nil
	}
	if !first {
		return errors.SetCustomError(constant.ErrDuplicateRequest)
	}
	return nil
}

func (s *allocationAppImpl) publishMovement(msg rabbitmq.StockMovementMessage) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishStockMovement(msg); err != nil {
		logger.Error("[Allocation] publish movement", zap.String("error", err.Error()))
	}
}
