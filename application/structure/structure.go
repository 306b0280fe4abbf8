package structure

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	locationrepo "github.com/muhammadheryan/warehouse/repository/location"
	txrepo "github.com/muhammadheryan/warehouse/repository/tx"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

type StructureApp interface {
	GenerateStructure(ctx context.Context, req *model.GenerateStructureRequest) (*model.GenerateStructureResponse, error)
	AddRackLevel(ctx context.Context, req *model.AddRackLevelRequest) (*model.AddRackResponse, error)
	AddRackPositions(ctx context.Context, req *model.AddRackPositionsRequest) (*model.AddRackResponse, error)
}

type structureAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	locationRepo locationrepo.LocationRepository
}

func NewStructureApp(config *config.Config, txRepo txrepo.TxRepository, locationRepo locationrepo.LocationRepository) StructureApp {
	return &structureAppImpl{
		config:       config,
		txRepo:       txRepo,
		locationRepo: locationRepo,
	}
}

func (s *structureAppImpl) GenerateStructure(ctx context.Context, req *model.GenerateStructureRequest) (*model.GenerateStructureResponse, error) {
	if req.RackCount < 1 || req.RackCount > 50 ||
		req.LevelsPerRack < 1 || req.LevelsPerRack > 10 ||
		req.PositionsPerLevel < 1 || req.PositionsPerLevel > 20 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	loc, err := s.locationRepo.GetLocationByID(ctx, req.LocationID)
	if err != nil {
		logger.Error("[GenerateStructure] get location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if loc == nil || loc.Status != constant.LocationStatusActive {
		return nil, errors.SetCustomError(constant.ErrLocationNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[GenerateStructure] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// the main zone is created once per location; its presence guards
	// against double-submitted generation
	existing, err := s.locationRepo.GetZoneByCodeTx(ctx, tx, req.LocationID, constant.MainZoneCode)
	if err != nil {
		logger.Error("[GenerateStructure] get main zone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrStructureExists)
	}

	zoneID, err := s.locationRepo.InsertZoneTx(ctx, tx, &model.ZoneEntity{
		LocationID: req.LocationID,
		Code:       constant.MainZoneCode,
		Name:       constant.MainZoneName,
		Type:       constant.ZoneTypeStorage,
		Status:     constant.ZoneStatusActive,
	})
	if err != nil {
		logger.Error("[GenerateStructure] insert zone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	binsCreated := 0
	for r := 1; r <= req.RackCount; r++ {
		rackCode := model.RackCode(r)
		rackID, err := s.locationRepo.InsertRackTx(ctx, tx, &model.RackEntity{
			ZoneID:    zoneID,
			Code:      rackCode,
			Name:      fmt.Sprintf("Rack %s", rackCode),
			Levels:    req.LevelsPerRack,
			Positions: req.PositionsPerLevel,
			Status:    constant.RackStatusActive,
		})
		if err != nil {
			logger.Error("[GenerateStructure] insert rack", zap.String("error", err.Error()), zap.String("rack_code", rackCode))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		for l := 1; l <= req.LevelsPerRack; l++ {
			for p := 1; p <= req.PositionsPerLevel; p++ {
				address := model.BinAddress(rackCode, l, p)
				if _, err := s.locationRepo.InsertBinTx(ctx, tx, &model.BinEntity{
					RackID:   rackID,
					Code:     address,
					Address:  address,
					Level:    l,
					Position: p,
					Type:     constant.BinTypeStandard,
					Capacity: s.config.Structure.DefaultBinCapacity,
					Status:   constant.BinStatusActive,
				}); err != nil {
					logger.Error("[GenerateStructure] insert bin", zap.String("error", err.Error()), zap.String("address", address))
					return nil, errors.SetCustomError(constant.ErrInternal)
				}
				binsCreated++
			}
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[GenerateStructure] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[GenerateStructure] structure generated",
		zap.Uint64("location_id", req.LocationID),
		zap.Uint64("zone_id", zoneID),
		zap.Int("bins_created", binsCreated),
		zap.Uint64("actor_id", req.ActorID),
	)

	return &model.GenerateStructureResponse{
		ZoneID:      zoneID,
		BinsCreated: binsCreated,
	}, nil
}

func (s *structureAppImpl) AddRackLevel(ctx context.Context, req *model.AddRackLevelRequest) (*model.AddRackResponse, error) {
	rack, err := s.locationRepo.GetRackByID(ctx, req.RackID)
	if err != nil {
		logger.Error("[AddRackLevel] get rack", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rack == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if rack.Levels >= 10 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddRackLevel] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	newLevel := rack.Levels + 1
	created := 0
	for p := 1; p <= rack.Positions; p++ {
		address := model.BinAddress(rack.Code, newLevel, p)
		if _, err := s.locationRepo.InsertBinTx(ctx, tx, &model.BinEntity{
			RackID:   rack.ID,
			Code:     address,
			Address:  address,
			Level:    newLevel,
			Position: p,
			Type:     constant.BinTypeStandard,
			Capacity: s.config.Structure.DefaultBinCapacity,
			Status:   constant.BinStatusActive,
		}); err != nil {
			logger.Error("[AddRackLevel] insert bin", zap.String("error", err.Error()), zap.String("address", address))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		created++
	}

	if err := s.locationRepo.UpdateRackLevelsTx(ctx, tx, rack.ID, newLevel); err != nil {
		logger.Error("[AddRackLevel] update rack", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddRackLevel] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.AddRackResponse{BinsCreated: created}, nil
}

func (s *structureAppImpl) AddRackPositions(ctx context.Context, req *model.AddRackPositionsRequest) (*model.AddRackResponse, error) {
	if req.Count < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	rack, err := s.locationRepo.GetRackByID(ctx, req.RackID)
	if err != nil {
		logger.Error("[AddRackPositions] get rack", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rack == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if rack.Positions+req.Count > 20 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddRackPositions] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	created := 0
	for l := 1; l <= rack.Levels; l++ {
		for p := rack.Positions + 1; p <= rack.Positions+req.Count; p++ {
			address := model.BinAddress(rack.Code, l, p)
			if _, err := s.locationRepo.InsertBinTx(ctx, tx, &model.BinEntity{
				RackID:   rack.ID,
				Code:     address,
				Address:  address,
				Level:    l,
				Position: p,
				Type:     constant.BinTypeStandard,
				Capacity: s.config.Structure.DefaultBinCapacity,
				Status:   constant.BinStatusActive,
			}); err != nil {
				logger.Error("[AddRackPositions] insert bin", zap.String("error", err.Error()), zap.String("address", address))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			created++
		}
	}

	if err := s.locationRepo.UpdateRackPositionsTx(ctx, tx, rack.ID, rack.Positions+req.Count); err != nil {
		logger.Error("[AddRackPositions] update rack", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddRackPositions] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.AddRackResponse{BinsCreated: created}, nil
}
