package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	binrepo "github.com/muhammadheryan/warehouse/repository/bin"
	inventoryrepo "github.com/muhammadheryan/warehouse/repository/inventory"
	locationrepo "github.com/muhammadheryan/warehouse/repository/location"
	redisrepo "github.com/muhammadheryan/warehouse/repository/redis"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

// ReportApp is the read-only reporting surface; it never mutates state
// and tolerates slightly stale data (utilization is redis-cached).
type ReportApp interface {
	FindEmptySpaces(ctx context.Context, req *model.FindEmptySpacesRequest) (*model.FindEmptySpacesResponse, error)
	UtilizationSummary(ctx context.Context, zoneID uint64) (*model.UtilizationSummary, error)
	LowStockCandidates(ctx context.Context, locationID uint64) ([]model.LowStockItem, error)
}

type reportAppImpl struct {
	config        *config.Config
	binRepo       binrepo.BinRepository
	locationRepo  locationrepo.LocationRepository
	inventoryRepo inventoryrepo.InventoryRepository
	redisRepo     redisrepo.Repository
}

func NewReportApp(config *config.Config, binRepo binrepo.BinRepository, locationRepo locationrepo.LocationRepository, inventoryRepo inventoryrepo.InventoryRepository, redisRepo redisrepo.Repository) ReportApp {
	return &reportAppImpl{
		config:        config,
		binRepo:       binRepo,
		locationRepo:  locationRepo,
		inventoryRepo: inventoryRepo,
		redisRepo:     redisRepo,
	}
}

func (s *reportAppImpl) FindEmptySpaces(ctx context.Context, req *model.FindEmptySpacesRequest) (*model.FindEmptySpacesResponse, error) {
	page := req.Page
	perPage := req.PerPage
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}

	var (
		items []model.SpaceView
		total int64
		err   error
	)

	switch req.Granularity {
	case constant.GranularityBin:
		var bins []model.BinView
		bins, total, err = s.binRepo.ListEmptyBins(ctx, req.LocationID, page, perPage)
		if err == nil {
			items = make([]model.SpaceView, 0, len(bins))
			for _, b := range bins {
				items = append(items, model.SpaceView{
					LocationID:  b.LocationID,
					ZoneID:      b.ZoneID,
					RackID:      b.RackID,
					RackCode:    b.RackCode,
					Level:       b.Level,
					Address:     b.Address,
					FreeBins:    1,
					Granularity: constant.GranularityBin,
				})
			}
		}
	case constant.GranularityShelf:
		items, total, err = s.binRepo.ListEmptyShelves(ctx, req.LocationID, page, perPage)
		for i := range items {
			items[i].Granularity = constant.GranularityShelf
		}
	case constant.GranularityRack:
		items, total, err = s.binRepo.ListEmptyRacks(ctx, req.LocationID, page, perPage)
		for i := range items {
			items[i].Granularity = constant.GranularityRack
		}
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err != nil {
		logger.Error("[FindEmptySpaces] query failed", zap.String("error", err.Error()), zap.String("granularity", string(req.Granularity)))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.FindEmptySpacesResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *reportAppImpl) UtilizationSummary(ctx context.Context, zoneID uint64) (*model.UtilizationSummary, error) {
	cacheKey := fmt.Sprintf("util:zone:%d", zoneID)
	if cached, err := s.redisRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		var summary model.UtilizationSummary
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
	}

	zone, err := s.locationRepo.GetZoneByID(ctx, zoneID)
	if err != nil {
		logger.Error("[UtilizationSummary] get zone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if zone == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	totalBins, occupiedBins, err := s.binRepo.CountBinsByZone(ctx, zoneID)
	if err != nil {
		logger.Error("[UtilizationSummary] count bins", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	percentage := 0.0
	if totalBins > 0 {
		percentage = float64(occupiedBins) / float64(totalBins) * 100
	}

	summary := &model.UtilizationSummary{
		ZoneID:       zoneID,
		TotalBins:    totalBins,
		OccupiedBins: occupiedBins,
		Percentage:   percentage,
	}

	if payload, err := json.Marshal(summary); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, cacheKey, string(payload), s.config.Report.UtilizationCacheTTL); err != nil {
			logger.Warn("[UtilizationSummary] cache write failed", zap.String("error", err.Error()))
		}
	}

	return summary, nil
}

func (s *reportAppImpl) LowStockCandidates(ctx context.Context, locationID uint64) ([]model.LowStockItem, error) {
	items, err := s.inventoryRepo.ListLowStock(ctx, locationID)
	if err != nil {
		logger.Error("[LowStockCandidates] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}
