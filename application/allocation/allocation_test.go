package allocation_test

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	appallocation "github.com/muhammadheryan/warehouse/application/allocation"
	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	binmocks "github.com/muhammadheryan/warehouse/mocks/repository/bin"
	inventorymocks "github.com/muhammadheryan/warehouse/mocks/repository/inventory"
	redismocks "github.com/muhammadheryan/warehouse/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/warehouse/mocks/repository/tx"
	"github.com/muhammadheryan/warehouse/model"
	cerr "github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Allocation: config.AllocationConfig{
			MaxQuantity:    10000,
			IdempotencyTTL: 24 * time.Hour,
		},
	}
}

func TestAllocationApp_Receive(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		binRepo       *binmocks.BinRepository
		inventoryRepo *inventorymocks.InventoryRepository
		redisRepo     *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.ReceiveRequest
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		want        *model.AllocationResult
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name: "success: receive into empty bin derives partial occupancy",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReceiveRequest{
					ProductID:  7,
					LocationID: 1,
					BinAddress: "R01-L1-P01",
					Quantity:   10,
					ActorID:    42,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.inventoryRepo.On("ProductExistsForUpdateTx", mock.Anything, mock.Anything, uint64(7)).Return(true, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R01-L1-P01").
					Return(&model.BinView{
						ID:              11,
						Address:         "R01-L1-P01",
						OccupancyStatus: constant.OccupancyEmpty,
						CurrentQuantity: 0,
						Capacity:        100,
						Status:          constant.BinStatusActive,
						LocationID:      1,
					}, nil).Once()
				f.binRepo.On("UpdateBinQuantityTx", mock.Anything, mock.Anything, uint64(11), int64(10), constant.OccupancyPartial).Return(nil).Once()
				f.inventoryRepo.On("UpsertInventoryTx", mock.Anything, mock.Anything, uint64(7), uint64(1), int64(10)).Return(int64(10), nil).Once()
				f.inventoryRepo.On("InsertMovementTx", mock.Anything, mock.Anything, mock.MatchedBy(func(item *model.InsertMovementTxItem) bool {
					return item.MovementType == constant.MovementIn &&
						item.Quantity == 10 &&
						item.LocationID == 1 &&
						item.ReferenceType == constant.ReferenceReceiving &&
						item.CreatedBy == 42
				})).Return(uint64(1), nil).Once()
				f.inventoryRepo.On("UpsertAssignmentTx", mock.Anything, mock.Anything, uint64(11), uint64(7), int64(10)).Return(nil).Once()
				f.inventoryRepo.On("RecomputeProductStockTx", mock.Anything, mock.Anything, uint64(7)).Return(int64(10), nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			want: &model.AllocationResult{
				BinQuantity:   10,
				LocationTotal: 10,
				PlatformStock: 10,
			},
			wantErr: false,
		},
		{
			name: "success: receive filling bin to capacity derives full occupancy",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReceiveRequest{
					ProductID:  7,
					LocationID: 1,
					BinAddress: "R01-L1-P01",
					Quantity:   60,
					ActorID:    42,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.inventoryRepo.On("ProductExistsForUpdateTx", mock.Anything, mock.Anything, uint64(7)).Return(true, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R01-L1-P01").
					Return(&model.BinView{
						ID:              11,
						Address:         "R01-L1-P01",
						OccupancyStatus: constant.OccupancyPartial,
						CurrentQuantity: 40,
						Capacity:        100,
						Status:          constant.BinStatusActive,
						LocationID:      1,
					}, nil).Once()
				f.binRepo.On("UpdateBinQuantityTx", mock.Anything, mock.Anything, uint64(11), int64(100), constant.OccupancyFull).Return(nil).Once()
				f.inventoryRepo.On("UpsertInventoryTx", mock.Anything, mock.Anything, uint64(7), uint64(1), int64(60)).Return(int64(100), nil).Once()
				f.inventoryRepo.On("InsertMovementTx", mock.Anything, mock.Anything, mock.Anything).Return(uint64(2), nil).Once()
				f.inventoryRepo.On("UpsertAssignmentTx", mock.Anything, mock.Anything, uint64(11), uint64(7), int64(60)).Return(nil).Once()
				f.inventoryRepo.On("RecomputeProductStockTx", mock.Anything, mock.Anything, uint64(7)).Return(int64(100), nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			want: &model.AllocationResult{
				BinQuantity:   100,
				LocationTotal: 100,
				PlatformStock: 100,
			},
			wantErr: false,
		},
		{
			name: "error: zero quantity rejected before any storage work",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReceiveRequest{
					ProductID:  7,
					LocationID: 1,
					BinAddress: "R01-L1-P01",
					Quantity:   0,
				},
			},
			wantErr:     true,
			wantErrType: constant.ErrInvalidQuantity,
		},
		{
			name: "error: blocked bin rejected and nothing mutated",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReceiveRequest{
					ProductID:  7,
					LocationID: 1,
					BinAddress: "R01-L1-P02",
					Quantity:   5,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.inventoryRepo.On("ProductExistsForUpdateTx", mock.Anything, mock.Anything, uint64(7)).Return(true, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R01-L1-P02").
					Return(&model.BinView{
						ID:              12,
						Address:         "R01-L1-P02",
						OccupancyStatus: constant.OccupancyBlocked,
						CurrentQuantity: 3,
						Capacity:        100,
						Status:          constant.BinStatusActive,
						LocationID:      1,
					}, nil).Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrBinBlocked,
		},
		{
			name: "error: unknown address returns BinNotFound",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReceiveRequest{
					ProductID:  7,
					LocationID: 1,
					BinAddress: "R99-L9-P99",
					Quantity:   5,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.inventoryRepo.On("ProductExistsForUpdateTx", mock.Anything, mock.Anything, uint64(7)).Return(true, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R99-L9-P99").Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrBinNotFound,
		},
		{
			name: "error: unknown product returns ProductNotFound",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReceiveRequest{
					ProductID:  999,
					LocationID: 1,
					BinAddress: "R01-L1-P01",
					Quantity:   5,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.inventoryRepo.On("ProductExistsForUpdateTx", mock.Anything, mock.Anything, uint64(999)).Return(false, nil).Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrProductNotFound,
		},
		{
			name: "error: ledger append failure rolls back the whole receive",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReceiveRequest{
					ProductID:  7,
					LocationID: 1,
					BinAddress: "R01-L1-P01",
					Quantity:   10,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.inventoryRepo.On("ProductExistsForUpdateTx", mock.Anything, mock.Anything, uint64(7)).Return(true, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R01-L1-P01").
					Return(&model.BinView{
						ID:              11,
						Address:         "R01-L1-P01",
						OccupancyStatus: constant.OccupancyEmpty,
						Capacity:        100,
						Status:          constant.BinStatusActive,
						LocationID:      1,
					}, nil).Once()
				f.binRepo.On("UpdateBinQuantityTx", mock.Anything, mock.Anything, uint64(11), int64(10), constant.OccupancyPartial).Return(nil).Once()
				f.inventoryRepo.On("UpsertInventoryTx", mock.Anything, mock.Anything, uint64(7), uint64(1), int64(10)).Return(int64(10), nil).Once()
				f.inventoryRepo.On("InsertMovementTx", mock.Anything, mock.Anything, mock.Anything).Return(uint64(0), errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInternal,
		},
		{
			name: "error: duplicate request id rejected before opening tx",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ReceiveRequest{
					ProductID:  7,
					LocationID: 1,
					BinAddress: "R01-L1-P01",
					Quantity:   10,
					RequestID:  "req-123",
				},
			},
			mockCall: func(f fields) {
				f.redisRepo.On("RegisterRequestID", mock.Anything, "req-123", 24*time.Hour).Return(false, nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrDuplicateRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appallocation.NewAllocationApp(testConfig(), tt.fields.txRepo, tt.fields.binRepo, tt.fields.inventoryRepo, tt.fields.redisRepo, nil)

			got, err := app.Receive(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Receive() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.wantErrType] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.wantErrType])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Receive() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAllocationApp_Move(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		binRepo       *binmocks.BinRepository
		inventoryRepo *inventorymocks.InventoryRepository
		redisRepo     *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.MoveRequest
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		want        *model.AllocationResult
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name: "success: move within location records paired out and in",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.MoveRequest{
					ProductID:      7,
					FromLocationID: 1,
					FromBinAddress: "R01-L1-P01",
					ToLocationID:   1,
					ToBinAddress:   "R01-L1-P02",
					Quantity:       4,
					ActorID:        42,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.inventoryRepo.On("ProductExistsForUpdateTx", mock.Anything, mock.Anything, uint64(7)).Return(true, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R01-L1-P01").
					Return(&model.BinView{
						ID:              11,
						Address:         "R01-L1-P01",
						OccupancyStatus: constant.OccupancyPartial,
						CurrentQuantity: 10,
						Capacity:        100,
						Status:          constant.BinStatusActive,
						LocationID:      1,
					}, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R01-L1-P02").
					Return(&model.BinView{
						ID:              12,
						Address:         "R01-L1-P02",
						OccupancyStatus: constant.OccupancyEmpty,
						CurrentQuantity: 0,
						Capacity:        100,
						Status:          constant.BinStatusActive,
						LocationID:      1,
					}, nil).Once()
				f.binRepo.On("UpdateBinQuantityTx", mock.Anything, mock.Anything, uint64(11), int64(6), constant.OccupancyPartial).Return(nil).Once()
				f.binRepo.On("UpdateBinQuantityTx", mock.Anything, mock.Anything, uint64(12), int64(4), constant.OccupancyPartial).Return(nil).Once()
				f.inventoryRepo.On("UpsertInventoryTx", mock.Anything, mock.Anything, uint64(7), uint64(1), int64(-4)).Return(int64(6), nil).Once()
				f.inventoryRepo.On("UpsertInventoryTx", mock.Anything, mock.Anything, uint64(7), uint64(1), int64(4)).Return(int64(10), nil).Once()
				f.inventoryRepo.On("InsertMovementTx", mock.Anything, mock.Anything, mock.MatchedBy(func(item *model.InsertMovementTxItem) bool {
					return item.MovementType == constant.MovementOut && item.Quantity == 4
				})).Return(uint64(5), nil).Once()
				f.inventoryRepo.On("InsertMovementTx", mock.Anything, mock.Anything, mock.MatchedBy(func(item *model.InsertMovementTxItem) bool {
					return item.MovementType == constant.MovementIn && item.Quantity == 4
				})).Return(uint64(6), nil).Once()
				f.inventoryRepo.On("UpsertAssignmentTx", mock.Anything, mock.Anything, uint64(11), uint64(7), int64(-4)).Return(nil).Once()
				f.inventoryRepo.On("UpsertAssignmentTx", mock.Anything, mock.Anything, uint64(12), uint64(7), int64(4)).Return(nil).Once()
				f.inventoryRepo.On("RecomputeProductStockTx", mock.Anything, mock.Anything, uint64(7)).Return(int64(10), nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			want: &model.AllocationResult{
				BinQuantity:      4,
				LocationTotal:    10,
				PlatformStock:    10,
				SourceBinQty:     6,
				SourceLocationID: 1,
			},
			wantErr: false,
		},
		{
			name: "error: insufficient stock in source bin",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.MoveRequest{
					ProductID:      7,
					FromLocationID: 1,
					FromBinAddress: "R01-L1-P01",
					ToLocationID:   1,
					ToBinAddress:   "R01-L1-P02",
					Quantity:       50,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.inventoryRepo.On("ProductExistsForUpdateTx", mock.Anything, mock.Anything, uint64(7)).Return(true, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R01-L1-P01").
					Return(&model.BinView{
						ID:              11,
						OccupancyStatus: constant.OccupancyPartial,
						CurrentQuantity: 10,
						Capacity:        100,
						Status:          constant.BinStatusActive,
						LocationID:      1,
					}, nil).Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInsufficientStock,
		},
		{
			name: "error: destination resolution failure rolls back source decrement",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.MoveRequest{
					ProductID:      7,
					FromLocationID: 1,
					FromBinAddress: "R01-L1-P01",
					ToLocationID:   1,
					ToBinAddress:   "R09-L1-P01",
					Quantity:       4,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.inventoryRepo.On("ProductExistsForUpdateTx", mock.Anything, mock.Anything, uint64(7)).Return(true, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R01-L1-P01").
					Return(&model.BinView{
						ID:              11,
						OccupancyStatus: constant.OccupancyPartial,
						CurrentQuantity: 10,
						Capacity:        100,
						Status:          constant.BinStatusActive,
						LocationID:      1,
					}, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R09-L1-P01").Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrBinNotFound,
		},
		{
			name: "error: missing source inventory aggregate rolls back the move",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.MoveRequest{
					ProductID:      7,
					FromLocationID: 1,
					FromBinAddress: "R01-L1-P01",
					ToLocationID:   1,
					ToBinAddress:   "R01-L1-P02",
					Quantity:       4,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.inventoryRepo.On("ProductExistsForUpdateTx", mock.Anything, mock.Anything, uint64(7)).Return(true, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R01-L1-P01").
					Return(&model.BinView{
						ID:              11,
						OccupancyStatus: constant.OccupancyPartial,
						CurrentQuantity: 10,
						Capacity:        100,
						Status:          constant.BinStatusActive,
						LocationID:      1,
					}, nil).Once()
				f.binRepo.On("ResolveBinForUpdateTx", mock.Anything, mock.Anything, uint64(1), "R01-L1-P02").
					Return(&model.BinView{
						ID:              12,
						OccupancyStatus: constant.OccupancyEmpty,
						CurrentQuantity: 0,
						Capacity:        100,
						Status:          constant.BinStatusActive,
						LocationID:      1,
					}, nil).Once()
				f.binRepo.On("UpdateBinQuantityTx", mock.Anything, mock.Anything, uint64(11), int64(6), constant.OccupancyPartial).Return(nil).Once()
				f.binRepo.On("UpdateBinQuantityTx", mock.Anything, mock.Anything, uint64(12), int64(4), constant.OccupancyPartial).Return(nil).Once()
				f.inventoryRepo.On("UpsertInventoryTx", mock.Anything, mock.Anything, uint64(7), uint64(1), int64(-4)).Return(int64(0), sql.ErrNoRows).Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInternal,
		},
		{
			name: "error: same source and destination bin",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				binRepo:       binmocks.NewBinRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.MoveRequest{
					ProductID:      7,
					FromLocationID: 1,
					FromBinAddress: "R01-L1-P01",
					ToLocationID:   1,
					ToBinAddress:   "R01-L1-P01",
					Quantity:       4,
				},
			},
			wantErr:     true,
			wantErrType: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appallocation.NewAllocationApp(testConfig(), tt.fields.txRepo, tt.fields.binRepo, tt.fields.inventoryRepo, tt.fields.redisRepo, nil)

			got, err := app.Move(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Move() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.wantErrType] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.wantErrType])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Move() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
