package structure_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	appstructure "github.com/muhammadheryan/warehouse/application/structure"
	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	locationmocks "github.com/muhammadheryan/warehouse/mocks/repository/location"
	txmocks "github.com/muhammadheryan/warehouse/mocks/repository/tx"
	"github.com/muhammadheryan/warehouse/model"
	cerr "github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Structure: config.StructureConfig{DefaultBinCapacity: 100},
	}
}

func TestStructureApp_GenerateStructure(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		locationRepo *locationmocks.LocationRepository
	}
	type args struct {
		ctx context.Context
		req *model.GenerateStructureRequest
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		want        *model.GenerateStructureResponse
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name: "success: 2 racks x 3 levels x 4 positions creates 24 bins",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.GenerateStructureRequest{
					LocationID:        1,
					RackCount:         2,
					LevelsPerRack:     3,
					PositionsPerLevel: 4,
					ActorID:           42,
				},
			},
			mockCall: func(f fields) {
				f.locationRepo.On("GetLocationByID", mock.Anything, uint64(1)).
					Return(&model.LocationEntity{ID: 1, Status: constant.LocationStatusActive}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.locationRepo.On("GetZoneByCodeTx", mock.Anything, mock.Anything, uint64(1), constant.MainZoneCode).Return(nil, nil).Once()
				f.locationRepo.On("InsertZoneTx", mock.Anything, mock.Anything, mock.MatchedBy(func(z *model.ZoneEntity) bool {
					return z.LocationID == 1 && z.Code == constant.MainZoneCode
				})).Return(uint64(5), nil).Once()
				f.locationRepo.On("InsertRackTx", mock.Anything, mock.Anything, mock.MatchedBy(func(r *model.RackEntity) bool {
					return r.ZoneID == 5 && r.Code == "R01"
				})).Return(uint64(10), nil).Once()
				f.locationRepo.On("InsertRackTx", mock.Anything, mock.Anything, mock.MatchedBy(func(r *model.RackEntity) bool {
					return r.ZoneID == 5 && r.Code == "R02"
				})).Return(uint64(11), nil).Once()
				f.locationRepo.On("InsertBinTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.BinEntity")).Return(uint64(0), nil).Times(24)
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			want: &model.GenerateStructureResponse{
				ZoneID:      5,
				BinsCreated: 24,
			},
			wantErr: false,
		},
		{
			name: "error: structure already generated for location",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.GenerateStructureRequest{
					LocationID:        1,
					RackCount:         2,
					LevelsPerRack:     3,
					PositionsPerLevel: 4,
				},
			},
			mockCall: func(f fields) {
				f.locationRepo.On("GetLocationByID", mock.Anything, uint64(1)).
					Return(&model.LocationEntity{ID: 1, Status: constant.LocationStatusActive}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.locationRepo.On("GetZoneByCodeTx", mock.Anything, mock.Anything, uint64(1), constant.MainZoneCode).
					Return(&model.ZoneEntity{ID: 5, LocationID: 1, Code: constant.MainZoneCode}, nil).Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrStructureExists,
		},
		{
			name: "error: inactive location",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.GenerateStructureRequest{
					LocationID:        2,
					RackCount:         1,
					LevelsPerRack:     1,
					PositionsPerLevel: 1,
				},
			},
			mockCall: func(f fields) {
				f.locationRepo.On("GetLocationByID", mock.Anything, uint64(2)).
					Return(&model.LocationEntity{ID: 2, Status: constant.LocationStatusInactive}, nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrLocationNotFound,
		},
		{
			name: "error: rack count above bound",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.GenerateStructureRequest{
					LocationID:        1,
					RackCount:         51,
					LevelsPerRack:     3,
					PositionsPerLevel: 4,
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
			app := appstructure.NewStructureApp(testConfig(), tt.fields.txRepo, tt.fields.locationRepo)

			got, err := app.GenerateStructure(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GenerateStructure() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("GenerateStructure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Addresses must be deterministic: same inputs, same addresses, no
// duplicates within a rack grid.
func TestStructureApp_GenerateStructure_AddressDeterminism(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	locationRepo := locationmocks.NewLocationRepository(t)

	locationRepo.On("GetLocationByID", mock.Anything, uint64(1)).
		Return(&model.LocationEntity{ID: 1, Status: constant.LocationStatusActive}, nil).Once()
	txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
	locationRepo.On("GetZoneByCodeTx", mock.Anything, mock.Anything, uint64(1), constant.MainZoneCode).Return(nil, nil).Once()
	locationRepo.On("InsertZoneTx", mock.Anything, mock.Anything, mock.Anything).Return(uint64(5), nil).Once()
	locationRepo.On("InsertRackTx", mock.Anything, mock.Anything, mock.Anything).Return(uint64(10), nil).Times(2)

	seen := make(map[string]bool)
	var addresses []string
	locationRepo.On("InsertBinTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.BinEntity")).
		Run(func(args mock.Arguments) {
			bin := args.Get(2).(*model.BinEntity)
			addresses = append(addresses, bin.Address)
			seen[bin.Address] = true
		}).Return(uint64(0), nil).Times(12)
	txRepo.On("CommitTx", mock.Anything).Return(nil).Once()

	app := appstructure.NewStructureApp(testConfig(), txRepo, locationRepo)
	resp, err := app.GenerateStructure(context.Background(), &model.GenerateStructureRequest{
		LocationID:        1,
		RackCount:         2,
		LevelsPerRack:     2,
		PositionsPerLevel: 3,
	})
	if err != nil {
		t.Fatalf("GenerateStructure() error = %v", err)
	}
	if resp.BinsCreated != 12 {
		t.Fatalf("BinsCreated = %d, want 12", resp.BinsCreated)
	}
	if len(seen) != 12 {
		t.Fatalf("unique addresses = %d, want 12", len(seen))
	}

	var want []string
	for r := 1; r <= 2; r++ {
		for l := 1; l <= 2; l++ {
			for p := 1; p <= 3; p++ {
				want = append(want, fmt.Sprintf("R%02d-L%d-P%02d", r, l, p))
			}
		}
	}
	if !reflect.DeepEqual(addresses, want) {
		t.Fatalf("addresses = %v, want %v", addresses, want)
	}
}

func TestStructureApp_AddRackLevel(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		locationRepo *locationmocks.LocationRepository
	}
	tests := []struct {
		name        string
		fields      fields
		req         *model.AddRackLevelRequest
		mockCall    func(f fields)
		want        *model.AddRackResponse
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name: "success: new level gets a bin per existing position",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
			},
			req: &model.AddRackLevelRequest{RackID: 10},
			mockCall: func(f fields) {
				f.locationRepo.On("GetRackByID", mock.Anything, uint64(10)).
					Return(&model.RackEntity{ID: 10, Code: "R01", Levels: 3, Positions: 4}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.locationRepo.On("InsertBinTx", mock.Anything, mock.Anything, mock.MatchedBy(func(b *model.BinEntity) bool {
					return b.RackID == 10 && b.Level == 4
				})).Return(uint64(0), nil).Times(4)
				f.locationRepo.On("UpdateRackLevelsTx", mock.Anything, mock.Anything, uint64(10), 4).Return(nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			want:    &model.AddRackResponse{BinsCreated: 4},
			wantErr: false,
		},
		{
			name: "error: rack already at level cap",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
			},
			req: &model.AddRackLevelRequest{RackID: 10},
			mockCall: func(f fields) {
				f.locationRepo.On("GetRackByID", mock.Anything, uint64(10)).
					Return(&model.RackEntity{ID: 10, Code: "R01", Levels: 10, Positions: 4}, nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown rack",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
			},
			req: &model.AddRackLevelRequest{RackID: 99},
			mockCall: func(f fields) {
				f.locationRepo.On("GetRackByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appstructure.NewStructureApp(testConfig(), tt.fields.txRepo, tt.fields.locationRepo)

			got, err := app.AddRackLevel(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddRackLevel() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("AddRackLevel() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStructureApp_AddRackPositions(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		locationRepo *locationmocks.LocationRepository
	}
	tests := []struct {
		name        string
		fields      fields
		req         *model.AddRackPositionsRequest
		mockCall    func(f fields)
		want        *model.AddRackResponse
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name: "success: new positions appear on every level",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
			},
			req: &model.AddRackPositionsRequest{RackID: 10, Count: 2},
			mockCall: func(f fields) {
				f.locationRepo.On("GetRackByID", mock.Anything, uint64(10)).
					Return(&model.RackEntity{ID: 10, Code: "R01", Levels: 3, Positions: 4}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.locationRepo.On("InsertBinTx", mock.Anything, mock.Anything, mock.MatchedBy(func(b *model.BinEntity) bool {
					return b.RackID == 10 && b.Position >= 5 && b.Position <= 6
				})).Return(uint64(0), nil).Times(6)
				f.locationRepo.On("UpdateRackPositionsTx", mock.Anything, mock.Anything, uint64(10), 6).Return(nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			want:    &model.AddRackResponse{BinsCreated: 6},
			wantErr: false,
		},
		{
			name: "error: growth past position cap",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
			},
			req: &model.AddRackPositionsRequest{RackID: 10, Count: 5},
			mockCall: func(f fields) {
				f.locationRepo.On("GetRackByID", mock.Anything, uint64(10)).
					Return(&model.RackEntity{ID: 10, Code: "R01", Levels: 3, Positions: 18}, nil).Once()
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
			app := appstructure.NewStructureApp(testConfig(), tt.fields.txRepo, tt.fields.locationRepo)

			got, err := app.AddRackPositions(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddRackPositions() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("AddRackPositions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
