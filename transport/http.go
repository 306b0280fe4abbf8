package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	allocationapp "github.com/muhammadheryan/warehouse/application/allocation"
	binapp "github.com/muhammadheryan/warehouse/application/bin"
	ledgerapp "github.com/muhammadheryan/warehouse/application/ledger"
	reportapp "github.com/muhammadheryan/warehouse/application/report"
	structureapp "github.com/muhammadheryan/warehouse/application/structure"
	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	utilsContext "github.com/muhammadheryan/warehouse/utils/context"
	"github.com/muhammadheryan/warehouse/utils/errors"
	validatorx "github.com/muhammadheryan/warehouse/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	StructureApp  structureapp.StructureApp
	BinApp        binapp.BinApp
	AllocationApp allocationapp.AllocationApp
	LedgerApp     ledgerapp.LedgerApp
	ReportApp     reportapp.ReportApp
}

func NewTransport(structureApp structureapp.StructureApp, binApp binapp.BinApp, allocationApp allocationapp.AllocationApp, ledgerApp ledgerapp.LedgerApp, reportApp reportapp.ReportApp, jwtSecret, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		StructureApp:  structureApp,
		BinApp:        binApp,
		AllocationApp: allocationApp,
		LedgerApp:     ledgerApp,
		ReportApp:     reportApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Structure
	mux.HandleFunc("/locations/{locationID}/structure", rh.GenerateStructure).Methods(http.MethodPost)
	mux.HandleFunc("/racks/{rackID}/levels", rh.AddRackLevel).Methods(http.MethodPost)
	mux.HandleFunc("/racks/{rackID}/positions", rh.AddRackPositions).Methods(http.MethodPost)

	// Bin registry
	mux.HandleFunc("/locations/{locationID}/bins/{address}", rh.ResolveBin).Methods(http.MethodGet)
	mux.HandleFunc("/locations/{locationID}/empty-bins", rh.ListEmptyBins).Methods(http.MethodGet)
	mux.HandleFunc("/locations/{locationID}/bins/{address}/override", rh.SetBinOverride).Methods(http.MethodPut)
	mux.HandleFunc("/locations/{locationID}/bins/{address}/override", rh.ClearBinOverride).Methods(http.MethodDelete)

	// Allocation
	mux.HandleFunc("/receive", rh.Receive).Methods(http.MethodPost)
	mux.HandleFunc("/move", rh.Move).Methods(http.MethodPost)

	// Ledger and reporting
	mux.HandleFunc("/products/{productID}/movements", rh.Movements).Methods(http.MethodGet)
	mux.HandleFunc("/spaces", rh.FindEmptySpaces).Methods(http.MethodGet)
	mux.HandleFunc("/zones/{zoneID}/utilization", rh.UtilizationSummary).Methods(http.MethodGet)

	// Internal routes (service-to-service, API-key protected)
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/low-stock", rh.LowStock).Methods(http.MethodGet)
	internal.HandleFunc("/reconcile", rh.Reconcile).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(RequestIDMiddleware())
	mux.Use(ActorMiddleware(jwtSecret))

	return mux
}

// GenerateStructure handler
// @Summary Generate storage structure
// @Description Create the main zone, racks and bins for a location
// @Tags Structure
// @Accept json
// @Produce json
// @Param locationID path int true "Location ID"
// @Param request body model.GenerateStructureRequest true "Generate Structure Request"
// @Success 200 {object} model.GenerateStructureResponse
// @Failure 400 {object} errors.CustomError
// @Router /locations/{locationID}/structure [post]
func (s *RestHandler) GenerateStructure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locationID, err := pathID(r, "locationID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.GenerateStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.LocationID = locationID
	req.ActorID, _ = utilsContext.GetActorID(ctx)

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StructureApp.GenerateStructure(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddRackLevel handler
// @Summary Add a shelf level to a rack
// @Tags Structure
// @Produce json
// @Param rackID path int true "Rack ID"
// @Success 200 {object} model.AddRackResponse
// @Failure 400 {object} errors.CustomError
// @Router /racks/{rackID}/levels [post]
func (s *RestHandler) AddRackLevel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rackID, err := pathID(r, "rackID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req := model.AddRackLevelRequest{RackID: rackID}
	req.ActorID, _ = utilsContext.GetActorID(ctx)

	res, err := s.StructureApp.AddRackLevel(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddRackPositions handler
// @Summary Add bin positions to every level of a rack
// @Tags Structure
// @Accept json
// @Produce json
// @Param rackID path int true "Rack ID"
// @Param request body model.AddRackPositionsRequest true "Add Positions Request"
// @Success 200 {object} model.AddRackResponse
// @Failure 400 {object} errors.CustomError
// @Router /racks/{rackID}/positions [post]
func (s *RestHandler) AddRackPositions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rackID, err := pathID(r, "rackID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AddRackPositionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.RackID = rackID
	req.ActorID, _ = utilsContext.GetActorID(ctx)

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StructureApp.AddRackPositions(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ResolveBin handler
// @Summary Resolve a bin by address
// @Tags Bins
// @Produce json
// @Param locationID path int true "Location ID"
// @Param address path string true "Bin address, e.g. R01-L1-P01"
// @Success 200 {object} model.BinView
// @Failure 400 {object} errors.CustomError
// @Router /locations/{locationID}/bins/{address} [get]
func (s *RestHandler) ResolveBin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locationID, err := pathID(r, "locationID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	address := mux.Vars(r)["address"]

	res, err := s.BinApp.ResolveBin(ctx, locationID, address)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListEmptyBins handler
// @Summary List empty bins in a location
// @Tags Bins
// @Produce json
// @Param locationID path int true "Location ID"
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Success 200 {object} model.ListEmptyBinsResponse
// @Failure 400 {object} errors.CustomError
// @Router /locations/{locationID}/empty-bins [get]
func (s *RestHandler) ListEmptyBins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locationID, err := pathID(r, "locationID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req := model.ListEmptyBinsRequest{
		LocationID: locationID,
		Page:       queryInt(r, "page"),
		PerPage:    queryInt(r, "per_page"),
	}

	res, err := s.BinApp.ListEmptyBins(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SetBinOverride handler
// @Summary Block or reserve a bin
// @Tags Bins
// @Accept json
// @Produce json
// @Param locationID path int true "Location ID"
// @Param address path string true "Bin address"
// @Param request body model.BinOverrideRequest true "Override Request"
// @Success 200 {object} apiResponse
// @Failure 400 {object} errors.CustomError
// @Router /locations/{locationID}/bins/{address}/override [put]
func (s *RestHandler) SetBinOverride(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locationID, err := pathID(r, "locationID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.BinOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.LocationID = locationID
	req.Address = mux.Vars(r)["address"]
	req.ActorID, _ = utilsContext.GetActorID(ctx)

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.BinApp.SetOverride(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ClearBinOverride handler
// @Summary Clear a bin override, re-deriving occupancy from quantity
// @Tags Bins
// @Produce json
// @Param locationID path int true "Location ID"
// @Param address path string true "Bin address"
// @Success 200 {object} apiResponse
// @Failure 400 {object} errors.CustomError
// @Router /locations/{locationID}/bins/{address}/override [delete]
func (s *RestHandler) ClearBinOverride(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locationID, err := pathID(r, "locationID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	address := mux.Vars(r)["address"]
	actorID, _ := utilsContext.GetActorID(ctx)

	if err := s.BinApp.ClearOverride(ctx, locationID, address, actorID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// Receive handler
// @Summary Receive product quantity into a bin
// @Description Atomically books quantity into a bin, updating inventory aggregates and the movement ledger
// @Tags Allocation
// @Accept json
// @Produce json
// @Param request body model.ReceiveRequest true "Receive Request"
// @Param X-Request-ID header string false "Correlation id for exactly-once retries"
// @Success 200 {object} model.AllocationResult
// @Failure 400 {object} errors.CustomError
// @Router /receive [post]
func (s *RestHandler) Receive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ReceiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.ActorID, _ = utilsContext.GetActorID(ctx)
	req.RequestID = r.Header.Get("X-Request-ID")

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AllocationApp.Receive(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Move handler
// @Summary Move product quantity between bins
// @Tags Allocation
// @Accept json
// @Produce json
// @Param request body model.MoveRequest true "Move Request"
// @Param X-Request-ID header string false "Correlation id for exactly-once retries"
// @Success 200 {object} model.AllocationResult
// @Failure 400 {object} errors.CustomError
// @Router /move [post]
func (s *RestHandler) Move(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.ActorID, _ = utilsContext.GetActorID(ctx)
	req.RequestID = r.Header.Get("X-Request-ID")

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AllocationApp.Move(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Movements handler
// @Summary Replay the movement ledger for a product
// @Tags Ledger
// @Produce json
// @Param productID path int true "Product ID"
// @Param location_id query int false "Restrict to one location"
// @Success 200 {array} model.InventoryMovement
// @Failure 400 {object} errors.CustomError
// @Router /products/{productID}/movements [get]
func (s *RestHandler) Movements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := pathID(r, "productID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	locationID := uint64(queryInt(r, "location_id"))

	res, err := s.LedgerApp.Replay(ctx, productID, locationID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// FindEmptySpaces handler
// @Summary Find empty storage space
// @Tags Reports
// @Produce json
// @Param location_id query int true "Location ID"
// @Param granularity query string true "bin, shelf or rack"
// @Success 200 {object} model.FindEmptySpacesResponse
// @Failure 400 {object} errors.CustomError
// @Router /spaces [get]
func (s *RestHandler) FindEmptySpaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := model.FindEmptySpacesRequest{
		LocationID:  uint64(queryInt(r, "location_id")),
		Granularity: constant.SpaceGranularity(r.URL.Query().Get("granularity")),
		Page:        queryInt(r, "page"),
		PerPage:     queryInt(r, "per_page"),
	}
	if req.Granularity == "" {
		req.Granularity = constant.GranularityBin
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReportApp.FindEmptySpaces(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UtilizationSummary handler
// @Summary Zone occupancy summary
// @Tags Reports
// @Produce json
// @Param zoneID path int true "Zone ID"
// @Success 200 {object} model.UtilizationSummary
// @Failure 400 {object} errors.CustomError
// @Router /zones/{zoneID}/utilization [get]
func (s *RestHandler) UtilizationSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	zoneID, err := pathID(r, "zoneID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReportApp.UtilizationSummary(ctx, zoneID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// LowStock handler (internal)
// @Summary Inventory rows at or below their reorder point
// @Tags Internal
// @Produce json
// @Param location_id query int false "Location ID"
// @Success 200 {array} model.LowStockItem
// @Router /internal/low-stock [get]
func (s *RestHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locationID := uint64(queryInt(r, "location_id"))

	res, err := s.ReportApp.LowStockCandidates(ctx, locationID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Reconcile handler (internal)
// @Summary Compare ledger-derived totals with cached aggregates
// @Tags Internal
// @Produce json
// @Param product_id query int true "Product ID"
// @Param location_id query int true "Location ID"
// @Success 200 {object} model.ReconcileResult
// @Router /internal/reconcile [get]
func (s *RestHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID := uint64(queryInt(r, "product_id"))
	locationID := uint64(queryInt(r, "location_id"))

	res, err := s.LedgerApp.ReconcileLocation(ctx, productID, locationID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func pathID(r *http.Request, name string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[name], 10, 64)
}

func queryInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	return v
}
