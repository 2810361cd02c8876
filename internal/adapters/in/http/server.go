package http

import (
	"errors"
	"net/http"
	"strconv"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/optimization"
	"logistics/internal/core/domain/model/schedule"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// principalHeader carries the caller's identity. The ledger treats it as an
// opaque token; there is no authentication layer in front of it.
const principalHeader = "X-Principal"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerCarrierHandler        commands.RegisterCarrierCommandHandler
	setCarrierAvailabilityHandler commands.SetCarrierAvailabilityCommandHandler
	updateCarrierLocationHandler  commands.UpdateCarrierLocationCommandHandler
	addRouteHandler               commands.AddRouteCommandHandler
	createScheduleHandler         commands.CreateScheduleCommandHandler
	updateSchedulePriorityHandler commands.UpdateSchedulePriorityCommandHandler
	submitOptimizationHandler     commands.SubmitOptimizationCommandHandler

	// Query handlers
	getCarrierHandler            queries.GetCarrierQueryHandler
	getCarrierCapacityHandler    queries.GetCarrierCapacityQueryHandler
	getAvailableCarriersHandler  queries.GetAvailableCarriersQueryHandler
	getRouteHandler              queries.GetRouteQueryHandler
	getScheduleHandler           queries.GetScheduleQueryHandler
	getOptimizationHandler       queries.GetOptimizationQueryHandler
	getLatestOptimizationHandler queries.GetLatestOptimizationQueryHandler
	getRegistryStatsHandler      queries.GetRegistryStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerCarrierHandler commands.RegisterCarrierCommandHandler,
	setCarrierAvailabilityHandler commands.SetCarrierAvailabilityCommandHandler,
	updateCarrierLocationHandler commands.UpdateCarrierLocationCommandHandler,
	addRouteHandler commands.AddRouteCommandHandler,
	createScheduleHandler commands.CreateScheduleCommandHandler,
	updateSchedulePriorityHandler commands.UpdateSchedulePriorityCommandHandler,
	submitOptimizationHandler commands.SubmitOptimizationCommandHandler,
	getCarrierHandler queries.GetCarrierQueryHandler,
	getCarrierCapacityHandler queries.GetCarrierCapacityQueryHandler,
	getAvailableCarriersHandler queries.GetAvailableCarriersQueryHandler,
	getRouteHandler queries.GetRouteQueryHandler,
	getScheduleHandler queries.GetScheduleQueryHandler,
	getOptimizationHandler queries.GetOptimizationQueryHandler,
	getLatestOptimizationHandler queries.GetLatestOptimizationQueryHandler,
	getRegistryStatsHandler queries.GetRegistryStatsQueryHandler,
) *Server {
	return &Server{
		registerCarrierHandler:        registerCarrierHandler,
		setCarrierAvailabilityHandler: setCarrierAvailabilityHandler,
		updateCarrierLocationHandler:  updateCarrierLocationHandler,
		addRouteHandler:               addRouteHandler,
		createScheduleHandler:         createScheduleHandler,
		updateSchedulePriorityHandler: updateSchedulePriorityHandler,
		submitOptimizationHandler:     submitOptimizationHandler,
		getCarrierHandler:             getCarrierHandler,
		getCarrierCapacityHandler:     getCarrierCapacityHandler,
		getAvailableCarriersHandler:   getAvailableCarriersHandler,
		getRouteHandler:               getRouteHandler,
		getScheduleHandler:            getScheduleHandler,
		getOptimizationHandler:        getOptimizationHandler,
		getLatestOptimizationHandler:  getLatestOptimizationHandler,
		getRegistryStatsHandler:       getRegistryStatsHandler,
	}
}

// RegisterRoutes mounts every API endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/carriers", s.RegisterCarrier)
	api.PUT("/carriers/availability", s.SetCarrierAvailability)
	api.PUT("/carriers/location", s.UpdateCarrierLocation)
	api.GET("/carriers/available", s.GetAvailableCarriers)
	api.GET("/carriers/:id", s.GetCarrier)
	api.GET("/carriers/:id/capacity", s.GetCarrierCapacity)

	api.POST("/routes", s.AddRoute)
	api.GET("/routes/:id", s.GetRoute)

	api.POST("/schedules", s.CreateSchedule)
	api.GET("/schedules/:id", s.GetSchedule)
	api.PUT("/schedules/:id/priority", s.UpdateSchedulePriority)
	api.GET("/schedules/:id/optimizations/latest", s.GetLatestOptimization)

	api.POST("/optimizations", s.SubmitOptimization)
	api.GET("/optimizations/:id", s.GetOptimization)
	api.GET("/efficiency", s.ComputeEfficiency)

	api.GET("/stats", s.GetRegistryStats)
}

// RegisterCarrier handles POST /api/v1/carriers.
func (s *Server) RegisterCarrier(ctx echo.Context) error {
	caller, err := callerPrincipal(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req RegisterCarrierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterCarrierCommand(caller, req.Name, req.VehicleType, req.MaxCapacity, req.Location)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.registerCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SetCarrierAvailability handles PUT /api/v1/carriers/availability.
func (s *Server) SetCarrierAvailability(ctx echo.Context) error {
	caller, err := callerPrincipal(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req SetAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSetCarrierAvailabilityCommand(caller, req.Available)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.setCarrierAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateCarrierLocation handles PUT /api/v1/carriers/location.
func (s *Server) UpdateCarrierLocation(ctx echo.Context) error {
	caller, err := callerPrincipal(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateCarrierLocationCommand(caller, req.Location)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateCarrierLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetCarrier handles GET /api/v1/carriers/:id.
func (s *Server) GetCarrier(ctx echo.Context) error {
	id, err := kernel.NewPrincipal(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetCarrierQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	found, err := s.getCarrierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Carrier{
		ID:           found.ID,
		Name:         found.Name,
		VehicleType:  found.VehicleType,
		MaxCapacity:  found.MaxCapacity,
		CurrentLoad:  found.CurrentLoad,
		Available:    found.Available,
		Location:     found.Location,
		Rating:       found.Rating,
		RegisteredAt: uint64(found.RegisteredAt),
	})
}

// GetCarrierCapacity handles GET /api/v1/carriers/:id/capacity.
func (s *Server) GetCarrierCapacity(ctx echo.Context) error {
	id, err := kernel.NewPrincipal(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetCarrierCapacityQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	capacity, err := s.getCarrierCapacityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CarrierCapacity{
		ID:                id.String(),
		AvailableCapacity: capacity,
	})
}

// GetAvailableCarriers handles GET /api/v1/carriers/available.
func (s *Server) GetAvailableCarriers(ctx echo.Context) error {
	query := queries.NewGetAvailableCarriersQuery()

	carriers, err := s.getAvailableCarriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]AvailableCarrier, len(carriers))
	for i, found := range carriers {
		response[i] = AvailableCarrier{
			ID:                found.ID,
			Name:              found.Name,
			VehicleType:       found.VehicleType,
			Location:          found.Location,
			AvailableCapacity: found.AvailableCapacity,
			Rating:            found.Rating,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddRoute handles POST /api/v1/routes. The caller is the carrier that
// publishes the route.
func (s *Server) AddRoute(ctx echo.Context) error {
	caller, err := callerPrincipal(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AddRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddRouteCommand(caller, req.Origin, req.Destination, req.EstimatedTime, req.CostPerUnit)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.addRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetRoute handles GET /api/v1/routes/:id.
func (s *Server) GetRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetRouteQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	found, err := s.getRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Route{
		ID:            found.ID,
		Carrier:       found.Carrier,
		Origin:        found.Origin,
		Destination:   found.Destination,
		EstimatedTime: found.EstimatedTime,
		CostPerUnit:   found.CostPerUnit,
		Active:        found.Active,
	})
}

// CreateSchedule handles POST /api/v1/schedules. The caller becomes the
// schedule's coordinator.
func (s *Server) CreateSchedule(ctx echo.Context) error {
	caller, err := callerPrincipal(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	carrierID, err := kernel.NewPrincipal(req.Carrier)
	if err != nil {
		return badRequest(ctx, err)
	}

	shipments := make([]kernel.UUID, len(req.Shipments))
	for i, raw := range req.Shipments {
		shipments[i], err = kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	cmd, err := commands.NewCreateScheduleCommand(caller, carrierID, shipments, schedule.Priority(req.Priority))
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.createScheduleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetSchedule handles GET /api/v1/schedules/:id.
func (s *Server) GetSchedule(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetScheduleQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	found, err := s.getScheduleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Schedule{
		ID:             found.ID,
		Coordinator:    found.Coordinator,
		Carrier:        found.Carrier,
		Shipments:      found.Shipments,
		OptimizedRoute: found.OptimizedRoute,
		TotalDistance:  found.TotalDistance,
		EstimatedTime:  found.EstimatedTime,
		Priority:       found.Priority,
		CreatedAt:      uint64(found.CreatedAt),
		Status:         found.Status,
	})
}

// UpdateSchedulePriority handles PUT /api/v1/schedules/:id/priority.
func (s *Server) UpdateSchedulePriority(ctx echo.Context) error {
	caller, err := callerPrincipal(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdatePriorityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateSchedulePriorityCommand(caller, id, schedule.Priority(req.Priority))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateSchedulePriorityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SubmitOptimization handles POST /api/v1/optimizations.
func (s *Server) SubmitOptimization(ctx echo.Context) error {
	caller, err := callerPrincipal(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req SubmitOptimizationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSubmitOptimizationCommand(
		caller,
		req.ScheduleID,
		req.OriginalRoute,
		req.OptimizedRoute,
		req.DistanceSaved,
		req.TimeSaved,
		req.Algorithm,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.submitOptimizationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetOptimization handles GET /api/v1/optimizations/:id.
func (s *Server) GetOptimization(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOptimizationQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	found, err := s.getOptimizationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, optimizationResponse(found))
}

// GetLatestOptimization handles GET /api/v1/schedules/:id/optimizations/latest.
func (s *Server) GetLatestOptimization(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetLatestOptimizationQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	found, err := s.getLatestOptimizationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, optimizationResponse(found))
}

// ComputeEfficiency handles GET /api/v1/efficiency. A pure calculation over
// the original and optimized query parameters; nothing is read or written.
func (s *Server) ComputeEfficiency(ctx echo.Context) error {
	original, err := strconv.Atoi(ctx.QueryParam("original"))
	if err != nil {
		return badRequest(ctx, err)
	}

	optimized, err := strconv.Atoi(ctx.QueryParam("optimized"))
	if err != nil {
		return badRequest(ctx, err)
	}

	efficiency, err := optimization.Efficiency(original, optimized)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, EfficiencyResponse{
		OriginalDistance:  original,
		OptimizedDistance: optimized,
		Efficiency:        efficiency,
	})
}

// GetRegistryStats handles GET /api/v1/stats.
func (s *Server) GetRegistryStats(ctx echo.Context) error {
	stats, err := s.getRegistryStatsHandler.Handle(ctx.Request().Context(), queries.NewGetRegistryStatsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RegistryStats{
		Carriers:      stats.Carriers,
		Routes:        stats.Routes,
		Schedules:     stats.Schedules,
		Optimizations: stats.Optimizations,
	})
}

func optimizationResponse(found queries.GetOptimizationQueryResponse) Optimization {
	return Optimization{
		ID:             found.ID,
		ScheduleID:     found.ScheduleID,
		OriginalRoute:  found.OriginalRoute,
		OptimizedRoute: found.OptimizedRoute,
		DistanceSaved:  found.DistanceSaved,
		TimeSaved:      found.TimeSaved,
		Algorithm:      found.Algorithm,
		CreatedAt:      uint64(found.CreatedAt),
	}
}

func callerPrincipal(ctx echo.Context) (kernel.Principal, error) {
	return kernel.NewPrincipal(ctx.Request().Header.Get(principalHeader))
}

func pathID(ctx echo.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("id"), 10, 64)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// domainError translates application layer errors into HTTP responses.
// Coded rejections keep their ledger code in the body so clients can
// distinguish, say, an unknown carrier from an unknown schedule.
func domainError(ctx echo.Context, err error) error {
	if code, ok := errs.CodeOf(err); ok {
		return ctx.JSON(statusOf(code), Error{
			Code:       statusOf(code),
			DomainCode: int(code),
			Message:    err.Error(),
		})
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return badRequest(ctx, err)
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "internal error",
	})
}

func statusOf(code errs.Code) int {
	switch code {
	case errs.CodeCarrierNotFound, errs.CodeScheduleNotFound:
		return http.StatusNotFound
	case errs.CodeAlreadyRegistered:
		return http.StatusConflict
	case errs.CodeUnauthorized:
		return http.StatusForbidden
	case errs.CodeInvalidCapacity, errs.CodeInvalidPriority, errs.CodeDivisionByZero:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
