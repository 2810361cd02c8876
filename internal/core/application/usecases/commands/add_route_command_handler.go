package commands

import (
	"context"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/route"
)

// AddRouteCommandHandler admits a new route into the route book. Only a
// registered carrier may publish routes; the route's sequential ID is
// allocated by the repository at insert and returned to the caller, so a
// rejected submission never consumes an ID.
type AddRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewAddRouteCommandHandler creates a handler for route publication.
func NewAddRouteCommandHandler(uowFactory RouteUoWFactory) AddRouteCommandHandler {
	return AddRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route publication and returns the allocated route ID.
// Rejects with carrier.ErrCarrierNotFound (301) when the calling identity is
// not a registered carrier; out-of-range time or cost estimates are rejected
// by the route constructor.
func (h *AddRouteCommandHandler) Handle(ctx context.Context, cmd AddRouteCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.CarrierRepository().Exists(ctx, cmd.Carrier())
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, carrier.ErrCarrierNotFound
	}

	routeEntity, err := route.NewRoute(
		cmd.Carrier(), cmd.Origin(), cmd.Destination(), cmd.EstimatedTime(), cmd.CostPerUnit())
	if err != nil {
		return 0, err
	}

	routeID, err := uow.RouteRepository().Add(ctx, routeEntity)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return routeID, nil
}
