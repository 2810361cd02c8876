package commands

import (
	"context"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/ports"
)

// RegisterCarrierCommandHandler handles the business logic for carrier
// registration: one record per identity, registration defaults applied by
// the domain, the whole transition committed atomically.
//
// Example:
//
//	handler := NewRegisterCarrierCommandHandler(uowFactory, clock)
//	cmd, _ := NewRegisterCarrierCommand(id, "Fast Delivery Co", "Truck", 1000, "New York")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("carrier registration failed: %w", err)
//	}
type RegisterCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
	clock      ports.Clock
}

// NewRegisterCarrierCommandHandler creates a handler for carrier registration.
func NewRegisterCarrierCommandHandler(uowFactory CarrierUoWFactory, clock ports.Clock) RegisterCarrierCommandHandler {
	return RegisterCarrierCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the registration command.
// Rejects with carrier.ErrAlreadyRegistered (302) when the identity already
// has a record and carrier.ErrInvalidCapacity (303) when the declared
// capacity is not positive. Rolls back on any error so a rejection leaves
// the registry untouched.
func (h *RegisterCarrierCommandHandler) Handle(ctx context.Context, cmd RegisterCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now, err := h.clock.Now(ctx)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierRepo := uow.CarrierRepository()

	exists, err := carrierRepo.Exists(ctx, cmd.ID())
	if err != nil {
		return err
	}
	if exists {
		return carrier.ErrAlreadyRegistered
	}

	carrierEntity, err := carrier.NewCarrier(
		cmd.ID(), cmd.Name(), cmd.VehicleType(), cmd.MaxCapacity(), cmd.Location(), now)
	if err != nil {
		return err
	}

	if err = carrierRepo.Add(ctx, carrierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
