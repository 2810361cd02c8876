package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/pkg/errs"
)

// SetCarrierAvailabilityCommandHandler overwrites a carrier's availability
// flag, leaving every other field unchanged.
type SetCarrierAvailabilityCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewSetCarrierAvailabilityCommandHandler creates a handler for availability updates.
func NewSetCarrierAvailabilityCommandHandler(uowFactory CarrierUoWFactory) SetCarrierAvailabilityCommandHandler {
	return SetCarrierAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability update.
// Rejects with carrier.ErrCarrierNotFound (301) when the calling identity
// has no carrier record.
func (h *SetCarrierAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetCarrierAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierRepo := uow.CarrierRepository()

	carrierEntity, err := carrierRepo.Get(ctx, cmd.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return carrier.ErrCarrierNotFound
		}
		return err
	}

	if err = carrierEntity.SetAvailability(cmd.Available()); err != nil {
		return err
	}

	if err = carrierRepo.Update(ctx, carrierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
