package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/pkg/errs"
)

// UpdateCarrierLocationCommandHandler moves a carrier to a newly reported
// location. Only the location field changes.
type UpdateCarrierLocationCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewUpdateCarrierLocationCommandHandler creates a handler for location updates.
func NewUpdateCarrierLocationCommandHandler(uowFactory CarrierUoWFactory) UpdateCarrierLocationCommandHandler {
	return UpdateCarrierLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location update.
// Rejects with carrier.ErrCarrierNotFound (301) when the calling identity
// has no carrier record.
func (h *UpdateCarrierLocationCommandHandler) Handle(ctx context.Context, cmd UpdateCarrierLocationCommand) error {
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

	if err = carrierEntity.MoveTo(cmd.Location()); err != nil {
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
