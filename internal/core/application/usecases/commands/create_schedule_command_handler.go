package commands

import (
	"context"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/schedule"
	"logistics/internal/core/ports"
)

// CreateScheduleCommandHandler creates a delivery schedule for a coordinator.
// The carrier must be registered and the priority must belong to the fixed
// taxonomy; the schedule's sequential ID is allocated by the repository at
// insert, so a rejected creation never consumes an ID.
type CreateScheduleCommandHandler struct {
	uowFactory ScheduleUoWFactory
	clock      ports.Clock
}

// NewCreateScheduleCommandHandler creates a handler for schedule creation.
func NewCreateScheduleCommandHandler(uowFactory ScheduleUoWFactory, clock ports.Clock) CreateScheduleCommandHandler {
	return CreateScheduleCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the schedule creation and returns the allocated schedule ID.
// Rejects with carrier.ErrCarrierNotFound (301) when the named carrier is
// unregistered and schedule.ErrInvalidPriority (402) when the priority is
// outside {1,2,3,4}. The carrier check runs first.
func (h *CreateScheduleCommandHandler) Handle(ctx context.Context, cmd CreateScheduleCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now, err := h.clock.Now(ctx)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	scheduleEntity, err := schedule.NewDeliverySchedule(
		cmd.Coordinator(), cmd.Carrier(), cmd.Shipments(), cmd.Priority(), now)
	if err != nil {
		return 0, err
	}

	scheduleID, err := uow.ScheduleRepository().Add(ctx, scheduleEntity)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return scheduleID, nil
}
