package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/schedule"
	"logistics/internal/pkg/errs"
)

// UpdateSchedulePriorityCommandHandler changes a schedule's priority on
// behalf of its coordinator. Only the priority field changes.
type UpdateSchedulePriorityCommandHandler struct {
	uowFactory ScheduleUoWFactory
}

// NewUpdateSchedulePriorityCommandHandler creates a handler for priority updates.
func NewUpdateSchedulePriorityCommandHandler(uowFactory ScheduleUoWFactory) UpdateSchedulePriorityCommandHandler {
	return UpdateSchedulePriorityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the priority update.
// Rejections follow the contract order: schedule.ErrScheduleNotFound (401)
// when the ID has no record, schedule.ErrUnauthorized (400) when the caller
// is not the schedule's coordinator, schedule.ErrInvalidPriority (402) when
// the new priority is outside {1,2,3,4}.
func (h *UpdateSchedulePriorityCommandHandler) Handle(ctx context.Context, cmd UpdateSchedulePriorityCommand) error {
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

	scheduleRepo := uow.ScheduleRepository()

	scheduleEntity, err := scheduleRepo.Get(ctx, cmd.ScheduleID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return schedule.ErrScheduleNotFound
		}
		return err
	}

	if err = scheduleEntity.ChangePriority(cmd.Caller(), cmd.Priority()); err != nil {
		return err
	}

	if err = scheduleRepo.Update(ctx, scheduleEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
