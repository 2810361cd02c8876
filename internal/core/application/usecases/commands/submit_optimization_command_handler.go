package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/schedule"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// SubmitOptimizationCommandHandler accepts a route optimization into the
// ledger. The minted record and the schedule's updated route plan are
// persisted in one transaction: both commit together or neither does.
type SubmitOptimizationCommandHandler struct {
	uowFactory OptimizationUoWFactory
	recorder   services.OptimizationRecorder
	clock      ports.Clock
}

// NewSubmitOptimizationCommandHandler creates a handler for optimization submissions.
func NewSubmitOptimizationCommandHandler(
	uowFactory OptimizationUoWFactory,
	recorder services.OptimizationRecorder,
	clock ports.Clock,
) SubmitOptimizationCommandHandler {
	return SubmitOptimizationCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		clock:      clock,
	}
}

// Handle processes the submission and returns the allocated optimization ID.
// Rejections follow the contract order: schedule.ErrScheduleNotFound (401)
// when the schedule ID has no record, then schedule.ErrUnauthorized (400)
// when the caller is not the schedule's coordinator. A rejection leaves the
// schedule and the optimization counter untouched.
func (h *SubmitOptimizationCommandHandler) Handle(ctx context.Context, cmd SubmitOptimizationCommand) (uint64, error) {
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

	scheduleRepo := uow.ScheduleRepository()

	scheduleEntity, err := scheduleRepo.Get(ctx, cmd.ScheduleID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return 0, schedule.ErrScheduleNotFound
		}
		return 0, err
	}

	record, err := h.recorder.Record(
		cmd.Coordinator(),
		scheduleEntity,
		cmd.OriginalRoute(),
		cmd.OptimizedRoute(),
		cmd.DistanceSaved(),
		cmd.TimeSaved(),
		cmd.Algorithm(),
		now,
	)
	if err != nil {
		return 0, err
	}

	optimizationID, err := uow.OptimizationRepository().Add(ctx, record)
	if err != nil {
		return 0, err
	}

	if err = scheduleRepo.Update(ctx, scheduleEntity); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return optimizationID, nil
}
