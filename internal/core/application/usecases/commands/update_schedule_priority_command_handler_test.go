package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/schedule"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredSchedule(t *testing.T, id uint64, coordinator kernel.Principal) *schedule.DeliverySchedule {
	t.Helper()

	carrierID := mustPrincipal("carrier-1")
	sched, err := schedule.RestoreDeliverySchedule(
		id, coordinator, carrierID, []kernel.UUID{kernel.NewUUID()},
		[]string{}, 0, 0, schedule.PriorityLow, 20, schedule.StatusActive)
	require.NoError(t, err)
	return sched
}

func TestUpdateSchedulePriorityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	coordinator := mustPrincipal("coordinator-1")
	cmd, _ := commands.NewUpdateSchedulePriorityCommand(coordinator, 1, schedule.PriorityUrgent)

	sched := restoredSchedule(t, 1, coordinator)

	repo := new(MockScheduleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint64(1)).Return(sched, nil).Once(),
		repo.On("Update", mock.Anything, sched).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateSchedulePriorityCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, schedule.PriorityUrgent, sched.Priority())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateSchedulePriorityCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	coordinator := mustPrincipal("coordinator-1")
	cmd, _ := commands.NewUpdateSchedulePriorityCommand(coordinator, 99, schedule.PriorityUrgent)

	repo := new(MockScheduleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint64(99)).Return(nil, errs.NewObjectNotFoundError("scheduleID", 99)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateSchedulePriorityCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, schedule.ErrScheduleNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateSchedulePriorityCommandHandler_Handle_Unauthorized(t *testing.T) {
	ctx := t.Context()
	coordinator := mustPrincipal("coordinator-1")
	stranger := mustPrincipal("stranger")
	cmd, _ := commands.NewUpdateSchedulePriorityCommand(stranger, 1, schedule.PriorityUrgent)

	sched := restoredSchedule(t, 1, coordinator)

	repo := new(MockScheduleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint64(1)).Return(sched, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateSchedulePriorityCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, schedule.ErrUnauthorized)
	require.Equal(t, schedule.PriorityLow, sched.Priority())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateSchedulePriorityCommandHandler_Handle_InvalidPriority(t *testing.T) {
	// Authorization is checked before the new priority, so a stranger with a
	// bad priority is rejected as unauthorized, and the coordinator with a
	// bad priority gets the priority rejection.
	ctx := t.Context()
	coordinator := mustPrincipal("coordinator-1")
	cmd, _ := commands.NewUpdateSchedulePriorityCommand(coordinator, 1, schedule.Priority(0))

	sched := restoredSchedule(t, 1, coordinator)

	repo := new(MockScheduleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint64(1)).Return(sched, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateSchedulePriorityCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, schedule.ErrInvalidPriority)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
