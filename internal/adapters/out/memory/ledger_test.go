package memory_test

import (
	"testing"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/schedule"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcCarrierUoWFactory func() commands.CarrierUoW

func (f funcCarrierUoWFactory) Create() commands.CarrierUoW { return f() }

type funcRouteUoWFactory func() commands.RouteUoW

func (f funcRouteUoWFactory) Create() commands.RouteUoW { return f() }

type funcScheduleUoWFactory func() commands.ScheduleUoW

func (f funcScheduleUoWFactory) Create() commands.ScheduleUoW { return f() }

type funcOptimizationUoWFactory func() commands.OptimizationUoW

func (f funcOptimizationUoWFactory) Create() commands.OptimizationUoW { return f() }

// ledgerFixture wires every command handler to one in-process ledger.
type ledgerFixture struct {
	ledger *memory.Ledger

	registerCarrier    commands.RegisterCarrierCommandHandler
	setAvailability    commands.SetCarrierAvailabilityCommandHandler
	addRoute           commands.AddRouteCommandHandler
	createSchedule     commands.CreateScheduleCommandHandler
	updatePriority     commands.UpdateSchedulePriorityCommandHandler
	submitOptimization commands.SubmitOptimizationCommandHandler
}

func newLedgerFixture() *ledgerFixture {
	ledger := memory.NewLedger()

	carrierFactory := funcCarrierUoWFactory(func() commands.CarrierUoW { return ledger.Create() })
	routeFactory := funcRouteUoWFactory(func() commands.RouteUoW { return ledger.Create() })
	scheduleFactory := funcScheduleUoWFactory(func() commands.ScheduleUoW { return ledger.Create() })
	optimizationFactory := funcOptimizationUoWFactory(func() commands.OptimizationUoW { return ledger.Create() })

	return &ledgerFixture{
		ledger:          ledger,
		registerCarrier: commands.NewRegisterCarrierCommandHandler(carrierFactory, ledger),
		setAvailability: commands.NewSetCarrierAvailabilityCommandHandler(carrierFactory),
		addRoute:        commands.NewAddRouteCommandHandler(routeFactory),
		createSchedule:  commands.NewCreateScheduleCommandHandler(scheduleFactory, ledger),
		updatePriority:  commands.NewUpdateSchedulePriorityCommandHandler(scheduleFactory),
		submitOptimization: commands.NewSubmitOptimizationCommandHandler(
			optimizationFactory, services.NewOptimizationRecorder(), ledger),
	}
}

func mustPrincipal(t *testing.T, value string) kernel.Principal {
	t.Helper()

	principal, err := kernel.NewPrincipal(value)
	require.NoError(t, err)
	return principal
}

func (f *ledgerFixture) register(t *testing.T, id kernel.Principal) {
	t.Helper()

	cmd, err := commands.NewRegisterCarrierCommand(id, "Fast Delivery Co", "Truck", 1000, "New York")
	require.NoError(t, err)
	require.NoError(t, f.registerCarrier.Handle(t.Context(), cmd))
}

// TestLedger_FullCoordinationScenario walks the whole coordination flow
// against the in-process ledger: registration, route admission, scheduling,
// and an accepted optimization writing through to the schedule.
func TestLedger_FullCoordinationScenario(t *testing.T) {
	ctx := t.Context()
	f := newLedgerFixture()
	carrierID := mustPrincipal(t, "carrier-1")
	coordinator := mustPrincipal(t, "coordinator-1")

	f.register(t, carrierID)

	routeCmd, err := commands.NewAddRouteCommand(carrierID, "New York", "Boston", 120, 5)
	require.NoError(t, err)
	routeID, err := f.addRoute.Handle(ctx, routeCmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), routeID)

	scheduleCmd, err := commands.NewCreateScheduleCommand(
		coordinator, carrierID, []kernel.UUID{kernel.NewUUID()}, schedule.PriorityHigh)
	require.NoError(t, err)
	scheduleID, err := f.createSchedule.Handle(ctx, scheduleCmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), scheduleID)

	optimizationCmd, err := commands.NewSubmitOptimizationCommand(
		coordinator, scheduleID, []string{"A", "B", "C"}, []string{"A", "C"}, 50, 60, "basic-optimization")
	require.NoError(t, err)
	optimizationID, err := f.submitOptimization.Handle(ctx, optimizationCmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), optimizationID)

	uow := f.ledger.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	sched, err := uow.ScheduleRepository().Get(ctx, scheduleID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, sched.OptimizedRoute())
	assert.Equal(t, 50, sched.TotalDistance())
	assert.Equal(t, 60, sched.EstimatedTime())

	latest, err := uow.OptimizationRepository().GetLatestBySchedule(ctx, scheduleID)
	require.NoError(t, err)
	assert.Equal(t, optimizationID, latest.ID())
}

func TestLedger_DuplicateRegistrationRejected(t *testing.T) {
	ctx := t.Context()
	f := newLedgerFixture()
	carrierID := mustPrincipal(t, "carrier-1")

	f.register(t, carrierID)

	cmd, err := commands.NewRegisterCarrierCommand(carrierID, "Other Name", "Van", 50, "Boston")
	require.NoError(t, err)
	err = f.registerCarrier.Handle(ctx, cmd)
	require.ErrorIs(t, err, carrier.ErrAlreadyRegistered)

	// The original record is unchanged.
	uow := f.ledger.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	existing, err := uow.CarrierRepository().Get(ctx, carrierID)
	require.NoError(t, err)
	assert.Equal(t, "Fast Delivery Co", existing.Name())
	assert.Equal(t, 1000, existing.MaxCapacity())
}

// TestLedger_RejectedCreationsConsumeNoIDs verifies the per-kind counters
// only advance on success: a rejected schedule creation leaves the next
// successful one with the same ID the rejected one would have taken.
func TestLedger_RejectedCreationsConsumeNoIDs(t *testing.T) {
	ctx := t.Context()
	f := newLedgerFixture()
	carrierID := mustPrincipal(t, "carrier-1")
	coordinator := mustPrincipal(t, "coordinator-1")
	unregistered := mustPrincipal(t, "ghost")

	f.register(t, carrierID)

	okCmd, err := commands.NewCreateScheduleCommand(
		coordinator, carrierID, []kernel.UUID{kernel.NewUUID()}, schedule.PriorityLow)
	require.NoError(t, err)
	first, err := f.createSchedule.Handle(ctx, okCmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first)

	badCmd, err := commands.NewCreateScheduleCommand(
		coordinator, unregistered, []kernel.UUID{kernel.NewUUID()}, schedule.PriorityLow)
	require.NoError(t, err)
	_, err = f.createSchedule.Handle(ctx, badCmd)
	require.ErrorIs(t, err, carrier.ErrCarrierNotFound)

	okCmd2, err := commands.NewCreateScheduleCommand(
		coordinator, carrierID, []kernel.UUID{kernel.NewUUID()}, schedule.PriorityLow)
	require.NoError(t, err)
	second, err := f.createSchedule.Handle(ctx, okCmd2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second, "Rejected creation must not consume an ID")
}

// TestLedger_RejectedOptimizationHasNoPartialEffects verifies an unauthorized
// submission changes neither the optimizer ledger nor the schedule.
func TestLedger_RejectedOptimizationHasNoPartialEffects(t *testing.T) {
	ctx := t.Context()
	f := newLedgerFixture()
	carrierID := mustPrincipal(t, "carrier-1")
	coordinator := mustPrincipal(t, "coordinator-1")
	stranger := mustPrincipal(t, "stranger")

	f.register(t, carrierID)

	scheduleCmd, err := commands.NewCreateScheduleCommand(
		coordinator, carrierID, []kernel.UUID{kernel.NewUUID()}, schedule.PriorityMedium)
	require.NoError(t, err)
	scheduleID, err := f.createSchedule.Handle(ctx, scheduleCmd)
	require.NoError(t, err)

	badCmd, err := commands.NewSubmitOptimizationCommand(
		stranger, scheduleID, []string{"A"}, []string{"B"}, 10, 10, "basic-optimization")
	require.NoError(t, err)
	_, err = f.submitOptimization.Handle(ctx, badCmd)
	require.ErrorIs(t, err, schedule.ErrUnauthorized)

	okCmd, err := commands.NewSubmitOptimizationCommand(
		coordinator, scheduleID, []string{"A"}, []string{"B"}, 10, 10, "basic-optimization")
	require.NoError(t, err)
	optimizationID, err := f.submitOptimization.Handle(ctx, okCmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), optimizationID, "Rejected submission must not consume an ID")
}

func TestLedger_SetAvailabilityRoundTrip(t *testing.T) {
	ctx := t.Context()
	f := newLedgerFixture()
	carrierID := mustPrincipal(t, "carrier-1")

	f.register(t, carrierID)

	cmd, err := commands.NewSetCarrierAvailabilityCommand(carrierID, false)
	require.NoError(t, err)
	require.NoError(t, f.setAvailability.Handle(ctx, cmd))

	uow := f.ledger.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	existing, err := uow.CarrierRepository().Get(ctx, carrierID)
	require.NoError(t, err)
	assert.False(t, existing.Available())
}

func TestLedger_ClockIsMonotonic(t *testing.T) {
	ctx := t.Context()
	ledger := memory.NewLedger()

	first, err := ledger.Now(ctx)
	require.NoError(t, err)
	second, err := ledger.Now(ctx)
	require.NoError(t, err)
	assert.Greater(t, uint64(second), uint64(first))
}
