package commands_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/optimization"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/schedule"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.Principal) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) Exists(ctx context.Context, id kernel.Principal) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) (uint64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockRouteRepository) Get(ctx context.Context, id uint64) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

type MockScheduleRepository struct{ mock.Mock }

func (m *MockScheduleRepository) Add(ctx context.Context, s *schedule.DeliverySchedule) (uint64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockScheduleRepository) Update(ctx context.Context, s *schedule.DeliverySchedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScheduleRepository) Get(ctx context.Context, id uint64) (*schedule.DeliverySchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.DeliverySchedule), args.Error(1)
}

type MockOptimizationRepository struct{ mock.Mock }

func (m *MockOptimizationRepository) Add(ctx context.Context, r *optimization.RouteOptimization) (uint64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockOptimizationRepository) Get(ctx context.Context, id uint64) (*optimization.RouteOptimization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*optimization.RouteOptimization), args.Error(1)
}

func (m *MockOptimizationRepository) GetLatestBySchedule(
	ctx context.Context, scheduleID uint64,
) (*optimization.RouteOptimization, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*optimization.RouteOptimization), args.Error(1)
}

// MockUoW satisfies every composed unit of work interface in the package so
// each handler test can use the same transaction double.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockUoW) ScheduleRepository() ports.ScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduleRepository)
}

func (m *MockUoW) OptimizationRepository() ports.OptimizationRepository {
	args := m.Called()
	return args.Get(0).(ports.OptimizationRepository)
}

type MockCarrierUoWFactory struct{ mock.Mock }

func (m *MockCarrierUoWFactory) Create() commands.CarrierUoW {
	args := m.Called()
	return args.Get(0).(commands.CarrierUoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockScheduleUoWFactory struct{ mock.Mock }

func (m *MockScheduleUoWFactory) Create() commands.ScheduleUoW {
	args := m.Called()
	return args.Get(0).(commands.ScheduleUoW)
}

type MockOptimizationUoWFactory struct{ mock.Mock }

func (m *MockOptimizationUoWFactory) Create() commands.OptimizationUoW {
	args := m.Called()
	return args.Get(0).(commands.OptimizationUoW)
}

// FixedClock returns the same height on every call.
type FixedClock struct {
	Height kernel.Height
}

func (c FixedClock) Now(_ context.Context) (kernel.Height, error) {
	return c.Height, nil
}

func mustPrincipal(value string) kernel.Principal {
	principal, err := kernel.NewPrincipal(value)
	if err != nil {
		panic(err)
	}
	return principal
}
