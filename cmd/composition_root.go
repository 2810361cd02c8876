package cmd

import (
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      postgres.HeightClock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      postgres.NewHeightClock(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterCarrierCommandHandler() commands.RegisterCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCarrierCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSetCarrierAvailabilityCommandHandler() commands.SetCarrierAvailabilityCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCarrierAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCarrierLocationCommandHandler() commands.UpdateCarrierLocationCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCarrierLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateAddRouteCommandHandler() commands.AddRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateScheduleCommandHandler() commands.CreateScheduleCommandHandler {
	var f commands.ScheduleUoWFactory = FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateScheduleCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateSchedulePriorityCommandHandler() commands.UpdateSchedulePriorityCommandHandler {
	var f commands.ScheduleUoWFactory = FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateSchedulePriorityCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitOptimizationCommandHandler() commands.SubmitOptimizationCommandHandler {
	var f commands.OptimizationUoWFactory = FuncOptimizationUoWFactory(func() commands.OptimizationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOptimizationCommandHandler(f, services.NewOptimizationRecorder(), c.clock)
}

func (c *CompositionRoot) CreateGetCarrierQueryHandler() queries.GetCarrierQueryHandler {
	return queries.NewGetCarrierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierCapacityQueryHandler() queries.GetCarrierCapacityQueryHandler {
	return queries.NewGetCarrierCapacityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableCarriersQueryHandler() queries.GetAvailableCarriersQueryHandler {
	return queries.NewGetAvailableCarriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetScheduleQueryHandler() queries.GetScheduleQueryHandler {
	return queries.NewGetScheduleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOptimizationQueryHandler() queries.GetOptimizationQueryHandler {
	return queries.NewGetOptimizationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestOptimizationQueryHandler() queries.GetLatestOptimizationQueryHandler {
	return queries.NewGetLatestOptimizationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRegistryStatsQueryHandler() queries.GetRegistryStatsQueryHandler {
	return queries.NewGetRegistryStatsQueryHandler(c.gormDB)
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncScheduleUoWFactory func() commands.ScheduleUoW

func (f FuncScheduleUoWFactory) Create() commands.ScheduleUoW {
	return f()
}

type FuncOptimizationUoWFactory func() commands.OptimizationUoW

func (f FuncOptimizationUoWFactory) Create() commands.OptimizationUoW {
	return f()
}
