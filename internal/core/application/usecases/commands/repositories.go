// Package commands contains the ledger's state transitions.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence — a rejection at any step aborts
// the whole transition with no partial mutation.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// ScheduleRepoFactory provides access to the schedule repository within a transaction.
	ScheduleRepoFactory interface {
		ScheduleRepository() ports.ScheduleRepository
	}

	// OptimizationRepoFactory provides access to the optimization repository within a transaction.
	OptimizationRepoFactory interface {
		OptimizationRepository() ports.OptimizationRepository
	}

	// CarrierUoW manages transactions for carrier-only operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates new carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// RouteUoW manages transactions for route admission, which reads the
	// carrier registry and writes the route book.
	RouteUoW interface {
		TxManager
		CarrierRepoFactory
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// ScheduleUoW manages transactions for schedule operations, which read
	// the carrier registry and write the schedule registry.
	ScheduleUoW interface {
		TxManager
		CarrierRepoFactory
		ScheduleRepoFactory
	}

	// ScheduleUoWFactory creates new schedule unit of work instances.
	ScheduleUoWFactory interface {
		Create() ScheduleUoW
	}

	// OptimizationUoW manages transactions for optimization submissions,
	// which write both the optimizer ledger and the referenced schedule.
	OptimizationUoW interface {
		TxManager
		ScheduleRepoFactory
		OptimizationRepoFactory
	}

	// OptimizationUoWFactory creates new optimization unit of work instances.
	OptimizationUoWFactory interface {
		Create() OptimizationUoW
	}
)
