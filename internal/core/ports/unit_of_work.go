package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one atomic ledger transition. Every command executes
// inside exactly one unit of work: all repository writes commit together or
// roll back together, which is what keeps rejections free of partial effects
// and ID counters free of gaps.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CarrierRepository returns a CarrierRepository bound to the current transaction.
	CarrierRepository() CarrierRepository

	// RouteRepository returns a RouteRepository bound to the current transaction.
	RouteRepository() RouteRepository

	// ScheduleRepository returns a ScheduleRepository bound to the current transaction.
	ScheduleRepository() ScheduleRepository

	// OptimizationRepository returns an OptimizationRepository bound to the current transaction.
	OptimizationRepository() OptimizationRepository
}
