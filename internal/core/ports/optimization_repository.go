package ports

import (
	"context"

	"logistics/internal/core/domain/model/optimization"
)

// OptimizationRepository defines the persistence contract for the optimizer
// ledger. Records are immutable once added; there is no update operation.
type OptimizationRepository interface {
	// Add persists a new optimization record and allocates its sequential ID
	// atomically with the insert. The optimization counter is independent of
	// the route and schedule counters.
	Add(ctx context.Context, record *optimization.RouteOptimization) (uint64, error)

	// Get retrieves an optimization record by its sequential ID.
	// Returns an errs.ObjectNotFoundError when the ID has no record.
	Get(ctx context.Context, id uint64) (*optimization.RouteOptimization, error)

	// GetLatestBySchedule retrieves the most recent optimization recorded for
	// a schedule. Returns an errs.ObjectNotFoundError when the schedule has
	// no optimizations.
	GetLatestBySchedule(ctx context.Context, scheduleID uint64) (*optimization.RouteOptimization, error)
}
