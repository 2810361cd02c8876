package ports

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route records.
type RouteRepository interface {
	// Add persists a new route and allocates its sequential ID atomically
	// with the insert: IDs start at 1, strictly increase, and a rolled-back
	// transaction never consumes one. The allocated ID is assigned to the
	// aggregate and returned.
	Add(ctx context.Context, route *route.Route) (uint64, error)

	// Get retrieves a route by its sequential ID.
	// Returns an errs.ObjectNotFoundError when the ID has no record.
	Get(ctx context.Context, id uint64) (*route.Route, error)
}
