package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetRegistryStatsQueryIsNotConstructed = errors.New(
	"GetRegistryStatsQuery must be created via NewGetRegistryStatsQuery constructor",
)

// GetRegistryStatsQuery retrieves record counts across all four registries.
// Used by the periodic snapshot job and the operational stats endpoint.
type GetRegistryStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRegistryStatsQuery creates a query for registry record counts.
func NewGetRegistryStatsQuery() GetRegistryStatsQuery {
	return GetRegistryStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRegistryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetRegistryStatsQueryIsNotConstructed)
}

// GetRegistryStatsQueryResponse holds one count per registry.
type GetRegistryStatsQueryResponse struct {
	Carriers      int64
	Routes        int64
	Schedules     int64
	Optimizations int64
}
