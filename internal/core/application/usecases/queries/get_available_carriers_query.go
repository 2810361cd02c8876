package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetAvailableCarriersQueryIsNotConstructed = errors.New(
	"GetAvailableCarriersQuery must be created via NewGetAvailableCarriersQuery constructor",
)

// GetAvailableCarriersQuery retrieves all carriers currently accepting work.
// This is a parameterless query; results are sorted by name for stable output.
type GetAvailableCarriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableCarriersQuery creates a query to retrieve available carriers.
func NewGetAvailableCarriersQuery() GetAvailableCarriersQuery {
	return GetAvailableCarriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCarriersQueryIsNotConstructed)
}

// GetAvailableCarriersQueryResponse represents one available carrier in the
// read model, with its remaining capacity precomputed for dispatching.
type GetAvailableCarriersQueryResponse struct {
	ID                string
	Name              string
	VehicleType       string
	Location          string
	AvailableCapacity int
	Rating            int
}
