package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetCarrierCapacityQueryIsNotConstructed = errors.New(
	"GetCarrierCapacityQuery must be created via NewGetCarrierCapacityQuery constructor",
)

// GetCarrierCapacityQuery retrieves the remaining capacity of one carrier:
// its declared maximum minus its current load. Absent for unregistered
// identities rather than zero, so callers can tell "no carrier" from "full".
type GetCarrierCapacityQuery struct {
	id kernel.Principal

	guard guard.ConstructorGuard
}

// NewGetCarrierCapacityQuery creates a query for a carrier's remaining capacity.
func NewGetCarrierCapacityQuery(id kernel.Principal) (GetCarrierCapacityQuery, error) {
	if err := id.Validate(); err != nil {
		return GetCarrierCapacityQuery{}, err
	}

	return GetCarrierCapacityQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierCapacityQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierCapacityQueryIsNotConstructed)
}

// ID returns the looked-up identity.
func (q GetCarrierCapacityQuery) ID() kernel.Principal {
	return q.id
}
