// Package queries contains read operations for retrieving ledger state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and never
// mutate state or advance ID counters.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetCarrierQueryIsNotConstructed = errors.New(
	"GetCarrierQuery must be created via NewGetCarrierQuery constructor",
)

// GetCarrierQuery retrieves one carrier record by its principal identity.
//
// Example:
//
//	query, err := NewGetCarrierQuery(id)
//	if err != nil {
//	    return fmt.Errorf("invalid carrier lookup: %w", err)
//	}
//
//	carrier, err := NewGetCarrierQueryHandler(db).Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // identity has no carrier record
//	}
type GetCarrierQuery struct {
	id kernel.Principal

	guard guard.ConstructorGuard
}

// NewGetCarrierQuery creates a query to retrieve a carrier by identity.
func NewGetCarrierQuery(id kernel.Principal) (GetCarrierQuery, error) {
	if err := id.Validate(); err != nil {
		return GetCarrierQuery{}, err
	}

	return GetCarrierQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierQueryIsNotConstructed)
}

// ID returns the looked-up identity.
func (q GetCarrierQuery) ID() kernel.Principal {
	return q.id
}

// GetCarrierQueryResponse represents one carrier record in the read model.
type GetCarrierQueryResponse struct {
	ID           string
	Name         string
	VehicleType  string
	MaxCapacity  int
	CurrentLoad  int
	Available    bool
	Location     string
	Rating       int
	RegisteredAt kernel.Height
}
