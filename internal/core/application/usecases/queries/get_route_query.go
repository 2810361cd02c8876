package queries

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetRouteQueryIsNotConstructed = errors.New(
		"GetRouteQuery must be created via NewGetRouteQuery constructor",
	)
	ErrRouteIDIsRequired = errs.NewValueIsRequiredError("route ID")
)

// GetRouteQuery retrieves one route record by its sequential ID.
type GetRouteQuery struct {
	id uint64

	guard guard.ConstructorGuard
}

// NewGetRouteQuery creates a query to retrieve a route by ID.
func NewGetRouteQuery(id uint64) (GetRouteQuery, error) {
	if id == 0 {
		return GetRouteQuery{}, ErrRouteIDIsRequired
	}

	return GetRouteQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

// ID returns the looked-up route ID.
func (q GetRouteQuery) ID() uint64 {
	return q.id
}

// GetRouteQueryResponse represents one route record in the read model.
type GetRouteQueryResponse struct {
	ID            uint64
	Carrier       string
	Origin        string
	Destination   string
	EstimatedTime int
	CostPerUnit   int
	Active        bool
}
