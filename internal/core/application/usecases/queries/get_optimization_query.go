package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetOptimizationQueryIsNotConstructed = errors.New(
		"GetOptimizationQuery must be created via NewGetOptimizationQuery constructor",
	)
	ErrOptimizationIDIsRequired = errs.NewValueIsRequiredError("optimization ID")
)

// GetOptimizationQuery retrieves one optimization record by its sequential ID.
type GetOptimizationQuery struct {
	id uint64

	guard guard.ConstructorGuard
}

// NewGetOptimizationQuery creates a query to retrieve an optimization by ID.
func NewGetOptimizationQuery(id uint64) (GetOptimizationQuery, error) {
	if id == 0 {
		return GetOptimizationQuery{}, ErrOptimizationIDIsRequired
	}

	return GetOptimizationQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOptimizationQuery) Validate() error {
	return q.guard.Validate(ErrGetOptimizationQueryIsNotConstructed)
}

// ID returns the looked-up optimization ID.
func (q GetOptimizationQuery) ID() uint64 {
	return q.id
}

// GetOptimizationQueryResponse represents one optimization record in the read model.
type GetOptimizationQueryResponse struct {
	ID             uint64
	ScheduleID     uint64
	OriginalRoute  []string
	OptimizedRoute []string
	DistanceSaved  int
	TimeSaved      int
	Algorithm      string
	CreatedAt      kernel.Height
}
