package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetScheduleQueryIsNotConstructed = errors.New(
		"GetScheduleQuery must be created via NewGetScheduleQuery constructor",
	)
	ErrScheduleIDIsRequired = errs.NewValueIsRequiredError("schedule ID")
)

// GetScheduleQuery retrieves one delivery schedule by its sequential ID.
type GetScheduleQuery struct {
	id uint64

	guard guard.ConstructorGuard
}

// NewGetScheduleQuery creates a query to retrieve a schedule by ID.
func NewGetScheduleQuery(id uint64) (GetScheduleQuery, error) {
	if id == 0 {
		return GetScheduleQuery{}, ErrScheduleIDIsRequired
	}

	return GetScheduleQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduleQueryIsNotConstructed)
}

// ID returns the looked-up schedule ID.
func (q GetScheduleQuery) ID() uint64 {
	return q.id
}

// GetScheduleQueryResponse represents one delivery schedule in the read model.
type GetScheduleQueryResponse struct {
	ID             uint64
	Coordinator    string
	Carrier        string
	Shipments      []string
	OptimizedRoute []string
	TotalDistance  int
	EstimatedTime  int
	Priority       int
	CreatedAt      kernel.Height
	Status         int
}
