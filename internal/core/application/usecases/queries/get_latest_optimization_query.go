package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetLatestOptimizationQueryIsNotConstructed = errors.New(
	"GetLatestOptimizationQuery must be created via NewGetLatestOptimizationQuery constructor",
)

// GetLatestOptimizationQuery retrieves the most recent optimization recorded
// for a schedule. The ledger is append-only, so "most recent" is the record
// with the highest sequential ID.
type GetLatestOptimizationQuery struct {
	scheduleID uint64

	guard guard.ConstructorGuard
}

// NewGetLatestOptimizationQuery creates a query for a schedule's latest optimization.
func NewGetLatestOptimizationQuery(scheduleID uint64) (GetLatestOptimizationQuery, error) {
	if scheduleID == 0 {
		return GetLatestOptimizationQuery{}, ErrScheduleIDIsRequired
	}

	return GetLatestOptimizationQuery{
		scheduleID: scheduleID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestOptimizationQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestOptimizationQueryIsNotConstructed)
}

// ScheduleID returns the schedule whose latest optimization is looked up.
func (q GetLatestOptimizationQuery) ScheduleID() uint64 {
	return q.scheduleID
}
