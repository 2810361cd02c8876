package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetLatestOptimizationQueryHandler retrieves the newest optimization record
// for a schedule from the database.
type GetLatestOptimizationQueryHandler struct {
	db *gorm.DB
}

// NewGetLatestOptimizationQueryHandler creates a handler for latest-optimization queries.
func NewGetLatestOptimizationQueryHandler(db *gorm.DB) GetLatestOptimizationQueryHandler {
	return GetLatestOptimizationQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns an errs.ObjectNotFoundError when the schedule has no optimizations.
func (h GetLatestOptimizationQueryHandler) Handle(
	ctx context.Context,
	query GetLatestOptimizationQuery,
) (GetOptimizationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOptimizationQueryResponse{}, err
	}

	return scanOptimizationRow(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			schedule_id,
			original_route,
			optimized_route,
			distance_saved,
			time_saved,
			algorithm,
			created_at
		FROM optimizations
		WHERE schedule_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, query.ScheduleID()).Row(), "scheduleID", query.ScheduleID())
}
