package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetScheduleQueryHandler retrieves delivery schedules from the database.
type GetScheduleQueryHandler struct {
	db *gorm.DB
}

// NewGetScheduleQueryHandler creates a handler for schedule lookup queries.
func NewGetScheduleQueryHandler(db *gorm.DB) GetScheduleQueryHandler {
	return GetScheduleQueryHandler{db: db}
}

// Handle executes the schedule lookup.
// Returns an errs.ObjectNotFoundError when the ID has no record.
func (h GetScheduleQueryHandler) Handle(
	ctx context.Context,
	query GetScheduleQuery,
) (GetScheduleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetScheduleQueryResponse{}, err
	}

	var schedule GetScheduleQueryResponse
	var shipments, optimizedRoute pq.StringArray

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			coordinator,
			carrier_id,
			shipments,
			optimized_route,
			total_distance,
			estimated_time,
			priority,
			created_at,
			status
		FROM schedules
		WHERE id = ?
	`, query.ID()).Row()

	err := row.Scan(
		&schedule.ID,
		&schedule.Coordinator,
		&schedule.Carrier,
		&shipments,
		&optimizedRoute,
		&schedule.TotalDistance,
		&schedule.EstimatedTime,
		&schedule.Priority,
		&schedule.CreatedAt,
		&schedule.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetScheduleQueryResponse{}, errs.NewObjectNotFoundError("id", query.ID())
		}
		return GetScheduleQueryResponse{}, err
	}

	schedule.Shipments = shipments
	schedule.OptimizedRoute = optimizedRoute

	return schedule, nil
}
