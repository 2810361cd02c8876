package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOptimizationQueryHandler retrieves optimization records from the database.
type GetOptimizationQueryHandler struct {
	db *gorm.DB
}

// NewGetOptimizationQueryHandler creates a handler for optimization lookup queries.
func NewGetOptimizationQueryHandler(db *gorm.DB) GetOptimizationQueryHandler {
	return GetOptimizationQueryHandler{db: db}
}

// Handle executes the optimization lookup.
// Returns an errs.ObjectNotFoundError when the ID has no record.
func (h GetOptimizationQueryHandler) Handle(
	ctx context.Context,
	query GetOptimizationQuery,
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
		WHERE id = ?
	`, query.ID()).Row(), "id", query.ID())
}

func scanOptimizationRow(row *sql.Row, paramName string, id any) (GetOptimizationQueryResponse, error) {
	var record GetOptimizationQueryResponse
	var originalRoute, optimizedRoute pq.StringArray

	err := row.Scan(
		&record.ID,
		&record.ScheduleID,
		&originalRoute,
		&optimizedRoute,
		&record.DistanceSaved,
		&record.TimeSaved,
		&record.Algorithm,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOptimizationQueryResponse{}, errs.NewObjectNotFoundError(paramName, id)
		}
		return GetOptimizationQueryResponse{}, err
	}

	record.OriginalRoute = originalRoute
	record.OptimizedRoute = optimizedRoute

	return record, nil
}
