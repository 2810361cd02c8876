package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRegistryStatsQueryHandler counts records across the four registries.
type GetRegistryStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetRegistryStatsQueryHandler creates a handler for registry stats queries.
func NewGetRegistryStatsQueryHandler(db *gorm.DB) GetRegistryStatsQueryHandler {
	return GetRegistryStatsQueryHandler{db: db}
}

// Handle executes the counts in one round trip.
func (h GetRegistryStatsQueryHandler) Handle(
	ctx context.Context,
	query GetRegistryStatsQuery,
) (GetRegistryStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRegistryStatsQueryResponse{}, err
	}

	var stats GetRegistryStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM carriers),
			(SELECT COUNT(*) FROM routes),
			(SELECT COUNT(*) FROM schedules),
			(SELECT COUNT(*) FROM optimizations)
	`).Row()

	err := row.Scan(
		&stats.Carriers,
		&stats.Routes,
		&stats.Schedules,
		&stats.Optimizations,
	)
	if err != nil {
		return GetRegistryStatsQueryResponse{}, err
	}

	return stats, nil
}
