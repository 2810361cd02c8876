package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRouteQueryHandler retrieves route records from the database.
type GetRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteQueryHandler creates a handler for route lookup queries.
func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

// Handle executes the route lookup.
// Returns an errs.ObjectNotFoundError when the ID has no record.
func (h GetRouteQueryHandler) Handle(
	ctx context.Context,
	query GetRouteQuery,
) (GetRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRouteQueryResponse{}, err
	}

	var route GetRouteQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			carrier_id,
			origin,
			destination,
			estimated_time,
			cost_per_unit,
			active
		FROM routes
		WHERE id = ?
	`, query.ID()).Row()

	err := row.Scan(
		&route.ID,
		&route.Carrier,
		&route.Origin,
		&route.Destination,
		&route.EstimatedTime,
		&route.CostPerUnit,
		&route.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetRouteQueryResponse{}, errs.NewObjectNotFoundError("id", query.ID())
		}
		return GetRouteQueryResponse{}, err
	}

	return route, nil
}
