package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCarrierQueryHandler retrieves carrier records from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCarrierQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierQueryHandler creates a handler for carrier lookup queries.
func NewGetCarrierQueryHandler(db *gorm.DB) GetCarrierQueryHandler {
	return GetCarrierQueryHandler{db: db}
}

// Handle executes the carrier lookup.
// Returns an errs.ObjectNotFoundError when the identity has no record.
func (h GetCarrierQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierQuery,
) (GetCarrierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCarrierQueryResponse{}, err
	}

	var carrier GetCarrierQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			vehicle_type,
			max_capacity,
			current_load,
			available,
			location,
			rating,
			registered_at
		FROM carriers
		WHERE id = ?
	`, query.ID().String()).Row()

	err := row.Scan(
		&carrier.ID,
		&carrier.Name,
		&carrier.VehicleType,
		&carrier.MaxCapacity,
		&carrier.CurrentLoad,
		&carrier.Available,
		&carrier.Location,
		&carrier.Rating,
		&carrier.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCarrierQueryResponse{}, errs.NewObjectNotFoundError("id", query.ID().String())
		}
		return GetCarrierQueryResponse{}, err
	}

	return carrier, nil
}
