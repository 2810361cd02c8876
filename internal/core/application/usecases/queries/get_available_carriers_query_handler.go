package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailableCarriersQueryHandler retrieves carriers open for new work.
type GetAvailableCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableCarriersQueryHandler creates a handler for available-carrier queries.
func NewGetAvailableCarriersQueryHandler(db *gorm.DB) GetAvailableCarriersQueryHandler {
	return GetAvailableCarriersQueryHandler{db: db}
}

// Handle executes the query to retrieve all available carriers.
func (h GetAvailableCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCarriersQuery,
) ([]GetAvailableCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	carriers := make([]GetAvailableCarriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			vehicle_type,
			location,
			max_capacity - current_load,
			rating
		FROM carriers
		WHERE available
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var carrier GetAvailableCarriersQueryResponse

		err = rows.Scan(
			&carrier.ID,
			&carrier.Name,
			&carrier.VehicleType,
			&carrier.Location,
			&carrier.AvailableCapacity,
			&carrier.Rating,
		)
		if err != nil {
			return nil, err
		}

		carriers = append(carriers, carrier)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}
