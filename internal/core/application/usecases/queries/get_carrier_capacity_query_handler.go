package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCarrierCapacityQueryHandler computes remaining carrier capacity in SQL.
type GetCarrierCapacityQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierCapacityQueryHandler creates a handler for capacity queries.
func NewGetCarrierCapacityQueryHandler(db *gorm.DB) GetCarrierCapacityQueryHandler {
	return GetCarrierCapacityQueryHandler{db: db}
}

// Handle executes the capacity lookup.
// Returns an errs.ObjectNotFoundError when the identity has no record.
func (h GetCarrierCapacityQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierCapacityQuery,
) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var capacity int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			max_capacity - current_load
		FROM carriers
		WHERE id = ?
	`, query.ID().String()).Row()

	if err := row.Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.NewObjectNotFoundError("id", query.ID().String())
		}
		return 0, err
	}

	return capacity, nil
}
