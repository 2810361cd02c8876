package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/counter"
	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// HeightClock produces the logical timestamps stamped onto records at
// creation time. Heights come from the same counters table as the entity
// IDs, so they stay strictly increasing across process restarts.
type HeightClock struct {
	db *gorm.DB
}

// NewHeightClock creates a clock backed by the given database connection.
func NewHeightClock(db *gorm.DB) HeightClock {
	return HeightClock{db: db}
}

// Now advances the height counter and returns the new value.
// Each call observes a height greater than every earlier call's.
func (c HeightClock) Now(ctx context.Context) (kernel.Height, error) {
	value, err := counter.Next(ctx, c.db, counter.KindHeight)
	if err != nil {
		return 0, err
	}

	return kernel.Height(value), nil
}
