// Package counter implements the gapless per-kind ID sequences backing
// routes, schedules and optimizations. A plain table row is used instead of a
// database sequence: sequences survive rollback, so a rejected operation
// would burn an ID. The row update participates in the caller's transaction
// and rolls back with it, which keeps the Nth successful creation of a kind
// at exactly ID N.
package counter

import (
	"context"

	"gorm.io/gorm"
)

// Kinds of counters. Each kind advances independently.
const (
	KindRoute        = "route"
	KindSchedule     = "schedule"
	KindOptimization = "optimization"
	KindHeight       = "height"
)

// CounterDTO represents one counter row. The value column holds the last
// allocated ID for the kind, zero rows meaning nothing allocated yet.
type CounterDTO struct {
	Kind  string `gorm:"primaryKey"`
	Value uint64
}

// TableName specifies the database table name for counters.
func (CounterDTO) TableName() string {
	return "counters"
}

// Next allocates the next ID for kind within the given transaction.
// The returned IDs start at 1 and strictly increase; the row lock taken by
// the upsert serializes concurrent allocations of the same kind.
func Next(ctx context.Context, tx *gorm.DB, kind string) (uint64, error) {
	var value uint64

	row := tx.WithContext(ctx).Raw(`
		INSERT INTO counters (kind, value) VALUES (?, 1)
		ON CONFLICT (kind) DO UPDATE SET value = counters.value + 1
		RETURNING value
	`, kind).Row()

	if err := row.Scan(&value); err != nil {
		return 0, err
	}

	return value, nil
}
