package ports

import (
	"context"

	"logistics/internal/core/domain/model/schedule"
)

// ScheduleRepository defines the persistence contract for delivery schedules.
type ScheduleRepository interface {
	// Add persists a new schedule and allocates its sequential ID atomically
	// with the insert (same discipline as RouteRepository.Add).
	Add(ctx context.Context, schedule *schedule.DeliverySchedule) (uint64, error)

	// Update persists changes to an existing schedule.
	Update(ctx context.Context, schedule *schedule.DeliverySchedule) error

	// Get retrieves a schedule by its sequential ID.
	// Returns an errs.ObjectNotFoundError when the ID has no record.
	Get(ctx context.Context, id uint64) (*schedule.DeliverySchedule, error)
}
