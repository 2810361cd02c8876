package schedulerepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/counter"
	"logistics/internal/core/domain/model/schedule"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormScheduleRepository implements ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormScheduleRepository creates a new GORM schedule repository.
func NewGormScheduleRepository(db *gorm.DB, tracker aggregateTracker) *GormScheduleRepository {
	return &GormScheduleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add allocates the next schedule ID and saves the schedule in one transaction.
func (r *GormScheduleRepository) Add(ctx context.Context, aggregate *schedule.DeliverySchedule) (uint64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	id, err := counter.Next(ctx, r.db, counter.KindSchedule)
	if err != nil {
		return 0, err
	}

	if err = aggregate.AssignID(id); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return id, nil
}

// Update saves an existing schedule to the database.
// All columns are written so that fields reset to their zero value persist.
func (r *GormScheduleRepository) Update(ctx context.Context, aggregate *schedule.DeliverySchedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ScheduleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a schedule by its sequential ID.
func (r *GormScheduleRepository) Get(ctx context.Context, id uint64) (*schedule.DeliverySchedule, error) {
	var dto ScheduleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("schedule", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
