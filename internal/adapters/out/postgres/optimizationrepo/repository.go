package optimizationrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/counter"
	"logistics/internal/core/domain/model/optimization"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOptimizationRepository implements OptimizationRepository using GORM.
type GormOptimizationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormOptimizationRepository creates a new GORM optimization repository.
func NewGormOptimizationRepository(db *gorm.DB, tracker aggregateTracker) *GormOptimizationRepository {
	return &GormOptimizationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add allocates the next optimization ID and saves the record in one transaction.
func (r *GormOptimizationRepository) Add(
	ctx context.Context, record *optimization.RouteOptimization,
) (uint64, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}

	id, err := counter.Next(ctx, r.db, counter.KindOptimization)
	if err != nil {
		return 0, err
	}

	if err = record.AssignID(id); err != nil {
		return 0, err
	}

	dto := fromDomain(record)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return id, nil
}

// Get retrieves an optimization record by its sequential ID.
func (r *GormOptimizationRepository) Get(ctx context.Context, id uint64) (*optimization.RouteOptimization, error) {
	var dto OptimizationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("optimization", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestBySchedule retrieves the most recent optimization recorded for a
// schedule: the ledger is append-only, so the highest ID wins.
func (r *GormOptimizationRepository) GetLatestBySchedule(
	ctx context.Context, scheduleID uint64,
) (*optimization.RouteOptimization, error) {
	var dto OptimizationDTO
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("scheduleID", scheduleID)
		}
		return nil, err
	}

	return toDomain(dto)
}
