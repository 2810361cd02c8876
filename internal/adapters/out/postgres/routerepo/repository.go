package routerepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/counter"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add allocates the next route ID and saves the route in one transaction.
// The counter update rolls back with the insert, so a failed admission never
// leaves a gap in the sequence.
func (r *GormRouteRepository) Add(ctx context.Context, entity *route.Route) (uint64, error) {
	if err := entity.Validate(); err != nil {
		return 0, err
	}

	id, err := counter.Next(ctx, r.db, counter.KindRoute)
	if err != nil {
		return 0, err
	}

	if err = entity.AssignID(id); err != nil {
		return 0, err
	}

	dto := fromDomain(entity)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return id, nil
}

// Get retrieves a route by its sequential ID.
func (r *GormRouteRepository) Get(ctx context.Context, id uint64) (*route.Route, error) {
	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
