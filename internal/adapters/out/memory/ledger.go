// Package memory provides an in-process implementation of the persistence
// ports. The Ledger serializes transitions with one mutex and stages writes
// per unit of work, applying them on Commit and discarding them on Rollback,
// so it honors the same atomicity and gapless-ID guarantees as the postgres
// adapter. Intended for tests and single-process deployments.
package memory

import (
	"context"
	"errors"
	"sync"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/optimization"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/schedule"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when the unit of
// work has no open transaction.
var ErrNoActiveTransaction = errors.New("no active transaction")

// Ledger is the shared in-process store. It implements both
// ports.UnitOfWorkFactory and ports.Clock: heights advance on every Now call
// and never decrease.
type Ledger struct {
	mu sync.Mutex

	carriers      map[string]*carrier.Carrier
	routes        map[uint64]*route.Route
	schedules     map[uint64]*schedule.DeliverySchedule
	optimizations map[uint64]*optimization.RouteOptimization

	routeSeq        uint64
	scheduleSeq     uint64
	optimizationSeq uint64

	heightMu sync.Mutex
	height   uint64
}

// NewLedger creates an empty in-process ledger.
func NewLedger() *Ledger {
	return &Ledger{
		carriers:      make(map[string]*carrier.Carrier),
		routes:        make(map[uint64]*route.Route),
		schedules:     make(map[uint64]*schedule.DeliverySchedule),
		optimizations: make(map[uint64]*optimization.RouteOptimization),
	}
}

// Create produces a new unit of work over the ledger.
func (l *Ledger) Create() ports.UnitOfWork {
	return &unitOfWork{ledger: l}
}

// Now returns the next ledger height. Heights are strictly increasing and
// advance regardless of whether the surrounding operation commits.
func (l *Ledger) Now(_ context.Context) (kernel.Height, error) {
	l.heightMu.Lock()
	defer l.heightMu.Unlock()

	l.height++
	return kernel.Height(l.height), nil
}

// unitOfWork stages writes against the ledger. Begin takes the ledger mutex,
// giving each transition exclusive access until Commit or Rollback releases
// it; ID sequences only advance when the staged writes are applied.
type unitOfWork struct {
	ledger *Ledger
	active bool

	stagedCarriers      map[string]*carrier.Carrier
	stagedRoutes        map[uint64]*route.Route
	stagedSchedules     map[uint64]*schedule.DeliverySchedule
	stagedOptimizations map[uint64]*optimization.RouteOptimization

	newRoutes        uint64
	newSchedules     uint64
	newOptimizations uint64
}

func (uow *unitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.ledger.mu.Lock()
	uow.active = true
	uow.stagedCarriers = make(map[string]*carrier.Carrier)
	uow.stagedRoutes = make(map[uint64]*route.Route)
	uow.stagedSchedules = make(map[uint64]*schedule.DeliverySchedule)
	uow.stagedOptimizations = make(map[uint64]*optimization.RouteOptimization)
	uow.newRoutes = 0
	uow.newSchedules = 0
	uow.newOptimizations = 0
	return nil
}

func (uow *unitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	for id, aggregate := range uow.stagedCarriers {
		uow.ledger.carriers[id] = aggregate
	}
	for id, entity := range uow.stagedRoutes {
		uow.ledger.routes[id] = entity
	}
	for id, aggregate := range uow.stagedSchedules {
		uow.ledger.schedules[id] = aggregate
	}
	for id, record := range uow.stagedOptimizations {
		uow.ledger.optimizations[id] = record
	}

	uow.ledger.routeSeq += uow.newRoutes
	uow.ledger.scheduleSeq += uow.newSchedules
	uow.ledger.optimizationSeq += uow.newOptimizations

	uow.finish()
	return nil
}

func (uow *unitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.finish()
	return nil
}

func (uow *unitOfWork) finish() {
	uow.active = false
	uow.stagedCarriers = nil
	uow.stagedRoutes = nil
	uow.stagedSchedules = nil
	uow.stagedOptimizations = nil
	uow.ledger.mu.Unlock()
}

func (uow *unitOfWork) CarrierRepository() ports.CarrierRepository {
	return &carrierRepository{uow: uow}
}

func (uow *unitOfWork) RouteRepository() ports.RouteRepository {
	return &routeRepository{uow: uow}
}

func (uow *unitOfWork) ScheduleRepository() ports.ScheduleRepository {
	return &scheduleRepository{uow: uow}
}

func (uow *unitOfWork) OptimizationRepository() ports.OptimizationRepository {
	return &optimizationRepository{uow: uow}
}

type carrierRepository struct {
	uow *unitOfWork
}

func (r *carrierRepository) Add(_ context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, ok := r.lookup(key); ok {
		return carrier.ErrAlreadyRegistered
	}

	cloned, err := cloneCarrier(aggregate)
	if err != nil {
		return err
	}

	r.uow.stagedCarriers[key] = cloned
	return nil
}

func (r *carrierRepository) Update(_ context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, ok := r.lookup(key); !ok {
		return errs.NewObjectNotFoundError("carrier", key)
	}

	cloned, err := cloneCarrier(aggregate)
	if err != nil {
		return err
	}

	r.uow.stagedCarriers[key] = cloned
	return nil
}

func (r *carrierRepository) Get(_ context.Context, id kernel.Principal) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	aggregate, ok := r.lookup(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("carrier", id.String())
	}

	return cloneCarrier(aggregate)
}

func (r *carrierRepository) Exists(_ context.Context, id kernel.Principal) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	_, ok := r.lookup(id.String())
	return ok, nil
}

func (r *carrierRepository) lookup(key string) (*carrier.Carrier, bool) {
	if aggregate, ok := r.uow.stagedCarriers[key]; ok {
		return aggregate, true
	}

	aggregate, ok := r.uow.ledger.carriers[key]
	return aggregate, ok
}

type routeRepository struct {
	uow *unitOfWork
}

func (r *routeRepository) Add(_ context.Context, entity *route.Route) (uint64, error) {
	if err := entity.Validate(); err != nil {
		return 0, err
	}

	r.uow.newRoutes++
	id := r.uow.ledger.routeSeq + r.uow.newRoutes

	if err := entity.AssignID(id); err != nil {
		return 0, err
	}

	cloned, err := cloneRoute(entity)
	if err != nil {
		return 0, err
	}

	r.uow.stagedRoutes[id] = cloned
	return id, nil
}

func (r *routeRepository) Get(_ context.Context, id uint64) (*route.Route, error) {
	entity, ok := r.uow.stagedRoutes[id]
	if !ok {
		entity, ok = r.uow.ledger.routes[id]
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("route", id)
	}

	return cloneRoute(entity)
}

type scheduleRepository struct {
	uow *unitOfWork
}

func (r *scheduleRepository) Add(_ context.Context, aggregate *schedule.DeliverySchedule) (uint64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	r.uow.newSchedules++
	id := r.uow.ledger.scheduleSeq + r.uow.newSchedules

	if err := aggregate.AssignID(id); err != nil {
		return 0, err
	}

	cloned, err := cloneSchedule(aggregate)
	if err != nil {
		return 0, err
	}

	r.uow.stagedSchedules[id] = cloned
	return id, nil
}

func (r *scheduleRepository) Update(_ context.Context, aggregate *schedule.DeliverySchedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	if _, ok := r.uow.stagedSchedules[id]; !ok {
		if _, ok = r.uow.ledger.schedules[id]; !ok {
			return errs.NewObjectNotFoundError("schedule", id)
		}
	}

	cloned, err := cloneSchedule(aggregate)
	if err != nil {
		return err
	}

	r.uow.stagedSchedules[id] = cloned
	return nil
}

func (r *scheduleRepository) Get(_ context.Context, id uint64) (*schedule.DeliverySchedule, error) {
	aggregate, ok := r.uow.stagedSchedules[id]
	if !ok {
		aggregate, ok = r.uow.ledger.schedules[id]
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("schedule", id)
	}

	return cloneSchedule(aggregate)
}

type optimizationRepository struct {
	uow *unitOfWork
}

func (r *optimizationRepository) Add(_ context.Context, record *optimization.RouteOptimization) (uint64, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}

	r.uow.newOptimizations++
	id := r.uow.ledger.optimizationSeq + r.uow.newOptimizations

	if err := record.AssignID(id); err != nil {
		return 0, err
	}

	cloned, err := cloneOptimization(record)
	if err != nil {
		return 0, err
	}

	r.uow.stagedOptimizations[id] = cloned
	return id, nil
}

func (r *optimizationRepository) Get(_ context.Context, id uint64) (*optimization.RouteOptimization, error) {
	record, ok := r.uow.stagedOptimizations[id]
	if !ok {
		record, ok = r.uow.ledger.optimizations[id]
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("optimization", id)
	}

	return cloneOptimization(record)
}

func (r *optimizationRepository) GetLatestBySchedule(
	_ context.Context, scheduleID uint64,
) (*optimization.RouteOptimization, error) {
	var latest *optimization.RouteOptimization

	consider := func(record *optimization.RouteOptimization) {
		if record.ScheduleID() != scheduleID {
			return
		}
		if latest == nil || record.ID() > latest.ID() {
			latest = record
		}
	}

	for _, record := range r.uow.ledger.optimizations {
		consider(record)
	}
	for _, record := range r.uow.stagedOptimizations {
		consider(record)
	}

	if latest == nil {
		return nil, errs.NewObjectNotFoundError("scheduleID", scheduleID)
	}

	return cloneOptimization(latest)
}

// Aggregates are stored and returned as copies so callers never alias ledger
// state across transaction boundaries.

func cloneCarrier(aggregate *carrier.Carrier) (*carrier.Carrier, error) {
	return carrier.RestoreCarrier(
		aggregate.ID(),
		aggregate.Name(),
		aggregate.VehicleType(),
		aggregate.MaxCapacity(),
		aggregate.CurrentLoad(),
		aggregate.Available(),
		aggregate.Location(),
		aggregate.Rating(),
		aggregate.RegisteredAt(),
	)
}

func cloneRoute(entity *route.Route) (*route.Route, error) {
	return route.RestoreRoute(
		entity.ID(),
		entity.Carrier(),
		entity.Origin(),
		entity.Destination(),
		entity.EstimatedTime(),
		entity.CostPerUnit(),
		entity.Active(),
	)
}

func cloneSchedule(aggregate *schedule.DeliverySchedule) (*schedule.DeliverySchedule, error) {
	return schedule.RestoreDeliverySchedule(
		aggregate.ID(),
		aggregate.Coordinator(),
		aggregate.Carrier(),
		aggregate.Shipments(),
		aggregate.OptimizedRoute(),
		aggregate.TotalDistance(),
		aggregate.EstimatedTime(),
		aggregate.Priority(),
		aggregate.CreatedAt(),
		aggregate.Status(),
	)
}

func cloneOptimization(record *optimization.RouteOptimization) (*optimization.RouteOptimization, error) {
	return optimization.RestoreRouteOptimization(
		record.ID(),
		record.ScheduleID(),
		record.OriginalRoute(),
		record.OptimizedRoute(),
		record.DistanceSaved(),
		record.TimeSaved(),
		record.Algorithm(),
		record.CreatedAt(),
	)
}
