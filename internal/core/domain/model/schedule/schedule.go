package schedule

import (
	"errors"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for delivery schedule operations.
var (
	// ErrScheduleNotFound is the ledger rejection for operations referencing an
	// unknown schedule ID.
	ErrScheduleNotFound = errs.NewDomainError(errs.CodeScheduleNotFound, "schedule not found")
	// ErrUnauthorized is the ledger rejection for a caller that is not the
	// schedule's coordinator.
	ErrUnauthorized = errs.NewDomainError(errs.CodeUnauthorized, "caller is not the schedule coordinator")
	// ErrInvalidPriority is the ledger rejection for priorities outside {1,2,3,4}.
	ErrInvalidPriority = errs.NewDomainError(errs.CodeInvalidPriority, "priority is outside the defined levels")
	// ErrDistanceIsInvalid is returned when a negative total distance is applied.
	ErrDistanceIsInvalid = errs.NewValueIsInvalidError("total distance")
	// ErrTimeIsInvalid is returned when a negative estimated time is applied.
	ErrTimeIsInvalid = errs.NewValueIsInvalidError("estimated time")
	// ErrScheduleIDAlreadyAssigned is returned when assigning an ID to a schedule that has one.
	ErrScheduleIDAlreadyAssigned = errors.New("schedule ID is already assigned")
	// ErrScheduleIDIsInvalid is returned when assigning a zero ID.
	ErrScheduleIDIsInvalid = errs.NewValueIsInvalidError("schedule ID")
	// ErrScheduleIsNotConstructed is returned when using an improperly initialized DeliverySchedule.
	ErrScheduleIsNotConstructed = errors.New("DeliverySchedule must be created via NewDeliverySchedule constructor")
)

// DeliverySchedule represents a coordinator-owned assignment of shipments to
// a carrier, carrying a mutable route plan. It is an aggregate root: the
// coordinator identity recorded at creation is the sole authority for
// priority changes and optimization submissions, and the route plan fields
// (optimized route, total distance, estimated time) change only through
// ApplyOptimization.
//
// Business rules:
//   - The referenced carrier must be registered (checked by the operations
//     layer before admission)
//   - Priority is always one of the four defined levels
//   - A schedule starts with an empty route plan, zero totals, and
//     Active status; it is never deleted
//   - Schedule IDs are allocated by the repository, start at 1, strictly
//     increase, and are never reused
type DeliverySchedule struct {
	// id is the sequential schedule ID, zero until admitted
	id uint64
	// coordinator is the identity that created the schedule
	coordinator kernel.Principal
	// carrier is the identity of the assigned carrier
	carrier kernel.Principal
	// shipments is the ordered sequence of shipment identifiers
	shipments []kernel.UUID
	// optimizedRoute is the current route plan as location labels
	optimizedRoute []string
	// totalDistance is the route plan's distance total
	totalDistance int
	// estimatedTime is the route plan's time total in minutes
	estimatedTime int
	// priority is the schedule's urgency level
	priority Priority
	// createdAt is the ledger height at creation
	createdAt kernel.Height
	// status is the schedule's lifecycle state
	status Status
	// guard ensures the schedule was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliverySchedule creates a DeliverySchedule pending admission: the ID is
// unassigned until the repository allocates the next sequential value during
// the same atomic insert. The schedule starts Active with an empty optimized
// route and zero distance and time totals.
//
// Returns ErrInvalidPriority when priority is outside {1,2,3,4}; shipment
// identifiers are validated individually.
func NewDeliverySchedule(
	coordinator kernel.Principal,
	carrier kernel.Principal,
	shipments []kernel.UUID,
	priority Priority,
	createdAt kernel.Height,
) (*DeliverySchedule, error) {
	schedule := &DeliverySchedule{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		schedule.setCoordinator(coordinator),
		schedule.setCarrier(carrier),
		schedule.setShipments(shipments),
		schedule.setPriority(priority),
	); err != nil {
		return nil, err
	}

	schedule.optimizedRoute = []string{}
	schedule.totalDistance = 0
	schedule.estimatedTime = 0
	schedule.createdAt = createdAt
	schedule.status = StatusActive

	return schedule, nil
}

// RestoreDeliverySchedule reconstructs a DeliverySchedule from persistent
// storage with its assigned ID, route plan, and status.
func RestoreDeliverySchedule(
	id uint64,
	coordinator kernel.Principal,
	carrier kernel.Principal,
	shipments []kernel.UUID,
	optimizedRoute []string,
	totalDistance int,
	estimatedTime int,
	priority Priority,
	createdAt kernel.Height,
	status Status,
) (*DeliverySchedule, error) {
	schedule, err := NewDeliverySchedule(coordinator, carrier, shipments, priority, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		schedule.AssignID(id),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err = schedule.applyRoutePlan(optimizedRoute, totalDistance, estimatedTime); err != nil {
		return nil, err
	}
	schedule.status = status

	return schedule, nil
}

// Validate ensures the schedule was created through a constructor.
func (s *DeliverySchedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// AssignID sets the sequential schedule ID allocated by the repository.
// It may be called exactly once, with a non-zero value.
func (s *DeliverySchedule) AssignID(id uint64) error {
	if s.id != 0 {
		return ErrScheduleIDAlreadyAssigned
	}
	if id == 0 {
		return ErrScheduleIDIsInvalid
	}

	s.id = id
	return nil
}

// ID returns the sequential schedule ID, or zero when not yet admitted.
func (s *DeliverySchedule) ID() uint64 {
	return s.id
}

// Coordinator returns the identity that created the schedule.
func (s *DeliverySchedule) Coordinator() kernel.Principal {
	return s.coordinator
}

// Carrier returns the identity of the assigned carrier.
func (s *DeliverySchedule) Carrier() kernel.Principal {
	return s.carrier
}

// Shipments returns a copy of the ordered shipment identifiers.
func (s *DeliverySchedule) Shipments() []kernel.UUID {
	return slices.Clone(s.shipments)
}

// OptimizedRoute returns a copy of the current route plan.
func (s *DeliverySchedule) OptimizedRoute() []string {
	return slices.Clone(s.optimizedRoute)
}

// TotalDistance returns the route plan's distance total.
func (s *DeliverySchedule) TotalDistance() int {
	return s.totalDistance
}

// EstimatedTime returns the route plan's time total in minutes.
func (s *DeliverySchedule) EstimatedTime() int {
	return s.estimatedTime
}

// Priority returns the schedule's urgency level.
func (s *DeliverySchedule) Priority() Priority {
	return s.priority
}

// CreatedAt returns the ledger height at creation.
func (s *DeliverySchedule) CreatedAt() kernel.Height {
	return s.createdAt
}

// Status returns the schedule's lifecycle state.
func (s *DeliverySchedule) Status() Status {
	return s.status
}

// AuthorizeCoordinator checks that caller is the schedule's coordinator.
// Returns ErrUnauthorized (rejection code 400) for any other identity.
func (s *DeliverySchedule) AuthorizeCoordinator(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if !s.coordinator.IsEqual(caller) {
		return ErrUnauthorized
	}
	return nil
}

// ChangePriority overwrites the schedule's priority on behalf of caller.
// The caller must be the coordinator; the new priority must be one of the
// defined levels. No other field changes, and a rejection leaves the stored
// priority untouched.
func (s *DeliverySchedule) ChangePriority(caller kernel.Principal, newPriority Priority) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := s.AuthorizeCoordinator(caller); err != nil {
		return err
	}
	if err := newPriority.Validate(); err != nil {
		return err
	}

	s.priority = newPriority
	return nil
}

// ApplyOptimization replaces the schedule's route plan with the submitted
// values. The submitted distance and time are stored verbatim as the new
// totals — write-through, not delta arithmetic — matching the optimizer
// ledger's recorded behavior for repeated optimizations.
//
// This is the only path that mutates optimizedRoute, totalDistance, and
// estimatedTime; the optimizer ledger calls it rather than touching fields.
func (s *DeliverySchedule) ApplyOptimization(optimizedRoute []string, totalDistance int, estimatedTime int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return s.applyRoutePlan(optimizedRoute, totalDistance, estimatedTime)
}

func (s *DeliverySchedule) applyRoutePlan(optimizedRoute []string, totalDistance int, estimatedTime int) error {
	if totalDistance < 0 {
		return ErrDistanceIsInvalid
	}
	if estimatedTime < 0 {
		return ErrTimeIsInvalid
	}

	s.optimizedRoute = slices.Clone(optimizedRoute)
	if s.optimizedRoute == nil {
		s.optimizedRoute = []string{}
	}
	s.totalDistance = totalDistance
	s.estimatedTime = estimatedTime
	return nil
}

func (s *DeliverySchedule) setCoordinator(coordinator kernel.Principal) error {
	if err := coordinator.Validate(); err != nil {
		return err
	}

	s.coordinator = coordinator
	return nil
}

func (s *DeliverySchedule) setCarrier(carrier kernel.Principal) error {
	if err := carrier.Validate(); err != nil {
		return err
	}

	s.carrier = carrier
	return nil
}

func (s *DeliverySchedule) setShipments(shipments []kernel.UUID) error {
	for _, shipment := range shipments {
		if err := shipment.Validate(); err != nil {
			return err
		}
	}

	s.shipments = slices.Clone(shipments)
	if s.shipments == nil {
		s.shipments = []kernel.UUID{}
	}
	return nil
}

func (s *DeliverySchedule) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	s.priority = priority
	return nil
}
