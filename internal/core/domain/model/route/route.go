// Package route contains the Route entity: a declared origin/destination leg
// owned by a registered carrier, with time and cost estimates. Routes receive
// their sequential ID from the repository at admission, so a rejected
// submission never consumes an ID.
package route

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for route operations.
var (
	// ErrOriginIsRequired is returned when a route has no origin.
	ErrOriginIsRequired = errs.NewValueIsRequiredError("origin")
	// ErrDestinationIsRequired is returned when a route has no destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	// ErrEstimatedTimeIsInvalid is returned when the estimated time is not positive.
	ErrEstimatedTimeIsInvalid = errs.NewValueIsInvalidError("estimated time")
	// ErrCostPerUnitIsInvalid is returned when the cost per unit is negative.
	ErrCostPerUnitIsInvalid = errs.NewValueIsInvalidError("cost per unit")
	// ErrRouteIDAlreadyAssigned is returned when assigning an ID to a route that has one.
	ErrRouteIDAlreadyAssigned = errors.New("route ID is already assigned")
	// ErrRouteIDIsInvalid is returned when assigning a zero ID.
	ErrRouteIDIsInvalid = errs.NewValueIsInvalidError("route ID")
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
)

// Route represents one declared leg in a carrier's route book.
//
// Business rules:
//   - Only a registered carrier may declare a route (checked by the
//     operations layer before admission)
//   - Estimated time is strictly positive, cost per unit non-negative
//   - Routes start active; the active flag is a reserved extension point
//     with no external operation toggling it yet
//   - Route IDs are allocated by the repository, start at 1, strictly
//     increase, and are never reused
type Route struct {
	// id is the sequential route ID, zero until admitted
	id uint64
	// carrier is the identity of the declaring carrier
	carrier kernel.Principal
	// origin and destination are location labels
	origin      string
	destination string
	// estimatedTime is the leg's travel estimate in minutes
	estimatedTime int
	// costPerUnit is the declared cost per unit of load
	costPerUnit int
	// active reports whether the route is currently offered
	active bool
	// guard ensures the route was properly constructed
	guard guard.ConstructorGuard
}

// NewRoute creates a Route pending admission: the ID is unassigned until the
// repository allocates the next sequential value during the same atomic
// insert. The route starts active.
func NewRoute(
	carrier kernel.Principal,
	origin string,
	destination string,
	estimatedTime int,
	costPerUnit int,
) (*Route, error) {
	route := &Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setCarrier(carrier),
		route.setOrigin(origin),
		route.setDestination(destination),
		route.setEstimatedTime(estimatedTime),
		route.setCostPerUnit(costPerUnit),
	); err != nil {
		return nil, err
	}

	route.active = true

	return route, nil
}

// RestoreRoute reconstructs a Route from persistent storage with its
// assigned ID and active flag.
func RestoreRoute(
	id uint64,
	carrier kernel.Principal,
	origin string,
	destination string,
	estimatedTime int,
	costPerUnit int,
	active bool,
) (*Route, error) {
	route, err := NewRoute(carrier, origin, destination, estimatedTime, costPerUnit)
	if err != nil {
		return nil, err
	}

	if err = route.AssignID(id); err != nil {
		return nil, err
	}
	route.active = active

	return route, nil
}

// Validate ensures the route was created through a constructor.
func (r *Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// AssignID sets the sequential route ID allocated by the repository.
// It may be called exactly once, with a non-zero value.
func (r *Route) AssignID(id uint64) error {
	if r.id != 0 {
		return ErrRouteIDAlreadyAssigned
	}
	if id == 0 {
		return ErrRouteIDIsInvalid
	}

	r.id = id
	return nil
}

// ID returns the sequential route ID, or zero when not yet admitted.
func (r *Route) ID() uint64 {
	return r.id
}

// Carrier returns the identity of the declaring carrier.
func (r *Route) Carrier() kernel.Principal {
	return r.carrier
}

// Origin returns the route's origin label.
func (r *Route) Origin() string {
	return r.origin
}

// Destination returns the route's destination label.
func (r *Route) Destination() string {
	return r.destination
}

// EstimatedTime returns the travel estimate in minutes.
func (r *Route) EstimatedTime() int {
	return r.estimatedTime
}

// CostPerUnit returns the declared cost per unit of load.
func (r *Route) CostPerUnit() int {
	return r.costPerUnit
}

// Active reports whether the route is currently offered.
func (r *Route) Active() bool {
	return r.active
}

// Deactivate withdraws the route from offering.
// Reserved extension point: no external operation exposes it yet.
func (r *Route) Deactivate() error {
	if err := r.Validate(); err != nil {
		return err
	}

	r.active = false
	return nil
}

// Activate restores a withdrawn route to offering.
// Reserved extension point: no external operation exposes it yet.
func (r *Route) Activate() error {
	if err := r.Validate(); err != nil {
		return err
	}

	r.active = true
	return nil
}

func (r *Route) setCarrier(carrier kernel.Principal) error {
	if err := carrier.Validate(); err != nil {
		return err
	}

	r.carrier = carrier
	return nil
}

func (r *Route) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}

	r.origin = origin
	return nil
}

func (r *Route) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	r.destination = destination
	return nil
}

func (r *Route) setEstimatedTime(estimatedTime int) error {
	if estimatedTime <= 0 {
		return ErrEstimatedTimeIsInvalid
	}

	r.estimatedTime = estimatedTime
	return nil
}

func (r *Route) setCostPerUnit(costPerUnit int) error {
	if costPerUnit < 0 {
		return ErrCostPerUnitIsInvalid
	}

	r.costPerUnit = costPerUnit
	return nil
}
