// Package optimization contains the RouteOptimization record: an immutable
// entry in the optimizer ledger describing one accepted improvement to a
// delivery schedule's route plan, plus the derived efficiency computation.
package optimization

import (
	"errors"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for route optimization operations.
var (
	// ErrScheduleIDIsRequired is returned when the referenced schedule ID is zero.
	ErrScheduleIDIsRequired = errs.NewValueIsRequiredError("schedule ID")
	// ErrAlgorithmIsRequired is returned when the algorithm label is empty.
	ErrAlgorithmIsRequired = errs.NewValueIsRequiredError("algorithm")
	// ErrDistanceSavedIsInvalid is returned when the distance saved is negative.
	ErrDistanceSavedIsInvalid = errs.NewValueIsInvalidError("distance saved")
	// ErrTimeSavedIsInvalid is returned when the time saved is negative.
	ErrTimeSavedIsInvalid = errs.NewValueIsInvalidError("time saved")
	// ErrOptimizationIDAlreadyAssigned is returned when assigning an ID to a record that has one.
	ErrOptimizationIDAlreadyAssigned = errors.New("optimization ID is already assigned")
	// ErrOptimizationIDIsInvalid is returned when assigning a zero ID.
	ErrOptimizationIDIsInvalid = errs.NewValueIsInvalidError("optimization ID")
	// ErrOptimizationIsNotConstructed is returned when using an improperly initialized RouteOptimization.
	ErrOptimizationIsNotConstructed = errors.New(
		"RouteOptimization must be created via NewRouteOptimization constructor")
)

// RouteOptimization is one immutable entry in the optimizer ledger. It records
// the route sequences before and after an accepted optimization, the distance
// and time figures submitted with it, and the opaque label of the algorithm
// that produced it. The ledger never mutates a record after creation; repeated
// optimizations of the same schedule append new records.
//
// Optimization IDs are allocated by the repository from their own counter,
// independent of route and schedule counters, start at 1, and strictly
// increase.
type RouteOptimization struct {
	// id is the sequential optimization ID, zero until recorded
	id uint64
	// scheduleID references the optimized delivery schedule
	scheduleID uint64
	// originalRoute is the route plan before optimization
	originalRoute []string
	// optimizedRoute is the proposed route plan
	optimizedRoute []string
	// distanceSaved and timeSaved are the figures submitted by the optimizer
	distanceSaved int
	timeSaved     int
	// algorithm is an opaque label for the external optimizer used
	algorithm string
	// createdAt is the ledger height at recording
	createdAt kernel.Height
	// guard ensures the record was properly constructed
	guard guard.ConstructorGuard
}

// NewRouteOptimization creates a RouteOptimization pending recording: the ID
// is unassigned until the repository allocates the next sequential value
// during the same atomic insert.
func NewRouteOptimization(
	scheduleID uint64,
	originalRoute []string,
	optimizedRoute []string,
	distanceSaved int,
	timeSaved int,
	algorithm string,
	createdAt kernel.Height,
) (*RouteOptimization, error) {
	record := &RouteOptimization{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setScheduleID(scheduleID),
		record.setDistanceSaved(distanceSaved),
		record.setTimeSaved(timeSaved),
		record.setAlgorithm(algorithm),
	); err != nil {
		return nil, err
	}

	record.originalRoute = cloneRoute(originalRoute)
	record.optimizedRoute = cloneRoute(optimizedRoute)
	record.createdAt = createdAt

	return record, nil
}

// RestoreRouteOptimization reconstructs a RouteOptimization from persistent
// storage with its assigned ID.
func RestoreRouteOptimization(
	id uint64,
	scheduleID uint64,
	originalRoute []string,
	optimizedRoute []string,
	distanceSaved int,
	timeSaved int,
	algorithm string,
	createdAt kernel.Height,
) (*RouteOptimization, error) {
	record, err := NewRouteOptimization(
		scheduleID, originalRoute, optimizedRoute, distanceSaved, timeSaved, algorithm, createdAt)
	if err != nil {
		return nil, err
	}

	if err = record.AssignID(id); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the record was created through a constructor.
func (o *RouteOptimization) Validate() error {
	return o.guard.Validate(ErrOptimizationIsNotConstructed)
}

// AssignID sets the sequential optimization ID allocated by the repository.
// It may be called exactly once, with a non-zero value.
func (o *RouteOptimization) AssignID(id uint64) error {
	if o.id != 0 {
		return ErrOptimizationIDAlreadyAssigned
	}
	if id == 0 {
		return ErrOptimizationIDIsInvalid
	}

	o.id = id
	return nil
}

// ID returns the sequential optimization ID, or zero when not yet recorded.
func (o *RouteOptimization) ID() uint64 {
	return o.id
}

// ScheduleID returns the ID of the optimized delivery schedule.
func (o *RouteOptimization) ScheduleID() uint64 {
	return o.scheduleID
}

// OriginalRoute returns a copy of the route plan before optimization.
func (o *RouteOptimization) OriginalRoute() []string {
	return slices.Clone(o.originalRoute)
}

// OptimizedRoute returns a copy of the proposed route plan.
func (o *RouteOptimization) OptimizedRoute() []string {
	return slices.Clone(o.optimizedRoute)
}

// DistanceSaved returns the distance figure submitted by the optimizer.
func (o *RouteOptimization) DistanceSaved() int {
	return o.distanceSaved
}

// TimeSaved returns the time figure submitted by the optimizer.
func (o *RouteOptimization) TimeSaved() int {
	return o.timeSaved
}

// Algorithm returns the opaque label of the optimizer used.
func (o *RouteOptimization) Algorithm() string {
	return o.algorithm
}

// CreatedAt returns the ledger height at recording.
func (o *RouteOptimization) CreatedAt() kernel.Height {
	return o.createdAt
}

func (o *RouteOptimization) setScheduleID(scheduleID uint64) error {
	if scheduleID == 0 {
		return ErrScheduleIDIsRequired
	}

	o.scheduleID = scheduleID
	return nil
}

func (o *RouteOptimization) setDistanceSaved(distanceSaved int) error {
	if distanceSaved < 0 {
		return ErrDistanceSavedIsInvalid
	}

	o.distanceSaved = distanceSaved
	return nil
}

func (o *RouteOptimization) setTimeSaved(timeSaved int) error {
	if timeSaved < 0 {
		return ErrTimeSavedIsInvalid
	}

	o.timeSaved = timeSaved
	return nil
}

func (o *RouteOptimization) setAlgorithm(algorithm string) error {
	if algorithm == "" {
		return ErrAlgorithmIsRequired
	}

	o.algorithm = algorithm
	return nil
}

func cloneRoute(route []string) []string {
	cloned := slices.Clone(route)
	if cloned == nil {
		return []string{}
	}
	return cloned
}
