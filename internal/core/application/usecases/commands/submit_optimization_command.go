package commands

import (
	"errors"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrSubmitOptimizationCommandIsNotConstructed = errors.New(
		"SubmitOptimizationCommand must be created via NewSubmitOptimizationCommand constructor",
	)
	ErrAlgorithmIsRequired = errs.NewValueIsRequiredError("algorithm")
)

// SubmitOptimizationCommand represents a coordinator's submission of an
// improved route plan for one of its schedules. The savings figures and the
// schedule reference are validated by the domain so rejections carry the
// ledger's codes.
type SubmitOptimizationCommand struct { //nolint:recvcheck //using for validation
	coordinator    kernel.Principal
	scheduleID     uint64
	originalRoute  []string
	optimizedRoute []string
	distanceSaved  int
	timeSaved      int
	algorithm      string

	guard guard.ConstructorGuard
}

// NewSubmitOptimizationCommand creates a command to submit a route optimization.
func NewSubmitOptimizationCommand(
	coordinator kernel.Principal,
	scheduleID uint64,
	originalRoute []string,
	optimizedRoute []string,
	distanceSaved int,
	timeSaved int,
	algorithm string,
) (SubmitOptimizationCommand, error) {
	if err := errors.Join(
		coordinator.Validate(),
		validateScheduleID(scheduleID),
		validateAlgorithm(algorithm),
	); err != nil {
		return SubmitOptimizationCommand{}, err
	}

	return SubmitOptimizationCommand{
		coordinator:    coordinator,
		scheduleID:     scheduleID,
		originalRoute:  slices.Clone(originalRoute),
		optimizedRoute: slices.Clone(optimizedRoute),
		distanceSaved:  distanceSaved,
		timeSaved:      timeSaved,
		algorithm:      algorithm,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOptimizationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOptimizationCommandIsNotConstructed)
}

// Coordinator returns the submitting identity.
func (c SubmitOptimizationCommand) Coordinator() kernel.Principal {
	return c.coordinator
}

// ScheduleID returns the target schedule's sequential ID.
func (c SubmitOptimizationCommand) ScheduleID() uint64 {
	return c.scheduleID
}

// OriginalRoute returns a copy of the route plan being improved.
func (c SubmitOptimizationCommand) OriginalRoute() []string {
	return slices.Clone(c.originalRoute)
}

// OptimizedRoute returns a copy of the proposed route plan.
func (c SubmitOptimizationCommand) OptimizedRoute() []string {
	return slices.Clone(c.optimizedRoute)
}

// DistanceSaved returns the submitted distance figure.
func (c SubmitOptimizationCommand) DistanceSaved() int {
	return c.distanceSaved
}

// TimeSaved returns the submitted time figure.
func (c SubmitOptimizationCommand) TimeSaved() int {
	return c.timeSaved
}

// Algorithm returns the label of the algorithm that produced the plan.
func (c SubmitOptimizationCommand) Algorithm() string {
	return c.algorithm
}

func validateScheduleID(scheduleID uint64) error {
	if scheduleID == 0 {
		return ErrScheduleIDIsRequired
	}
	return nil
}

func validateAlgorithm(algorithm string) error {
	if algorithm == "" {
		return ErrAlgorithmIsRequired
	}
	return nil
}
