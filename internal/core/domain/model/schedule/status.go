package schedule

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery schedule.
//
// Only Active is reachable today: schedules are created Active and no
// operation transitions them further. Completed and Cancelled are reserved
// extension points kept in the enum so persisted values and the external
// numeric contract stay stable when transitions are introduced.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusActive is the initial status of every created schedule.
	StatusActive

	// StatusCompleted is reserved for schedules whose deliveries finished.
	StatusCompleted

	// StatusCancelled is reserved for withdrawn schedules.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusActive:    "Active",
		StatusCompleted: "Completed",
		StatusCancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:    "Active",
		StatusCompleted: "Completed",
		StatusCancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Active, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
