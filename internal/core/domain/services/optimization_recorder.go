package services

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/optimization"
	"logistics/internal/core/domain/model/schedule"
)

// OptimizationRecorder is a domain service responsible for accepting a route
// optimization into the ledger: it authorizes the submitting coordinator,
// mints the immutable RouteOptimization record, and writes the submitted
// route plan back into the delivery schedule.
//
// Key responsibilities:
//   - Enforcing that only the schedule's coordinator may submit
//   - Keeping the record and the schedule's route plan consistent: both
//     change together or not at all
//   - Preserving encapsulation — the schedule is mutated only through its
//     own ApplyOptimization method, never by direct field manipulation
//
// Business rules:
//   - The submitted distance and time figures are stored verbatim as the
//     schedule's new totals (write-through)
//   - A rejection leaves both the ledger and the schedule untouched
//
// Example usage:
//
//	recorder := NewOptimizationRecorder()
//	record, err := recorder.Record(coordinator, sched,
//	    original, optimized, 50, 60, "basic-optimization", now)
//	if errors.Is(err, schedule.ErrUnauthorized) {
//	    // caller is not the schedule's coordinator
//	    return
//	}
//	// persist record and sched within one transaction
type OptimizationRecorder struct{}

// NewOptimizationRecorder creates a new OptimizationRecorder instance.
func NewOptimizationRecorder() OptimizationRecorder {
	return OptimizationRecorder{}
}

// Record accepts one optimization submission against sched on behalf of
// caller. On success it returns the minted RouteOptimization (ID still
// unassigned — the repository allocates it at insert) and sched carries the
// submitted route plan. On any rejection sched is unchanged and the error
// identifies the failed check.
func (OptimizationRecorder) Record(
	caller kernel.Principal,
	sched *schedule.DeliverySchedule,
	originalRoute []string,
	optimizedRoute []string,
	distanceSaved int,
	timeSaved int,
	algorithm string,
	now kernel.Height,
) (*optimization.RouteOptimization, error) {
	if err := sched.Validate(); err != nil {
		return nil, err
	}

	if err := sched.AuthorizeCoordinator(caller); err != nil {
		return nil, err
	}

	record, err := optimization.NewRouteOptimization(
		sched.ID(),
		originalRoute,
		optimizedRoute,
		distanceSaved,
		timeSaved,
		algorithm,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = sched.ApplyOptimization(optimizedRoute, distanceSaved, timeSaved); err != nil {
		return nil, err
	}

	return record, nil
}
