package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/schedule"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrUpdateSchedulePriorityCommandIsNotConstructed = errors.New(
		"UpdateSchedulePriorityCommand must be created via NewUpdateSchedulePriorityCommand constructor",
	)
	ErrScheduleIDIsRequired = errs.NewValueIsRequiredError("schedule ID")
)

// UpdateSchedulePriorityCommand represents a caller's request to change a
// schedule's priority. Authorization and priority validity are checked by
// the domain, in that order.
type UpdateSchedulePriorityCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Principal
	scheduleID uint64
	priority   schedule.Priority

	guard guard.ConstructorGuard
}

// NewUpdateSchedulePriorityCommand creates a command to change a schedule's priority.
func NewUpdateSchedulePriorityCommand(
	caller kernel.Principal,
	scheduleID uint64,
	priority schedule.Priority,
) (UpdateSchedulePriorityCommand, error) {
	if err := caller.Validate(); err != nil {
		return UpdateSchedulePriorityCommand{}, err
	}

	if scheduleID == 0 {
		return UpdateSchedulePriorityCommand{}, ErrScheduleIDIsRequired
	}

	return UpdateSchedulePriorityCommand{
		caller:     caller,
		scheduleID: scheduleID,
		priority:   priority,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSchedulePriorityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSchedulePriorityCommandIsNotConstructed)
}

// Caller returns the identity requesting the change.
func (c UpdateSchedulePriorityCommand) Caller() kernel.Principal {
	return c.caller
}

// ScheduleID returns the target schedule's sequential ID.
func (c UpdateSchedulePriorityCommand) ScheduleID() uint64 {
	return c.scheduleID
}

// Priority returns the requested new priority.
func (c UpdateSchedulePriorityCommand) Priority() schedule.Priority {
	return c.priority
}
