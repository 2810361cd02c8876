package commands

import (
	"errors"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/schedule"
	"logistics/internal/pkg/guard"
)

var ErrCreateScheduleCommandIsNotConstructed = errors.New(
	"CreateScheduleCommand must be created via NewCreateScheduleCommand constructor",
)

// CreateScheduleCommand represents a coordinator's request to assign a batch
// of shipments to a carrier. Priority validity is deliberately left to the
// domain so the rejection carries the ledger's INVALID_PRIORITY code.
type CreateScheduleCommand struct { //nolint:recvcheck //using for validation
	coordinator kernel.Principal
	carrier     kernel.Principal
	shipments   []kernel.UUID
	priority    schedule.Priority

	guard guard.ConstructorGuard
}

// NewCreateScheduleCommand creates a command to create a delivery schedule.
func NewCreateScheduleCommand(
	coordinator kernel.Principal,
	carrier kernel.Principal,
	shipments []kernel.UUID,
	priority schedule.Priority,
) (CreateScheduleCommand, error) {
	command := CreateScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCoordinator(coordinator),
		command.setCarrier(carrier),
		command.setShipments(shipments),
	); err != nil {
		return CreateScheduleCommand{}, err
	}

	command.priority = priority

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateScheduleCommand) Validate() error {
	return c.guard.Validate(ErrCreateScheduleCommandIsNotConstructed)
}

// Coordinator returns the creating coordinator's identity.
func (c CreateScheduleCommand) Coordinator() kernel.Principal {
	return c.coordinator
}

// Carrier returns the assigned carrier's identity.
func (c CreateScheduleCommand) Carrier() kernel.Principal {
	return c.carrier
}

// Shipments returns a copy of the shipment identifiers from the command.
func (c CreateScheduleCommand) Shipments() []kernel.UUID {
	return slices.Clone(c.shipments)
}

// Priority returns the requested priority from the command.
func (c CreateScheduleCommand) Priority() schedule.Priority {
	return c.priority
}

func (c *CreateScheduleCommand) setCoordinator(coordinator kernel.Principal) error {
	if err := coordinator.Validate(); err != nil {
		return err
	}

	c.coordinator = coordinator
	return nil
}

func (c *CreateScheduleCommand) setCarrier(carrier kernel.Principal) error {
	if err := carrier.Validate(); err != nil {
		return err
	}

	c.carrier = carrier
	return nil
}

func (c *CreateScheduleCommand) setShipments(shipments []kernel.UUID) error {
	for _, shipment := range shipments {
		if err := shipment.Validate(); err != nil {
			return err
		}
	}

	c.shipments = slices.Clone(shipments)
	return nil
}
