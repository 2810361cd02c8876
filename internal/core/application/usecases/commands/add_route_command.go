package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrAddRouteCommandIsNotConstructed = errors.New(
		"AddRouteCommand must be created via NewAddRouteCommand constructor",
	)
	ErrOriginIsRequired      = errs.NewValueIsRequiredError("origin")
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
)

// AddRouteCommand represents a request by the calling identity to publish a
// route it services. Time and cost bounds are enforced by the domain.
type AddRouteCommand struct { //nolint:recvcheck //using for validation
	carrier       kernel.Principal
	origin        string
	destination   string
	estimatedTime int
	costPerUnit   int

	guard guard.ConstructorGuard
}

// NewAddRouteCommand creates a command to publish a new route.
func NewAddRouteCommand(
	carrier kernel.Principal,
	origin string,
	destination string,
	estimatedTime int,
	costPerUnit int,
) (AddRouteCommand, error) {
	command := AddRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrier(carrier),
		command.setOrigin(origin),
		command.setDestination(destination),
	); err != nil {
		return AddRouteCommand{}, err
	}

	command.estimatedTime = estimatedTime
	command.costPerUnit = costPerUnit

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRouteCommand) Validate() error {
	return c.guard.Validate(ErrAddRouteCommandIsNotConstructed)
}

// Carrier returns the publishing carrier's identity.
func (c AddRouteCommand) Carrier() kernel.Principal {
	return c.carrier
}

// Origin returns the route origin from the command.
func (c AddRouteCommand) Origin() string {
	return c.origin
}

// Destination returns the route destination from the command.
func (c AddRouteCommand) Destination() string {
	return c.destination
}

// EstimatedTime returns the declared travel time from the command.
func (c AddRouteCommand) EstimatedTime() int {
	return c.estimatedTime
}

// CostPerUnit returns the declared unit cost from the command.
func (c AddRouteCommand) CostPerUnit() int {
	return c.costPerUnit
}

func (c *AddRouteCommand) setCarrier(carrier kernel.Principal) error {
	if err := carrier.Validate(); err != nil {
		return err
	}

	c.carrier = carrier
	return nil
}

func (c *AddRouteCommand) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}

	c.origin = origin
	return nil
}

func (c *AddRouteCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}
