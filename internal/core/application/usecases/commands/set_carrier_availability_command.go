package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSetCarrierAvailabilityCommandIsNotConstructed = errors.New(
	"SetCarrierAvailabilityCommand must be created via NewSetCarrierAvailabilityCommand constructor",
)

// SetCarrierAvailabilityCommand represents a carrier's request to overwrite
// its own availability flag.
type SetCarrierAvailabilityCommand struct { //nolint:recvcheck //using for validation
	id        kernel.Principal
	available bool

	guard guard.ConstructorGuard
}

// NewSetCarrierAvailabilityCommand creates a command to set carrier availability.
func NewSetCarrierAvailabilityCommand(id kernel.Principal, available bool) (SetCarrierAvailabilityCommand, error) {
	if err := id.Validate(); err != nil {
		return SetCarrierAvailabilityCommand{}, err
	}

	return SetCarrierAvailabilityCommand{
		id:        id,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCarrierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetCarrierAvailabilityCommandIsNotConstructed)
}

// ID returns the calling carrier identity.
func (c SetCarrierAvailabilityCommand) ID() kernel.Principal {
	return c.id
}

// Available returns the requested availability flag.
func (c SetCarrierAvailabilityCommand) Available() bool {
	return c.available
}
