package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateCarrierLocationCommandIsNotConstructed = errors.New(
	"UpdateCarrierLocationCommand must be created via NewUpdateCarrierLocationCommand constructor",
)

// UpdateCarrierLocationCommand represents a request by the calling identity
// to report a new location for its own carrier record.
type UpdateCarrierLocationCommand struct { //nolint:recvcheck //using for validation
	id       kernel.Principal
	location string

	guard guard.ConstructorGuard
}

// NewUpdateCarrierLocationCommand creates a command to update a carrier's location.
func NewUpdateCarrierLocationCommand(
	id kernel.Principal,
	location string,
) (UpdateCarrierLocationCommand, error) {
	if err := id.Validate(); err != nil {
		return UpdateCarrierLocationCommand{}, err
	}

	if location == "" {
		return UpdateCarrierLocationCommand{}, ErrCarrierLocationIsRequired
	}

	return UpdateCarrierLocationCommand{
		id:       id,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCarrierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCarrierLocationCommandIsNotConstructed)
}

// ID returns the carrier identity whose location is updated.
func (c UpdateCarrierLocationCommand) ID() kernel.Principal {
	return c.id
}

// Location returns the reported location.
func (c UpdateCarrierLocationCommand) Location() string {
	return c.location
}
