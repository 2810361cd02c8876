package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrRegisterCarrierCommandIsNotConstructed = errors.New(
		"RegisterCarrierCommand must be created via NewRegisterCarrierCommand constructor",
	)
	ErrCarrierNameIsRequired    = errs.NewValueIsRequiredError("name")
	ErrVehicleTypeIsRequired    = errs.NewValueIsRequiredError("vehicle type")
	ErrCarrierLocationIsRequired = errs.NewValueIsRequiredError("location")
)

// RegisterCarrierCommand represents a request to register the calling
// identity as a carrier. Capacity validity is deliberately left to the
// domain so the rejection carries the ledger's INVALID_CAPACITY code.
//
// Example:
//
//	cmd, err := NewRegisterCarrierCommand(id, "Fast Delivery Co", "Truck", 1000, "New York")
//	if err != nil {
//	    return fmt.Errorf("invalid registration request: %w", err)
//	}
//
//	handler := NewRegisterCarrierCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register carrier: %w", err)
//	}
type RegisterCarrierCommand struct { //nolint:recvcheck //using for validation
	id          kernel.Principal
	name        string
	vehicleType string
	maxCapacity int
	location    string

	guard guard.ConstructorGuard
}

// NewRegisterCarrierCommand creates a command to register a carrier.
// Validates that the identity is constructed and the descriptive fields are
// non-empty.
func NewRegisterCarrierCommand(
	id kernel.Principal,
	name string,
	vehicleType string,
	maxCapacity int,
	location string,
) (RegisterCarrierCommand, error) {
	command := RegisterCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setID(id),
		command.setName(name),
		command.setVehicleType(vehicleType),
		command.setLocation(location),
	); err != nil {
		return RegisterCarrierCommand{}, err
	}

	command.maxCapacity = maxCapacity

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCarrierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCarrierCommandIsNotConstructed)
}

// ID returns the registering identity.
func (c RegisterCarrierCommand) ID() kernel.Principal {
	return c.id
}

// Name returns the carrier name from the command.
func (c RegisterCarrierCommand) Name() string {
	return c.name
}

// VehicleType returns the vehicle type from the command.
func (c RegisterCarrierCommand) VehicleType() string {
	return c.vehicleType
}

// MaxCapacity returns the declared maximum capacity from the command.
func (c RegisterCarrierCommand) MaxCapacity() int {
	return c.maxCapacity
}

// Location returns the starting location from the command.
func (c RegisterCarrierCommand) Location() string {
	return c.location
}

func (c *RegisterCarrierCommand) setID(id kernel.Principal) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *RegisterCarrierCommand) setName(name string) error {
	if name == "" {
		return ErrCarrierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterCarrierCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *RegisterCarrierCommand) setLocation(location string) error {
	if location == "" {
		return ErrCarrierLocationIsRequired
	}

	c.location = location
	return nil
}
