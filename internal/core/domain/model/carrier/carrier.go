package carrier

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// defaultRating is the rating every carrier starts with at registration.
const defaultRating = 5

// Domain errors for carrier operations.
var (
	// ErrCarrierNotFound is the ledger rejection for operations referencing an
	// identity with no carrier record.
	ErrCarrierNotFound = errs.NewDomainError(errs.CodeCarrierNotFound, "carrier not found")
	// ErrAlreadyRegistered is the ledger rejection for a second registration
	// attempt by the same identity.
	ErrAlreadyRegistered = errs.NewDomainError(errs.CodeAlreadyRegistered, "carrier already registered")
	// ErrInvalidCapacity is the ledger rejection for a non-positive maximum capacity.
	ErrInvalidCapacity = errs.NewDomainError(errs.CodeInvalidCapacity, "max capacity must be greater than zero")
	// ErrNameIsRequired is returned when attempting to create a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleTypeIsRequired is returned when attempting to create a carrier without a vehicle type.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicle type")
	// ErrLocationIsRequired is returned when a carrier location is empty.
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
)

// Carrier represents a registered logistics provider in the ledger.
// It is an aggregate root keyed by the provider's principal identity:
// exactly one record may exist per identity, and the identity is immutable
// once registered.
//
// Key responsibilities:
//   - Enforcing capacity validity (max capacity strictly positive,
//     current load never exceeding it)
//   - Managing the mutable operational state a carrier controls:
//     availability flag, declared location, and current load
//   - Deriving available capacity for scheduling decisions
//
// Business rules:
//   - Registration defaults: current load 0, available, rating 5
//   - A carrier record is never deleted
//   - Only the owning identity mutates a carrier (enforced by the
//     operations layer, which keys every mutation by the caller identity)
type Carrier struct {
	// id is the principal identity that registered the carrier
	id kernel.Principal
	// name is the human-readable carrier name
	name string
	// vehicleType describes the carrier's vehicle
	vehicleType string
	// maxCapacity is the declared maximum load, always positive
	maxCapacity int
	// currentLoad is the load currently carried, within [0, maxCapacity]
	currentLoad int
	// available reports whether the carrier accepts new work
	available bool
	// location is the carrier's declared position label
	location string
	// rating is the carrier's service rating
	rating int
	// registeredAt is the ledger height at registration
	registeredAt kernel.Height
	// guard ensures the carrier was properly constructed
	guard guard.ConstructorGuard
}

// NewCarrier creates a freshly registered Carrier with the standard defaults:
// zero current load, available, rating 5. This is the only way to create a
// carrier record for a new identity.
//
// Returns ErrInvalidCapacity when maxCapacity is not strictly positive;
// all other parameter failures aggregate into a joined validation error.
func NewCarrier(
	id kernel.Principal,
	name string,
	vehicleType string,
	maxCapacity int,
	location string,
	registeredAt kernel.Height,
) (*Carrier, error) {
	carrier := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carrier.setID(id),
		carrier.setName(name),
		carrier.setVehicleType(vehicleType),
		carrier.setMaxCapacity(maxCapacity),
		carrier.setLocation(location),
	); err != nil {
		return nil, err
	}

	carrier.currentLoad = 0
	carrier.available = true
	carrier.rating = defaultRating
	carrier.registeredAt = registeredAt

	return carrier, nil
}

// RestoreCarrier reconstructs a Carrier aggregate from persistent storage.
// Unlike NewCarrier, which applies registration defaults, this constructor
// accepts the full persisted state and revalidates the capacity invariant
// (0 ≤ currentLoad ≤ maxCapacity, maxCapacity > 0).
func RestoreCarrier(
	id kernel.Principal,
	name string,
	vehicleType string,
	maxCapacity int,
	currentLoad int,
	available bool,
	location string,
	rating int,
	registeredAt kernel.Height,
) (*Carrier, error) {
	carrier := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carrier.setID(id),
		carrier.setName(name),
		carrier.setVehicleType(vehicleType),
		carrier.setMaxCapacity(maxCapacity),
		carrier.setCurrentLoad(currentLoad),
		carrier.setLocation(location),
	); err != nil {
		return nil, err
	}

	carrier.available = available
	carrier.rating = rating
	carrier.registeredAt = registeredAt

	return carrier, nil
}

// Validate ensures the carrier was created through a constructor.
func (c *Carrier) Validate() error {
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// ID returns the principal identity that owns the carrier record.
func (c *Carrier) ID() kernel.Principal {
	return c.id
}

// Name returns the carrier name.
func (c *Carrier) Name() string {
	return c.name
}

// VehicleType returns the carrier's vehicle type.
func (c *Carrier) VehicleType() string {
	return c.vehicleType
}

// MaxCapacity returns the declared maximum load.
func (c *Carrier) MaxCapacity() int {
	return c.maxCapacity
}

// CurrentLoad returns the load currently carried.
func (c *Carrier) CurrentLoad() int {
	return c.currentLoad
}

// Available reports whether the carrier accepts new work.
func (c *Carrier) Available() bool {
	return c.available
}

// Location returns the carrier's declared position label.
func (c *Carrier) Location() string {
	return c.location
}

// Rating returns the carrier's service rating.
func (c *Carrier) Rating() int {
	return c.rating
}

// RegisteredAt returns the ledger height at which the carrier registered.
func (c *Carrier) RegisteredAt() kernel.Height {
	return c.registeredAt
}

// SetAvailability overwrites the availability flag. All other fields are
// left untouched.
func (c *Carrier) SetAvailability(available bool) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.available = available
	return nil
}

// MoveTo overwrites the carrier's declared location. All other fields are
// left untouched.
func (c *Carrier) MoveTo(location string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if location == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}

// AvailableCapacity returns the load the carrier can still take on:
// max capacity minus current load.
func (c *Carrier) AvailableCapacity() int {
	return c.maxCapacity - c.currentLoad
}

func (c *Carrier) setID(id kernel.Principal) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Carrier) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *Carrier) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return ErrInvalidCapacity
	}

	c.maxCapacity = maxCapacity
	return nil
}

func (c *Carrier) setCurrentLoad(currentLoad int) error {
	if currentLoad < 0 || currentLoad > c.maxCapacity {
		return errs.NewValueIsOutOfRangeError("current load", currentLoad, 0, c.maxCapacity)
	}

	c.currentLoad = currentLoad
	return nil
}

func (c *Carrier) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}
