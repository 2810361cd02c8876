// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence. This package implements the repository pattern for
// the carrier domain aggregate, handling the conversion between domain
// entities and database representations.
package carrierrepo

import (
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
)

// CarrierDTO represents the database structure for persisting carrier
// aggregates. Carriers are keyed by their principal identity string.
type CarrierDTO struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	VehicleType  string
	MaxCapacity  int
	CurrentLoad  int
	Available    bool
	Location     string
	Rating       int
	RegisteredAt uint64
}

// TableName specifies the database table name for carrier entities.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier domain aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:           aggregate.ID().String(),
		Name:         aggregate.Name(),
		VehicleType:  aggregate.VehicleType(),
		MaxCapacity:  aggregate.MaxCapacity(),
		CurrentLoad:  aggregate.CurrentLoad(),
		Available:    aggregate.Available(),
		Location:     aggregate.Location(),
		Rating:       aggregate.Rating(),
		RegisteredAt: uint64(aggregate.RegisteredAt()),
	}
}

// toDomain converts a database DTO to a carrier domain aggregate using RestoreCarrier.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.NewPrincipal(dto.ID)
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(
		id,
		dto.Name,
		dto.VehicleType,
		dto.MaxCapacity,
		dto.CurrentLoad,
		dto.Available,
		dto.Location,
		dto.Rating,
		kernel.Height(dto.RegisteredAt),
	)
}
