// Package routerepo provides data transfer objects and mapping functions for
// route persistence. Route IDs come from the shared counter table, not from a
// database sequence, so the DTO's primary key is never auto-generated.
package routerepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteDTO represents the database structure for persisting routes.
type RouteDTO struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement:false"`
	CarrierID     string `gorm:"index"`
	Origin        string
	Destination   string
	EstimatedTime int
	CostPerUnit   int
	Active        bool
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route entity to its database representation.
func fromDomain(entity *route.Route) RouteDTO {
	return RouteDTO{
		ID:            entity.ID(),
		CarrierID:     entity.Carrier().String(),
		Origin:        entity.Origin(),
		Destination:   entity.Destination(),
		EstimatedTime: entity.EstimatedTime(),
		CostPerUnit:   entity.CostPerUnit(),
		Active:        entity.Active(),
	}
}

// toDomain converts a database DTO to a route entity using RestoreRoute.
func toDomain(dto RouteDTO) (*route.Route, error) {
	carrierID, err := kernel.NewPrincipal(dto.CarrierID)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(
		dto.ID,
		carrierID,
		dto.Origin,
		dto.Destination,
		dto.EstimatedTime,
		dto.CostPerUnit,
		dto.Active,
	)
}
