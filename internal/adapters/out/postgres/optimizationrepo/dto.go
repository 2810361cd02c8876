// Package optimizationrepo provides data transfer objects and mapping
// functions for the optimizer ledger. Records are append-only; the repository
// exposes no update operation.
package optimizationrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/optimization"

	"github.com/lib/pq"
)

// OptimizationDTO represents the database structure for persisting
// optimization records.
type OptimizationDTO struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement:false"`
	ScheduleID     uint64 `gorm:"index"`
	OriginalRoute  pq.StringArray `gorm:"type:text[]"`
	OptimizedRoute pq.StringArray `gorm:"type:text[]"`
	DistanceSaved  int
	TimeSaved      int
	Algorithm      string
	CreatedAt      uint64
}

// TableName specifies the database table name for optimization records.
func (OptimizationDTO) TableName() string {
	return "optimizations"
}

// fromDomain converts an optimization record to its database representation.
func fromDomain(record *optimization.RouteOptimization) OptimizationDTO {
	return OptimizationDTO{
		ID:             record.ID(),
		ScheduleID:     record.ScheduleID(),
		OriginalRoute:  pq.StringArray(record.OriginalRoute()),
		OptimizedRoute: pq.StringArray(record.OptimizedRoute()),
		DistanceSaved:  record.DistanceSaved(),
		TimeSaved:      record.TimeSaved(),
		Algorithm:      record.Algorithm(),
		CreatedAt:      uint64(record.CreatedAt()),
	}
}

// toDomain converts a database DTO to an optimization record using RestoreRouteOptimization.
func toDomain(dto OptimizationDTO) (*optimization.RouteOptimization, error) {
	return optimization.RestoreRouteOptimization(
		dto.ID,
		dto.ScheduleID,
		dto.OriginalRoute,
		dto.OptimizedRoute,
		dto.DistanceSaved,
		dto.TimeSaved,
		dto.Algorithm,
		kernel.Height(dto.CreatedAt),
	)
}
