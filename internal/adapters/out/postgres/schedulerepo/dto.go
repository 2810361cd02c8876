// Package schedulerepo provides data transfer objects and mapping functions
// for delivery schedule persistence. Shipment identifiers and the optimized
// route are stored as postgres text arrays.
package schedulerepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/schedule"

	"github.com/lib/pq"
)

// ScheduleDTO represents the database structure for persisting schedules.
type ScheduleDTO struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement:false"`
	Coordinator    string `gorm:"index"`
	CarrierID      string `gorm:"index"`
	Shipments      pq.StringArray `gorm:"type:text[]"`
	OptimizedRoute pq.StringArray `gorm:"type:text[]"`
	TotalDistance  int
	EstimatedTime  int
	Priority       int
	CreatedAt      uint64
	Status         int
}

// TableName specifies the database table name for schedule entities.
func (ScheduleDTO) TableName() string {
	return "schedules"
}

// fromDomain converts a schedule domain aggregate to its database representation.
func fromDomain(aggregate *schedule.DeliverySchedule) ScheduleDTO {
	shipments := make(pq.StringArray, 0, len(aggregate.Shipments()))
	for _, shipment := range aggregate.Shipments() {
		shipments = append(shipments, shipment.String())
	}

	return ScheduleDTO{
		ID:             aggregate.ID(),
		Coordinator:    aggregate.Coordinator().String(),
		CarrierID:      aggregate.Carrier().String(),
		Shipments:      shipments,
		OptimizedRoute: pq.StringArray(aggregate.OptimizedRoute()),
		TotalDistance:  aggregate.TotalDistance(),
		EstimatedTime:  aggregate.EstimatedTime(),
		Priority:       int(aggregate.Priority()),
		CreatedAt:      uint64(aggregate.CreatedAt()),
		Status:         int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a schedule aggregate using RestoreDeliverySchedule.
func toDomain(dto ScheduleDTO) (*schedule.DeliverySchedule, error) {
	coordinator, err := kernel.NewPrincipal(dto.Coordinator)
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.NewPrincipal(dto.CarrierID)
	if err != nil {
		return nil, err
	}

	shipments := make([]kernel.UUID, 0, len(dto.Shipments))
	for _, raw := range dto.Shipments {
		shipment, uuidErr := kernel.UUIDFromString(raw)
		if uuidErr != nil {
			return nil, uuidErr
		}
		shipments = append(shipments, shipment)
	}

	return schedule.RestoreDeliverySchedule(
		dto.ID,
		coordinator,
		carrierID,
		shipments,
		dto.OptimizedRoute,
		dto.TotalDistance,
		dto.EstimatedTime,
		schedule.Priority(dto.Priority),
		kernel.Height(dto.CreatedAt),
		schedule.Status(dto.Status),
	)
}
