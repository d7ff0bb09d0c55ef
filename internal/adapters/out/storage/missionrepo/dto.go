// Package missionrepo maps mission.Mission to the drone_missions table.
package missionrepo

import (
	"time"

	"dronedelivery/internal/adapters/out/storage/orderrepo"
	"dronedelivery/internal/adapters/out/storage/userrepo"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/mission"

	"github.com/google/uuid"
)

type MissionDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	Order       *orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PilotID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	Pilot       *userrepo.UserDTO   `gorm:"foreignKey:PilotID;constraint:OnDelete:CASCADE"`
	Status      string              `gorm:"type:varchar(50);not null;default:'Pending'"`
	CreatedAt   time.Time           `gorm:"not null"`
	CompletedAt *time.Time
	Destination DestinationDTO `gorm:"embedded;embeddedPrefix:destination_"`
}

func (MissionDTO) TableName() string {
	return "drone_missions"
}

// DestinationDTO holds the last observed vessel position; all columns are
// null until the first observation.
type DestinationDTO struct {
	Latitude   *float64
	Longitude  *float64
	ObservedAt *time.Time
}

func fromDomain(m *mission.Mission) MissionDTO {
	dto := MissionDTO{
		ID:          m.ID().Bytes(),
		OrderID:     m.OrderID().Bytes(),
		PilotID:     m.PilotID().Bytes(),
		Status:      m.Status(),
		CreatedAt:   m.CreatedAt(),
		CompletedAt: m.CompletedAt(),
	}

	if d := m.Destination(); d != nil {
		lat, lon, at := d.Position.Latitude(), d.Position.Longitude(), d.ObservedAt
		dto.Destination = DestinationDTO{Latitude: &lat, Longitude: &lon, ObservedAt: &at}
	}

	return dto
}

func toDomain(dto MissionDTO) (*mission.Mission, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	pilotID, err := kernel.UUIDFromBytes(dto.PilotID[:])
	if err != nil {
		return nil, err
	}

	var destination *mission.Destination
	if d := dto.Destination; d.Latitude != nil && d.Longitude != nil && d.ObservedAt != nil {
		pos, posErr := kernel.NewPosition(*d.Latitude, *d.Longitude)
		if posErr != nil {
			return nil, posErr
		}
		destination = &mission.Destination{Position: pos, ObservedAt: *d.ObservedAt}
	}

	return mission.RestoreMission(id, orderID, pilotID, dto.Status, dto.CreatedAt, dto.CompletedAt, destination)
}
