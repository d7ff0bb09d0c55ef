// Package userrepo maps identity.User to the users table.
package userrepo

import (
	"time"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email          string    `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(10);not null"`
	VesselCallsign *string   `gorm:"type:varchar(20)"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *identity.User) UserDTO {
	var callsign *string
	if c, ok := u.VesselCallsign(); ok {
		callsign = &c
	}

	return UserDTO{
		ID:             u.ID().Bytes(),
		Username:       u.Username(),
		Email:          u.Email(),
		PasswordHash:   u.PasswordHash(),
		Role:           u.Role().String(),
		VesselCallsign: callsign,
		CreatedAt:      u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := identity.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var callsign string
	if dto.VesselCallsign != nil {
		callsign = *dto.VesselCallsign
	}

	ident, err := identity.NewIdentity(role, callsign)
	if err != nil {
		return nil, err
	}

	return identity.RestoreUser(id, dto.Username, dto.Email, dto.PasswordHash, ident, dto.CreatedAt)
}
