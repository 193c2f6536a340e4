// Package userrepo provides data transfer objects and mapping functions for
// user account persistence.
package userrepo

import (
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
// Username and email each carry a unique index.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	Email        string    `gorm:"uniqueIndex"`
	PasswordHash string
	Department   string
	IsActive     bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Department:   aggregate.Department().String(),
		IsActive:     aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	department, err := kernel.DepartmentFromString(dto.Department)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Username,
		dto.Email,
		dto.PasswordHash,
		department,
		dto.IsActive,
		dto.CreatedAt,
	)
}
