// Package tokenrepo persists password reset tokens. Expired tokens are swept
// by a background job via DeleteExpired.
package tokenrepo

import (
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// ResetTokenDTO represents the database structure for persisting reset tokens.
type ResetTokenDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Token     string    `gorm:"uniqueIndex"`
	ExpiresAt time.Time `gorm:"index"`
	IsUsed    bool
	CreatedAt time.Time
}

// TableName specifies the database table name for reset tokens.
func (ResetTokenDTO) TableName() string {
	return "password_reset_tokens"
}

// fromDomain converts a reset token to its database representation.
func fromDomain(token *user.ResetToken) ResetTokenDTO {
	return ResetTokenDTO{
		ID:        token.ID().Bytes(),
		UserID:    token.UserID().Bytes(),
		Token:     token.Token(),
		ExpiresAt: token.ExpiresAt(),
		IsUsed:    token.IsUsed(),
		CreatedAt: token.CreatedAt(),
	}
}

// toDomain converts a database DTO to a reset token.
func toDomain(dto ResetTokenDTO) (*user.ResetToken, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreResetToken(id, userID, dto.Token, dto.ExpiresAt, dto.IsUsed, dto.CreatedAt)
}
