// Package partyrepo provides data transfer objects and mapping functions for
// party persistence.
package partyrepo

import (
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/domain/model/party"

	"github.com/google/uuid"
)

// PartyDTO represents the database structure for persisting parties.
// The party number carries a unique index.
type PartyDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartyNumber string    `gorm:"uniqueIndex"`
	PartyName   string
	CreatedAt   time.Time
}

// TableName specifies the database table name for party entities.
func (PartyDTO) TableName() string {
	return "parties"
}

// fromDomain converts a party domain aggregate to its database representation.
func fromDomain(aggregate *party.Party) PartyDTO {
	return PartyDTO{
		ID:          aggregate.ID().Bytes(),
		PartyNumber: aggregate.Number(),
		PartyName:   aggregate.Name(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a party domain aggregate.
func toDomain(dto PartyDTO) (*party.Party, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return party.RestoreParty(id, dto.PartyNumber, dto.PartyName, dto.CreatedAt)
}
