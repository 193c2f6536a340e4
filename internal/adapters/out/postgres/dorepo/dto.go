// Package dorepo provides data transfer objects and mapping functions for
// delivery order persistence. It implements the repository pattern for the
// delivery order aggregate, handling the conversion between domain entities
// and database representations.
package dorepo

import (
	"time"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryOrderDTO represents the database structure for persisting delivery
// order aggregates. The number carries a unique index so concurrent
// allocations of the same DO number fail at insert time, and stage and
// location are indexed for the department queue and board queries.
type DeliveryOrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	DoNumber         string    `gorm:"column:do_number;uniqueIndex"`
	PartyID          uuid.UUID `gorm:"type:uuid;index"`
	AuthorizedPerson string
	ValidFrom        time.Time
	ValidUntil       time.Time
	CurrentStage     string `gorm:"index"`
	CurrentLocation  string `gorm:"index"`
	Notes            *string
	CreatedBy        uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time
}

// TableName specifies the database table name for delivery order entities.
func (DeliveryOrderDTO) TableName() string {
	return "delivery_orders"
}

// fromDomain converts a delivery order domain aggregate to its database
// representation. Stage and location are stored in their snake_case string
// form so raw query handlers can filter on them directly.
func fromDomain(aggregate *deliveryorder.DeliveryOrder) DeliveryOrderDTO {
	var notes *string
	if n := aggregate.Notes(); n != "" {
		notes = &n
	}

	return DeliveryOrderDTO{
		ID:               aggregate.ID().Bytes(),
		DoNumber:         aggregate.Number().String(),
		PartyID:          aggregate.PartyID().Bytes(),
		AuthorizedPerson: aggregate.AuthorizedPerson(),
		ValidFrom:        aggregate.ValidFrom(),
		ValidUntil:       aggregate.ValidUntil(),
		CurrentStage:     aggregate.Stage().String(),
		CurrentLocation:  aggregate.Location().String(),
		Notes:            notes,
		CreatedBy:        aggregate.CreatedBy().Bytes(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a delivery order domain aggregate.
// Reconstructs the complete aggregate including its stored stage and location
// using RestoreDeliveryOrder, which re-checks the stage/location invariant.
func toDomain(dto DeliveryOrderDTO) (*deliveryorder.DeliveryOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	partyID, err := kernel.UUIDFromBytes(dto.PartyID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	number, err := deliveryorder.ParseNumber(dto.DoNumber)
	if err != nil {
		return nil, err
	}

	stage, err := deliveryorder.StageFromString(dto.CurrentStage)
	if err != nil {
		return nil, err
	}

	location, err := kernel.DepartmentFromString(dto.CurrentLocation)
	if err != nil {
		return nil, err
	}

	var notes string
	if dto.Notes != nil {
		notes = *dto.Notes
	}

	return deliveryorder.RestoreDeliveryOrder(
		id,
		number,
		partyID,
		dto.AuthorizedPerson,
		dto.ValidFrom,
		dto.ValidUntil,
		notes,
		createdBy,
		dto.CreatedAt,
		stage,
		location,
	)
}
