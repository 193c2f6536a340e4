// Package historyrepo persists the append-only workflow ledger. Entries are
// inserted in the same transaction as the delivery order mutation they
// describe and are never updated or deleted.
package historyrepo

import (
	"time"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/history"
	"dotrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting ledger entries.
// FromDepartment is nullable: only the creation entry has no source. Seq is
// assigned by the database on insert and breaks performed_at ties in
// insertion order, which matters when two entries of one transaction carry
// the same timestamp.
type EntryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq            int64     `gorm:"autoIncrement"`
	DoID           uuid.UUID `gorm:"column:do_id;type:uuid;index"`
	FromDepartment *string
	ToDepartment   string
	Action         string
	PerformedBy    uuid.UUID `gorm:"type:uuid"`
	Remarks        *string
	PerformedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for ledger entries.
func (EntryDTO) TableName() string {
	return "workflow_history"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *history.Entry) EntryDTO {
	var from *string
	if d := entry.FromDepartment(); d != nil {
		s := d.String()
		from = &s
	}

	var remarks *string
	if r := entry.Remarks(); r != "" {
		remarks = &r
	}

	return EntryDTO{
		ID:             entry.ID().Bytes(),
		DoID:           entry.DeliveryOrderID().Bytes(),
		FromDepartment: from,
		ToDepartment:   entry.ToDepartment().String(),
		Action:         entry.Action().String(),
		PerformedBy:    entry.PerformedBy().Bytes(),
		Remarks:        remarks,
		PerformedAt:    entry.PerformedAt(),
	}
}

// toDomain converts a database DTO to a ledger entry.
func toDomain(dto EntryDTO) (*history.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	doID, err := kernel.UUIDFromBytes(dto.DoID[:])
	if err != nil {
		return nil, err
	}

	performedBy, err := kernel.UUIDFromBytes(dto.PerformedBy[:])
	if err != nil {
		return nil, err
	}

	var from *kernel.Department
	if dto.FromDepartment != nil {
		dept, deptErr := kernel.DepartmentFromString(*dto.FromDepartment)
		if deptErr != nil {
			return nil, deptErr
		}
		from = &dept
	}

	to, err := kernel.DepartmentFromString(dto.ToDepartment)
	if err != nil {
		return nil, err
	}

	var remarks string
	if dto.Remarks != nil {
		remarks = *dto.Remarks
	}

	return history.NewEntry(
		id,
		doID,
		from,
		to,
		deliveryorder.Action(dto.Action),
		performedBy,
		remarks,
		dto.PerformedAt,
	)
}
