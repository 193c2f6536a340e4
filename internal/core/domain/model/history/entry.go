// Package history contains the append-only workflow ledger: one immutable
// Entry per delivery order transition, and the Replay fold that reconstructs
// a delivery order's current (stage, location) from its ordered entries.
//
// Entries are events. They are written exactly once, in the same transaction
// as the state mutation they describe, and are never updated or deleted.
package history

import (
	"errors"
	"fmt"
	"time"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through the NewEntry factory method.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// Entry records a single department-to-department transition of a delivery
// order. The fromDepartment is nil only for the creation entry; every other
// entry names both sides of the move (which may be the same department, e.g.
// for received and rejected).
type Entry struct {
	id             kernel.UUID
	deliveryOrder  kernel.UUID
	fromDepartment *kernel.Department
	toDepartment   kernel.Department
	action         deliveryorder.Action
	performedBy    kernel.UUID
	remarks        string
	performedAt    time.Time

	isConstructed bool
}

// NewEntry creates an immutable ledger entry.
//
// The fromDepartment may be nil only when the action is created; any other
// action requires a valid from department. Remarks are free text attached
// verbatim; the ledger does not interpret them.
func NewEntry(
	id kernel.UUID,
	deliveryOrderID kernel.UUID,
	fromDepartment *kernel.Department,
	toDepartment kernel.Department,
	action deliveryorder.Action,
	performedBy kernel.UUID,
	remarks string,
	performedAt time.Time,
) (*Entry, error) {
	entry := &Entry{
		remarks:       remarks,
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setDeliveryOrderID(deliveryOrderID),
		entry.setDepartments(fromDepartment, toDepartment, action),
		entry.setAction(action),
		entry.setPerformedBy(performedBy),
		entry.setPerformedAt(performedAt),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate ensures the Entry instance was properly constructed through NewEntry.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// DeliveryOrderID returns the owning delivery order reference.
func (e *Entry) DeliveryOrderID() kernel.UUID {
	return e.deliveryOrder
}

// FromDepartment returns the department the order moved from.
// It is nil only for the creation entry.
func (e *Entry) FromDepartment() *kernel.Department {
	return e.fromDepartment
}

// ToDepartment returns the department the order moved to.
func (e *Entry) ToDepartment() kernel.Department {
	return e.toDepartment
}

// Action returns the transition tag.
func (e *Entry) Action() deliveryorder.Action {
	return e.action
}

// PerformedBy returns the acting user reference.
func (e *Entry) PerformedBy() kernel.UUID {
	return e.performedBy
}

// Remarks returns the optional free-text remarks.
func (e *Entry) Remarks() string {
	return e.remarks
}

// PerformedAt returns the transition timestamp.
func (e *Entry) PerformedAt() time.Time {
	return e.performedAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setDeliveryOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryOrderId", err)
	}
	e.deliveryOrder = id
	return nil
}

func (e *Entry) setDepartments(from *kernel.Department, to kernel.Department, action deliveryorder.Action) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if from == nil {
		if action != deliveryorder.ActionCreated {
			return errs.NewValueIsRequiredErrorWithCause(
				"fromDepartment",
				fmt.Errorf("only the %s entry may omit the source department", deliveryorder.ActionCreated),
			)
		}
	} else {
		if err := from.Validate(); err != nil {
			return err
		}
		dept := *from
		e.fromDepartment = &dept
	}

	e.toDepartment = to
	return nil
}

func (e *Entry) setAction(action deliveryorder.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	e.action = action
	return nil
}

func (e *Entry) setPerformedBy(performedBy kernel.UUID) error {
	if err := performedBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("performedBy", err)
	}
	e.performedBy = performedBy
	return nil
}

func (e *Entry) setPerformedAt(performedAt time.Time) error {
	if performedAt.IsZero() {
		return errs.NewValueIsRequiredError("performedAt")
	}
	e.performedAt = performedAt
	return nil
}
