package deliveryorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"
)

var (
	// ErrDeliveryOrderIsNotConstructed is returned when a DeliveryOrder instance
	// was not created through the NewDeliveryOrder or RestoreDeliveryOrder
	// factory methods. This ensures all orders are properly validated.
	ErrDeliveryOrderIsNotConstructed = errors.New(
		"DeliveryOrder must be created via NewDeliveryOrder or RestoreDeliveryOrder",
	)
)

// DeliveryOrder is the aggregate root tracked through the department pipeline.
// It manages the order lifecycle from creation at paper_creator through the
// project office, area office, and road sale departments to a terminal stage.
//
// DeliveryOrder follows these invariants:
//   - Must have a valid unique identifier and number
//   - Validity window: validUntil is strictly after validFrom
//   - The location always matches the stage's derived department, except
//     Rejected, where the location is frozen at the rejecting department
//   - Stage transitions follow the pipeline rules and terminal stages accept
//     no further transitions
//   - Can only be created through the factory methods
type DeliveryOrder struct {
	id               kernel.UUID
	number           Number
	partyID          kernel.UUID
	authorizedPerson string
	validFrom        time.Time
	validUntil       time.Time
	notes            string
	createdBy        kernel.UUID
	createdAt        time.Time

	// stage and location are mutated exclusively by transition methods.
	stage    Stage
	location kernel.Department

	// isConstructed ensures the order was created via a factory method.
	isConstructed bool
}

// NewDeliveryOrder creates a new DeliveryOrder in the Created stage at
// paper_creator. All invariants are validated; the returned order has not yet
// been submitted to the project office (see SubmitToProjectOffice).
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - number: delivery order number (DO-<year>-<sequence>)
//   - partyID: counterparty reference (must be a valid UUID)
//   - authorizedPerson: required free text naming the authorized person
//   - validFrom, validUntil: validity window; until must be strictly after from
//   - notes: optional free text
//   - createdBy: creating user reference (must be a valid UUID)
//   - createdAt: creation timestamp supplied by the caller's clock
func NewDeliveryOrder(
	id kernel.UUID,
	number Number,
	partyID kernel.UUID,
	authorizedPerson string,
	validFrom time.Time,
	validUntil time.Time,
	notes string,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*DeliveryOrder, error) {
	do := &DeliveryOrder{
		stage:         Created,
		location:      kernel.PaperCreator,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		do.setID(id),
		do.setNumber(number),
		do.setPartyID(partyID),
		do.setAuthorizedPerson(authorizedPerson),
		do.setValidityWindow(validFrom, validUntil),
		do.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return do, nil
}

// RestoreDeliveryOrder reconstructs a DeliveryOrder from persistence with its
// stored stage and location. The (stage, location) pair is validated against
// the derived-location invariant: for every stage except Rejected the location
// must equal the stage's department; for Rejected the location must be a
// workflow department (the one that rejected the order).
func RestoreDeliveryOrder(
	id kernel.UUID,
	number Number,
	partyID kernel.UUID,
	authorizedPerson string,
	validFrom time.Time,
	validUntil time.Time,
	notes string,
	createdBy kernel.UUID,
	createdAt time.Time,
	stage Stage,
	location kernel.Department,
) (*DeliveryOrder, error) {
	do, err := NewDeliveryOrder(id, number, partyID, authorizedPerson, validFrom, validUntil, notes, createdBy, createdAt)
	if err != nil {
		return nil, err
	}

	if err = stage.Validate(); err != nil {
		return nil, err
	}

	if stage == Rejected {
		if !location.IsWorkflowStage() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"location is invalid",
				fmt.Errorf("%s cannot hold a rejected delivery order", location.String()),
			)
		}
	} else {
		derived, ok := stage.Location()
		if !ok || derived != location {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"location is invalid",
				fmt.Errorf("%s does not match stage %s", location.String(), stage.String()),
			)
		}
	}

	do.stage = stage
	do.location = location
	return do, nil
}

// Validate ensures the DeliveryOrder instance was properly constructed through
// a factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *DeliveryOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrDeliveryOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two delivery orders by their unique identifiers.
func (o *DeliveryOrder) IsEqual(other *DeliveryOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *DeliveryOrder) ID() kernel.UUID {
	return o.id
}

// Number returns the order's delivery order number.
func (o *DeliveryOrder) Number() Number {
	return o.number
}

// PartyID returns the counterparty reference.
func (o *DeliveryOrder) PartyID() kernel.UUID {
	return o.partyID
}

// AuthorizedPerson returns the authorized person free text.
func (o *DeliveryOrder) AuthorizedPerson() string {
	return o.authorizedPerson
}

// ValidFrom returns the start of the validity window.
func (o *DeliveryOrder) ValidFrom() time.Time {
	return o.validFrom
}

// ValidUntil returns the end of the validity window.
func (o *DeliveryOrder) ValidUntil() time.Time {
	return o.validUntil
}

// Notes returns the optional free-text notes.
func (o *DeliveryOrder) Notes() string {
	return o.notes
}

// CreatedBy returns the creating user reference.
func (o *DeliveryOrder) CreatedBy() kernel.UUID {
	return o.createdBy
}

// CreatedAt returns the creation timestamp.
func (o *DeliveryOrder) CreatedAt() time.Time {
	return o.createdAt
}

// Stage returns the current workflow stage.
func (o *DeliveryOrder) Stage() Stage {
	return o.stage
}

// Location returns the department currently holding the order.
func (o *DeliveryOrder) Location() kernel.Department {
	return o.location
}

// IsTerminal reports whether the order accepts no further transitions.
func (o *DeliveryOrder) IsTerminal() bool {
	return o.stage.IsTerminal()
}

// SubmitToProjectOffice advances a freshly created order to the project
// office. This is the automatic step chained onto creation: the actor must
// belong to paper_creator and the order must still be in the Created stage.
//
// Effect: stage becomes AtProjectOffice and the location moves to
// project_office.
func (o *DeliveryOrder) SubmitToProjectOffice(actor kernel.Department) error {
	if err := o.checkActor(actor, kernel.PaperCreator); err != nil {
		return err
	}

	newStage, err := o.stage.Submit()
	if err != nil {
		return errs.NewForbiddenDepartmentErrorWithCause(actor.String(), err)
	}

	o.applyStage(newStage)
	return nil
}

// Receive acknowledges the order at the project office. The actor must belong
// to project_office and the order must be AtProjectOffice.
//
// Effect: stage becomes ReceivedAtProjectOffice; the location is unchanged.
func (o *DeliveryOrder) Receive(actor kernel.Department) error {
	if err := o.checkActor(actor, kernel.ProjectOffice); err != nil {
		return err
	}

	newStage, err := o.stage.Receive()
	if err != nil {
		return errs.NewForbiddenDepartmentErrorWithCause(actor.String(), err)
	}

	o.applyStage(newStage)
	return nil
}

// Dispatch sends a received order onward to the area office. The actor must
// belong to project_office and the order must be ReceivedAtProjectOffice;
// the legacy direct dispatch from AtProjectOffice is rejected.
//
// Effect: stage becomes AtAreaOffice and the location moves to area_office.
func (o *DeliveryOrder) Dispatch(actor kernel.Department) error {
	if err := o.checkActor(actor, kernel.ProjectOffice); err != nil {
		return err
	}

	newStage, err := o.stage.Dispatch()
	if err != nil {
		return errs.NewForbiddenDepartmentErrorWithCause(actor.String(), err)
	}

	o.applyStage(newStage)
	return nil
}

// Approve performs the generic forward step for the acting department using
// the next-step table: project_office forwards to area_office, area_office to
// road_sale, and road_sale completes the order. The actor's department must
// equal the order's current location and have a next-step entry.
//
// Returns the action tag to record on the ledger (approved_and_forwarded, or
// completed for the final step).
func (o *DeliveryOrder) Approve(actor kernel.Department) (Action, error) {
	if o.stage.IsTerminal() {
		return "", errs.NewAlreadyTerminalError(o.stage.String())
	}

	newStage, action, ok := NextApproveStep(actor)
	if !ok {
		return "", errs.NewForbiddenDepartmentErrorWithCause(
			actor.String(),
			fmt.Errorf("%s has no forward step", actor.String()),
		)
	}

	if actor != o.location {
		return "", errs.NewForbiddenDepartmentErrorWithCause(
			actor.String(),
			fmt.Errorf("delivery order is at %s", o.location.String()),
		)
	}

	o.applyStage(newStage)
	return action, nil
}

// Reject freezes the order at the acting department. Any workflow department
// holding the order may reject it from any non-terminal stage.
//
// Effect: stage becomes Rejected and the location stays at the rejecting
// department; no further transitions are accepted afterwards.
func (o *DeliveryOrder) Reject(actor kernel.Department) error {
	if o.stage.IsTerminal() {
		return errs.NewAlreadyTerminalError(o.stage.String())
	}

	if err := actor.Validate(); err != nil {
		return err
	}

	if actor != o.location {
		return errs.NewForbiddenDepartmentErrorWithCause(
			actor.String(),
			fmt.Errorf("delivery order is at %s", o.location.String()),
		)
	}

	o.stage = Rejected
	// Location intentionally left at the rejecting department.
	return nil
}

// checkActor runs the shared transition preamble: terminal lock first, then
// the department authorization against the expected department and the
// order's current location.
func (o *DeliveryOrder) checkActor(actor, expected kernel.Department) error {
	if o.stage.IsTerminal() {
		return errs.NewAlreadyTerminalError(o.stage.String())
	}

	if err := actor.Validate(); err != nil {
		return err
	}

	if actor != expected {
		return errs.NewForbiddenDepartmentErrorWithCause(
			actor.String(),
			fmt.Errorf("only %s may perform this transition", expected.String()),
		)
	}

	// Create is the one transition where the order is not yet located
	// anywhere; for every other transition the actor must hold the order.
	if o.stage != Created && actor != o.location {
		return errs.NewForbiddenDepartmentErrorWithCause(
			actor.String(),
			fmt.Errorf("delivery order is at %s", o.location.String()),
		)
	}

	return nil
}

// applyStage sets the stage and its derived location in one step, so the
// (stage, location) invariant holds by construction.
func (o *DeliveryOrder) applyStage(stage Stage) {
	o.stage = stage
	if location, ok := stage.Location(); ok {
		o.location = location
	}
}

func (o *DeliveryOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *DeliveryOrder) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *DeliveryOrder) setPartyID(partyID kernel.UUID) error {
	if err := partyID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("partyId", err)
	}
	o.partyID = partyID
	return nil
}

func (o *DeliveryOrder) setAuthorizedPerson(authorizedPerson string) error {
	if strings.TrimSpace(authorizedPerson) == "" {
		return errs.NewValueIsRequiredError("authorizedPerson")
	}
	o.authorizedPerson = authorizedPerson
	return nil
}

func (o *DeliveryOrder) setValidityWindow(validFrom, validUntil time.Time) error {
	if validFrom.IsZero() {
		return errs.NewValueIsRequiredError("validFrom")
	}
	if validUntil.IsZero() {
		return errs.NewValueIsRequiredError("validUntil")
	}
	if !validUntil.After(validFrom) {
		return errs.NewValueIsInvalidErrorWithCause(
			"validUntil is invalid",
			fmt.Errorf("%s is not after %s", validUntil.Format(time.RFC3339), validFrom.Format(time.RFC3339)),
		)
	}
	o.validFrom = validFrom
	o.validUntil = validUntil
	return nil
}

func (o *DeliveryOrder) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	o.createdBy = createdBy
	return nil
}
