package commands

import (
	"errors"
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var (
	ErrCreateDeliveryOrderCommandIsNotConstructed = errors.New(
		"CreateDeliveryOrderCommand must be created via NewCreateDeliveryOrderCommand constructor",
	)
	ErrAuthorizedPersonIsRequired = errors.New("authorized person is required")
	ErrValidityWindowIsRequired   = errors.New("validity window is required")
)

// CreateDeliveryOrderCommand represents a request to create a new delivery
// order and immediately submit it to the project office. The number may be
// left empty, in which case the next free number for the current year is
// allocated inside the creating transaction.
type CreateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	number           string
	partyID          kernel.UUID
	authorizedPerson string
	validFrom        time.Time
	validUntil       time.Time
	notes            string
	actorID          kernel.UUID
	actorDepartment  kernel.Department

	guard guard.ConstructorGuard
}

// NewCreateDeliveryOrderCommand creates a command to register a new delivery
// order. The number is optional; all other references must be valid.
func NewCreateDeliveryOrderCommand(
	orderID kernel.UUID,
	number string,
	partyID kernel.UUID,
	authorizedPerson string,
	validFrom time.Time,
	validUntil time.Time,
	notes string,
	actorID kernel.UUID,
	actorDepartment kernel.Department,
) (CreateDeliveryOrderCommand, error) {
	command := CreateDeliveryOrderCommand{
		number: number,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPartyID(partyID),
		command.setAuthorizedPerson(authorizedPerson),
		command.setValidityWindow(validFrom, validUntil),
		command.setActor(actorID, actorDepartment),
	); err != nil {
		return CreateDeliveryOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new delivery order.
func (c CreateDeliveryOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the explicit delivery order number, or empty when the
// handler should allocate one.
func (c CreateDeliveryOrderCommand) Number() string {
	return c.number
}

// PartyID returns the counterparty reference.
func (c CreateDeliveryOrderCommand) PartyID() kernel.UUID {
	return c.partyID
}

// AuthorizedPerson returns the authorized person free text.
func (c CreateDeliveryOrderCommand) AuthorizedPerson() string {
	return c.authorizedPerson
}

// ValidFrom returns the start of the validity window.
func (c CreateDeliveryOrderCommand) ValidFrom() time.Time {
	return c.validFrom
}

// ValidUntil returns the end of the validity window.
func (c CreateDeliveryOrderCommand) ValidUntil() time.Time {
	return c.validUntil
}

// Notes returns the optional free-text notes.
func (c CreateDeliveryOrderCommand) Notes() string {
	return c.notes
}

// ActorID returns the acting user reference.
func (c CreateDeliveryOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorDepartment returns the acting user's department.
func (c CreateDeliveryOrderCommand) ActorDepartment() kernel.Department {
	return c.actorDepartment
}

func (c *CreateDeliveryOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryOrderCommand) setPartyID(partyID kernel.UUID) error {
	if err := partyID.Validate(); err != nil {
		return err
	}

	c.partyID = partyID
	return nil
}

func (c *CreateDeliveryOrderCommand) setAuthorizedPerson(authorizedPerson string) error {
	if authorizedPerson == "" {
		return ErrAuthorizedPersonIsRequired
	}

	c.authorizedPerson = authorizedPerson
	return nil
}

func (c *CreateDeliveryOrderCommand) setValidityWindow(validFrom, validUntil time.Time) error {
	if validFrom.IsZero() || validUntil.IsZero() {
		return ErrValidityWindowIsRequired
	}

	c.validFrom = validFrom
	c.validUntil = validUntil
	return nil
}

func (c *CreateDeliveryOrderCommand) setActor(actorID kernel.UUID, actorDepartment kernel.Department) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := actorDepartment.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorDepartment = actorDepartment
	return nil
}
