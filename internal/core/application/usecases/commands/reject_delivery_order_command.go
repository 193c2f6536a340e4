package commands

import (
	"errors"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var ErrRejectDeliveryOrderCommandIsNotConstructed = errors.New(
	"RejectDeliveryOrderCommand must be created via NewRejectDeliveryOrderCommand constructor",
)

// RejectDeliveryOrderCommand represents a request to reject a delivery order
// at the department currently holding it.
type RejectDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actorID         kernel.UUID
	actorDepartment kernel.Department
	remarks         string

	guard guard.ConstructorGuard
}

// NewRejectDeliveryOrderCommand creates a command to reject a delivery order.
func NewRejectDeliveryOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorDepartment kernel.Department,
	remarks string,
) (RejectDeliveryOrderCommand, error) {
	command := RejectDeliveryOrderCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actorID, actorDepartment),
	); err != nil {
		return RejectDeliveryOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectDeliveryOrderCommandIsNotConstructed)
}

// OrderID returns the delivery order identifier.
func (c RejectDeliveryOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting user reference.
func (c RejectDeliveryOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorDepartment returns the acting user's department.
func (c RejectDeliveryOrderCommand) ActorDepartment() kernel.Department {
	return c.actorDepartment
}

// Remarks returns the optional free-text remarks for the ledger entry.
func (c RejectDeliveryOrderCommand) Remarks() string {
	return c.remarks
}

func (c *RejectDeliveryOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectDeliveryOrderCommand) setActor(actorID kernel.UUID, actorDepartment kernel.Department) error {
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
