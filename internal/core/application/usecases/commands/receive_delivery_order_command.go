package commands

import (
	"errors"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var ErrReceiveDeliveryOrderCommandIsNotConstructed = errors.New(
	"ReceiveDeliveryOrderCommand must be created via NewReceiveDeliveryOrderCommand constructor",
)

// ReceiveDeliveryOrderCommand represents a request by the project office to
// acknowledge a delivery order that was submitted to it.
type ReceiveDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actorID         kernel.UUID
	actorDepartment kernel.Department
	remarks         string

	guard guard.ConstructorGuard
}

// NewReceiveDeliveryOrderCommand creates a command to acknowledge a delivery
// order at the project office.
func NewReceiveDeliveryOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorDepartment kernel.Department,
	remarks string,
) (ReceiveDeliveryOrderCommand, error) {
	command := ReceiveDeliveryOrderCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actorID, actorDepartment),
	); err != nil {
		return ReceiveDeliveryOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrReceiveDeliveryOrderCommandIsNotConstructed)
}

// OrderID returns the delivery order identifier.
func (c ReceiveDeliveryOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting user reference.
func (c ReceiveDeliveryOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorDepartment returns the acting user's department.
func (c ReceiveDeliveryOrderCommand) ActorDepartment() kernel.Department {
	return c.actorDepartment
}

// Remarks returns the optional free-text remarks for the ledger entry.
func (c ReceiveDeliveryOrderCommand) Remarks() string {
	return c.remarks
}

func (c *ReceiveDeliveryOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReceiveDeliveryOrderCommand) setActor(actorID kernel.UUID, actorDepartment kernel.Department) error {
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
