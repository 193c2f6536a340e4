package commands

import (
	"errors"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var ErrDispatchDeliveryOrderCommandIsNotConstructed = errors.New(
	"DispatchDeliveryOrderCommand must be created via NewDispatchDeliveryOrderCommand constructor",
)

// DispatchDeliveryOrderCommand represents a request by the project office to
// send a received delivery order onward to the area office.
type DispatchDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actorID         kernel.UUID
	actorDepartment kernel.Department
	remarks         string

	guard guard.ConstructorGuard
}

// NewDispatchDeliveryOrderCommand creates a command to dispatch a delivery
// order to the area office.
func NewDispatchDeliveryOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorDepartment kernel.Department,
	remarks string,
) (DispatchDeliveryOrderCommand, error) {
	command := DispatchDeliveryOrderCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actorID, actorDepartment),
	); err != nil {
		return DispatchDeliveryOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDeliveryOrderCommandIsNotConstructed)
}

// OrderID returns the delivery order identifier.
func (c DispatchDeliveryOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting user reference.
func (c DispatchDeliveryOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorDepartment returns the acting user's department.
func (c DispatchDeliveryOrderCommand) ActorDepartment() kernel.Department {
	return c.actorDepartment
}

// Remarks returns the optional free-text remarks for the ledger entry.
func (c DispatchDeliveryOrderCommand) Remarks() string {
	return c.remarks
}

func (c *DispatchDeliveryOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DispatchDeliveryOrderCommand) setActor(actorID kernel.UUID, actorDepartment kernel.Department) error {
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
