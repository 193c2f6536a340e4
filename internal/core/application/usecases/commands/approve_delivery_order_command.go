package commands

import (
	"errors"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var ErrApproveDeliveryOrderCommandIsNotConstructed = errors.New(
	"ApproveDeliveryOrderCommand must be created via NewApproveDeliveryOrderCommand constructor",
)

// ApproveDeliveryOrderCommand represents the generic forward step: the acting
// department approves the delivery order it holds and sends it to the next
// department in the pipeline, or completes it at road sale.
type ApproveDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actorID         kernel.UUID
	actorDepartment kernel.Department
	remarks         string

	guard guard.ConstructorGuard
}

// NewApproveDeliveryOrderCommand creates a command to approve and forward a
// delivery order.
func NewApproveDeliveryOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorDepartment kernel.Department,
	remarks string,
) (ApproveDeliveryOrderCommand, error) {
	command := ApproveDeliveryOrderCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actorID, actorDepartment),
	); err != nil {
		return ApproveDeliveryOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveDeliveryOrderCommandIsNotConstructed)
}

// OrderID returns the delivery order identifier.
func (c ApproveDeliveryOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting user reference.
func (c ApproveDeliveryOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorDepartment returns the acting user's department.
func (c ApproveDeliveryOrderCommand) ActorDepartment() kernel.Department {
	return c.actorDepartment
}

// Remarks returns the optional free-text remarks for the ledger entry.
func (c ApproveDeliveryOrderCommand) Remarks() string {
	return c.remarks
}

func (c *ApproveDeliveryOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApproveDeliveryOrderCommand) setActor(actorID kernel.UUID, actorDepartment kernel.Department) error {
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
