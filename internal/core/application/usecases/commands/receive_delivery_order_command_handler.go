package commands

import (
	"context"

	"dotrack/internal/core/domain/model/deliveryorder"
)

// ReceiveDeliveryOrderCommandHandler handles the project office's
// acknowledgement of a submitted delivery order.
type ReceiveDeliveryOrderCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      Clock
}

// NewReceiveDeliveryOrderCommandHandler creates a handler for receive
// operations.
func NewReceiveDeliveryOrderCommandHandler(uowFactory WorkflowUoWFactory, clock Clock) ReceiveDeliveryOrderCommandHandler {
	return ReceiveDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle advances the order to received_at_project_office and appends the
// received ledger entry in one transaction.
func (h ReceiveDeliveryOrderCommandHandler) Handle(ctx context.Context, command ReceiveDeliveryOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := applyTransition(
		ctx, uow, command.OrderID(), command.ActorID(), command.Remarks(), h.clock.Now(),
		func(do *deliveryorder.DeliveryOrder) (deliveryorder.Action, error) {
			if err := do.Receive(command.ActorDepartment()); err != nil {
				return "", err
			}
			return deliveryorder.ActionReceived, nil
		})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
