package commands

import (
	"context"

	"dotrack/internal/core/domain/model/deliveryorder"
)

// DispatchDeliveryOrderCommandHandler handles the project office's dispatch
// of a received delivery order to the area office.
type DispatchDeliveryOrderCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      Clock
}

// NewDispatchDeliveryOrderCommandHandler creates a handler for dispatch
// operations.
func NewDispatchDeliveryOrderCommandHandler(uowFactory WorkflowUoWFactory, clock Clock) DispatchDeliveryOrderCommandHandler {
	return DispatchDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle advances the order to at_area_office and appends the dispatched
// ledger entry in one transaction. Orders that were never received cannot be
// dispatched.
func (h DispatchDeliveryOrderCommandHandler) Handle(ctx context.Context, command DispatchDeliveryOrderCommand) error {
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
			if err := do.Dispatch(command.ActorDepartment()); err != nil {
				return "", err
			}
			return deliveryorder.ActionDispatchedToAreaOffice, nil
		})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
