package commands

import (
	"context"

	"dotrack/internal/core/domain/model/deliveryorder"
)

// RejectDeliveryOrderCommandHandler handles rejections. The order freezes in
// the rejected stage at the department that rejected it and accepts no
// further transitions.
type RejectDeliveryOrderCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      Clock
}

// NewRejectDeliveryOrderCommandHandler creates a handler for reject
// operations.
func NewRejectDeliveryOrderCommandHandler(uowFactory WorkflowUoWFactory, clock Clock) RejectDeliveryOrderCommandHandler {
	return RejectDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle moves the order to rejected and appends the rejected ledger entry in
// one transaction. The entry's target department is the rejecting department,
// which is where the order remains frozen.
func (h RejectDeliveryOrderCommandHandler) Handle(ctx context.Context, command RejectDeliveryOrderCommand) error {
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
			if err := do.Reject(command.ActorDepartment()); err != nil {
				return "", err
			}
			return deliveryorder.ActionRejected, nil
		})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
