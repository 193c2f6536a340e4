package commands

import (
	"context"

	"dotrack/internal/core/domain/model/deliveryorder"
)

// ApproveDeliveryOrderCommandHandler handles the generic forward step.
// The next stage is determined by the acting department's position in the
// pipeline: project_office forwards to area_office, area_office to road_sale,
// and road_sale completes the order.
type ApproveDeliveryOrderCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      Clock
}

// NewApproveDeliveryOrderCommandHandler creates a handler for approve
// operations.
func NewApproveDeliveryOrderCommandHandler(uowFactory WorkflowUoWFactory, clock Clock) ApproveDeliveryOrderCommandHandler {
	return ApproveDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle advances the order one step and appends the matching ledger entry
// (approved_and_forwarded, or completed for the final step) in one
// transaction.
func (h ApproveDeliveryOrderCommandHandler) Handle(ctx context.Context, command ApproveDeliveryOrderCommand) error {
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
			return do.Approve(command.ActorDepartment())
		})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
