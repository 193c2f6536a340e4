package commands

import (
	"context"
	"time"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/history"
	"dotrack/internal/core/domain/model/kernel"
)

// applyTransition runs the shared write path for workflow transitions: load
// the aggregate, apply the mutation, write it back conditioned on the stage
// that was observed, and append the matching ledger entry. The caller owns
// the transaction.
//
// The mutate callback applies the domain transition and returns the action
// tag to record. Concurrent transitions of the same order lose the
// conditional update and surface as errs.ErrStorageConflict.
func applyTransition(
	ctx context.Context,
	uow WorkflowUoW,
	orderID kernel.UUID,
	actorID kernel.UUID,
	remarks string,
	performedAt time.Time,
	mutate func(do *deliveryorder.DeliveryOrder) (deliveryorder.Action, error),
) (*deliveryorder.DeliveryOrder, error) {
	doRepo := uow.DeliveryOrderRepository()
	ledger := uow.HistoryRepository()

	do, err := doRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	from := do.Location()
	observed := do.Stage()

	action, err := mutate(do)
	if err != nil {
		return nil, err
	}

	if err = doRepo.Update(ctx, do, observed); err != nil {
		return nil, err
	}

	entry, err := history.NewEntry(
		kernel.NewUUID(), do.ID(), &from, do.Location(),
		action, actorID, remarks, performedAt)
	if err != nil {
		return nil, err
	}
	if err = ledger.Append(ctx, entry); err != nil {
		return nil, err
	}

	return do, nil
}
