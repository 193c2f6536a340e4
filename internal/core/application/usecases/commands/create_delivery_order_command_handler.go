package commands

import (
	"context"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/history"
	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/ports"
)

// CreateDeliveryOrderCommandHandler handles the business logic for delivery
// order creation. A new order is persisted in the Created stage and then
// immediately submitted to the project office, all within a single
// transaction, so the ledger always starts with the created and submitted
// pair.
type CreateDeliveryOrderCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      Clock
}

// NewCreateDeliveryOrderCommandHandler creates a handler for delivery order
// creation operations.
func NewCreateDeliveryOrderCommandHandler(uowFactory WorkflowUoWFactory, clock Clock) CreateDeliveryOrderCommandHandler {
	return CreateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the creation command and returns the created aggregate,
// including the number that was allocated when the command carried none.
//
// Duplicate numbers surface as errs.ErrDuplicateNumber from the repository;
// the transaction rolls back and no ledger entries remain.
func (h CreateDeliveryOrderCommandHandler) Handle(
	ctx context.Context,
	command CreateDeliveryOrderCommand,
) (*deliveryorder.DeliveryOrder, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	doRepo := uow.DeliveryOrderRepository()
	ledger := uow.HistoryRepository()

	number, err := h.resolveNumber(ctx, command, doRepo)
	if err != nil {
		return nil, err
	}

	createdAt := h.clock.Now()
	do, err := deliveryorder.NewDeliveryOrder(
		command.OrderID(),
		number,
		command.PartyID(),
		command.AuthorizedPerson(),
		command.ValidFrom(),
		command.ValidUntil(),
		command.Notes(),
		command.ActorID(),
		createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err = doRepo.Add(ctx, do); err != nil {
		return nil, err
	}

	createdEntry, err := history.NewEntry(
		kernel.NewUUID(), do.ID(), nil, do.Location(),
		deliveryorder.ActionCreated, command.ActorID(), "", createdAt)
	if err != nil {
		return nil, err
	}
	if err = ledger.Append(ctx, createdEntry); err != nil {
		return nil, err
	}

	from := do.Location()
	observed := do.Stage()
	if err = do.SubmitToProjectOffice(command.ActorDepartment()); err != nil {
		return nil, err
	}

	if err = doRepo.Update(ctx, do, observed); err != nil {
		return nil, err
	}

	submittedEntry, err := history.NewEntry(
		kernel.NewUUID(), do.ID(), &from, do.Location(),
		deliveryorder.ActionSubmittedToProjectOffice, command.ActorID(), "", h.clock.Now())
	if err != nil {
		return nil, err
	}
	if err = ledger.Append(ctx, submittedEntry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return do, nil
}

// resolveNumber parses the explicit number from the command, or allocates the
// next free number for the current year within the open transaction.
func (h CreateDeliveryOrderCommandHandler) resolveNumber(
	ctx context.Context,
	command CreateDeliveryOrderCommand,
	doRepo ports.DeliveryOrderRepository,
) (deliveryorder.Number, error) {
	if command.Number() != "" {
		return deliveryorder.ParseNumber(command.Number())
	}

	year := h.clock.Now().Year()
	sequence, err := doRepo.NextSequence(ctx, year)
	if err != nil {
		return deliveryorder.Number{}, err
	}

	return deliveryorder.NewNumber(year, sequence)
}
