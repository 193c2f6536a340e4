package commands

import (
	"context"

	"dotrack/internal/core/domain/model/party"
)

// CreatePartyCommandHandler handles counterparty registration.
type CreatePartyCommandHandler struct {
	uowFactory PartyUoWFactory
	clock      Clock
}

// NewCreatePartyCommandHandler creates a handler for party registration
// operations.
func NewCreatePartyCommandHandler(uowFactory PartyUoWFactory, clock Clock) CreatePartyCommandHandler {
	return CreatePartyCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle persists a new party. Duplicate party numbers surface as
// errs.ErrDuplicateNumber from the repository.
func (h CreatePartyCommandHandler) Handle(ctx context.Context, command CreatePartyCommand) error {
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

	aggregate, err := party.NewParty(command.PartyID(), command.Number(), command.Name(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.PartyRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
