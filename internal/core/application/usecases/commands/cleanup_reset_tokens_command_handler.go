package commands

import (
	"context"
)

// CleanupResetTokensCommandHandler sweeps expired password reset tokens.
// Invoked periodically by the background job scheduler.
type CleanupResetTokensCommandHandler struct {
	uowFactory TokenUoWFactory
}

// NewCleanupResetTokensCommandHandler creates a handler for token sweep
// operations.
func NewCleanupResetTokensCommandHandler(uowFactory TokenUoWFactory) CleanupResetTokensCommandHandler {
	return CleanupResetTokensCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes all expired tokens and returns how many were removed.
func (h CleanupResetTokensCommandHandler) Handle(ctx context.Context, command CleanupResetTokensCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.ResetTokenRepository().DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
