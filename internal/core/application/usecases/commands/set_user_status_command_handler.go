package commands

import (
	"context"
)

// SetUserStatusCommandHandler handles account activation and deactivation.
type SetUserStatusCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSetUserStatusCommandHandler creates a handler for status change
// operations.
func NewSetUserStatusCommandHandler(uowFactory UserUoWFactory) SetUserStatusCommandHandler {
	return SetUserStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the account, applies the desired flag, and writes it back.
// Missing accounts surface as errs.ErrObjectNotFound.
func (h SetUserStatusCommandHandler) Handle(ctx context.Context, command SetUserStatusCommand) error {
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

	userRepo := uow.UserRepository()

	aggregate, err := userRepo.Get(ctx, command.UserID())
	if err != nil {
		return err
	}

	if command.IsActive() {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
