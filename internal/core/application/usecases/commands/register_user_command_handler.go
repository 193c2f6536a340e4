package commands

import (
	"context"

	"dotrack/internal/core/domain/model/user"
)

// RegisterUserCommandHandler handles workflow actor registration.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	clock      Clock
}

// NewRegisterUserCommandHandler creates a handler for user registration
// operations.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, clock Clock) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle persists a new active user. Duplicate usernames or emails surface
// as errs.ErrDuplicateNumber from the repository.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) error {
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

	aggregate, err := user.NewUser(
		command.UserID(),
		command.Username(),
		command.Email(),
		command.PasswordHash(),
		command.Department(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
