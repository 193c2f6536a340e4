package commands

import (
	"errors"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var ErrSetUserStatusCommandIsNotConstructed = errors.New(
	"SetUserStatusCommand must be created via NewSetUserStatusCommand constructor",
)

// SetUserStatusCommand represents a request to activate or deactivate a user
// account.
type SetUserStatusCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	isActive bool

	guard guard.ConstructorGuard
}

// NewSetUserStatusCommand creates a command to change an account's active
// flag.
func NewSetUserStatusCommand(userID kernel.UUID, isActive bool) (SetUserStatusCommand, error) {
	command := SetUserStatusCommand{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return SetUserStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetUserStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetUserStatusCommandIsNotConstructed)
}

// UserID returns the account identifier.
func (c SetUserStatusCommand) UserID() kernel.UUID {
	return c.userID
}

// IsActive returns the desired active flag.
func (c SetUserStatusCommand) IsActive() bool {
	return c.isActive
}

func (c *SetUserStatusCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
