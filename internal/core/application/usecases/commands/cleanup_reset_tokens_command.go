package commands

import (
	"errors"

	"dotrack/internal/pkg/guard"
)

var ErrCleanupResetTokensCommandIsNotConstructed = errors.New(
	"CleanupResetTokensCommand must be created via NewCleanupResetTokensCommand constructor",
)

// CleanupResetTokensCommand represents a request to sweep expired password
// reset tokens from storage. It carries no parameters; the cutoff is the
// storage clock.
type CleanupResetTokensCommand struct {
	guard guard.ConstructorGuard
}

// NewCleanupResetTokensCommand creates a command to sweep expired tokens.
func NewCleanupResetTokensCommand() CleanupResetTokensCommand {
	return CleanupResetTokensCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CleanupResetTokensCommand) Validate() error {
	return c.guard.Validate(ErrCleanupResetTokensCommandIsNotConstructed)
}
