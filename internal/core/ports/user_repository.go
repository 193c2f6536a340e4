package ports

import (
	"context"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// Returns a duplicate-number error when the username or email is taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user aggregate by its login name.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}

// ResetTokenRepository defines the persistence contract for password reset
// tokens.
type ResetTokenRepository interface {
	// Add persists a new reset token.
	Add(ctx context.Context, token *user.ResetToken) error

	// GetUnused retrieves an unredeemed token by its opaque value.
	GetUnused(ctx context.Context, token string) (*user.ResetToken, error)

	// Update persists changes to an existing token (redemption).
	Update(ctx context.Context, token *user.ResetToken) error

	// DeleteExpired removes all tokens whose deadline has passed.
	// Returns the number of tokens removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
