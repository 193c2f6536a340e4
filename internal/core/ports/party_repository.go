package ports

import (
	"context"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/domain/model/party"
)

// PartyRepository defines the persistence contract for party aggregates.
type PartyRepository interface {
	// Add persists a new party aggregate to storage.
	// Returns a duplicate-number error when the party number is taken.
	Add(ctx context.Context, aggregate *party.Party) error

	// Get retrieves a party aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*party.Party, error)

	// GetAll retrieves all parties ordered by name.
	GetAll(ctx context.Context) ([]*party.Party, error)
}
