package queries

import (
	"errors"
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var ErrGetPartiesQueryIsNotConstructed = errors.New(
	"GetPartiesQuery must be created via NewGetPartiesQuery constructor",
)

// GetPartiesQuery retrieves all registered counterparties.
type GetPartiesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPartiesQuery creates a parameterless query for the party listing.
func NewGetPartiesQuery() GetPartiesQuery {
	return GetPartiesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPartiesQuery) Validate() error {
	return q.guard.Validate(ErrGetPartiesQueryIsNotConstructed)
}

// GetPartiesQueryResponse is one party row.
type GetPartiesQueryResponse struct {
	ID        kernel.UUID
	Number    string
	Name      string
	CreatedAt time.Time
}
