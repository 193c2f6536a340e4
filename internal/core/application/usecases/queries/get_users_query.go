package queries

import (
	"errors"
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves all user accounts. Reserved for the role_creator
// administrative view; password hashes are never included.
type GetUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a parameterless query for the user listing.
func NewGetUsersQuery() GetUsersQuery {
	return GetUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// GetUsersQueryResponse is one user row, without credentials.
type GetUsersQueryResponse struct {
	ID         kernel.UUID
	Username   string
	Email      string
	Department string
	IsActive   bool
	CreatedAt  time.Time
}
