package queries

import (
	"errors"

	"dotrack/internal/pkg/guard"
)

var (
	ErrSearchDeliveryOrdersQueryIsNotConstructed = errors.New(
		"SearchDeliveryOrdersQuery must be created via NewSearchDeliveryOrdersQuery constructor",
	)
	ErrSearchTermIsRequired = errors.New("search term is required")
)

// SearchDeliveryOrdersQuery retrieves delivery orders whose number contains
// the given term, case-insensitively. Used by the public tracking page.
type SearchDeliveryOrdersQuery struct { //nolint:recvcheck //using for validation
	term string

	guard guard.ConstructorGuard
}

// NewSearchDeliveryOrdersQuery creates a query to search by number fragment.
func NewSearchDeliveryOrdersQuery(term string) (SearchDeliveryOrdersQuery, error) {
	if term == "" {
		return SearchDeliveryOrdersQuery{}, ErrSearchTermIsRequired
	}

	return SearchDeliveryOrdersQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchDeliveryOrdersQueryIsNotConstructed)
}

// Term returns the number fragment to search for.
func (q SearchDeliveryOrdersQuery) Term() string {
	return q.term
}
