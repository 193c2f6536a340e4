package queries

import (
	"errors"

	"dotrack/internal/pkg/guard"
)

var ErrGetAllDeliveryOrdersQueryIsNotConstructed = errors.New(
	"GetAllDeliveryOrdersQuery must be created via NewGetAllDeliveryOrdersQuery constructor",
)

// GetAllDeliveryOrdersQuery retrieves every delivery order regardless of
// location. Reserved for the role_creator administrative view.
type GetAllDeliveryOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDeliveryOrdersQuery creates a parameterless query for the global
// order listing.
func NewGetAllDeliveryOrdersQuery() GetAllDeliveryOrdersQuery {
	return GetAllDeliveryOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveryOrdersQueryIsNotConstructed)
}
