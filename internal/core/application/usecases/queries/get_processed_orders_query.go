package queries

import (
	"errors"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var ErrGetProcessedOrdersQueryIsNotConstructed = errors.New(
	"GetProcessedOrdersQuery must be created via NewGetProcessedOrdersQuery constructor",
)

// GetProcessedOrdersQuery retrieves the delivery orders a department has
// already handled and passed on: orders with at least one ledger entry
// leaving the department that are no longer located there.
type GetProcessedOrdersQuery struct { //nolint:recvcheck //using for validation
	department kernel.Department

	guard guard.ConstructorGuard
}

// NewGetProcessedOrdersQuery creates a query for a department's processed
// orders.
func NewGetProcessedOrdersQuery(department kernel.Department) (GetProcessedOrdersQuery, error) {
	if err := department.Validate(); err != nil {
		return GetProcessedOrdersQuery{}, err
	}

	return GetProcessedOrdersQuery{
		department: department,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProcessedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessedOrdersQueryIsNotConstructed)
}

// Department returns the caller's department.
func (q GetProcessedOrdersQuery) Department() kernel.Department {
	return q.department
}
