package queries

import (
	"errors"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var ErrGetDepartmentQueueQueryIsNotConstructed = errors.New(
	"GetDepartmentQueueQuery must be created via NewGetDepartmentQueueQuery constructor",
)

// GetDepartmentQueueQuery retrieves the delivery orders a department works
// from. For most departments this is every order currently located there;
// paper_creator instead sees the orders its user created, since submitted
// orders immediately leave the creating department.
type GetDepartmentQueueQuery struct { //nolint:recvcheck //using for validation
	department  kernel.Department
	userID      kernel.UUID
	pendingOnly bool

	guard guard.ConstructorGuard
}

// NewGetDepartmentQueueQuery creates a query for a department's queue.
// The userID scopes the paper_creator view to the caller's own orders.
// With pendingOnly set, completed and rejected orders are excluded.
func NewGetDepartmentQueueQuery(
	department kernel.Department,
	userID kernel.UUID,
	pendingOnly bool,
) (GetDepartmentQueueQuery, error) {
	if err := department.Validate(); err != nil {
		return GetDepartmentQueueQuery{}, err
	}
	if err := userID.Validate(); err != nil {
		return GetDepartmentQueueQuery{}, err
	}

	return GetDepartmentQueueQuery{
		department:  department,
		userID:      userID,
		pendingOnly: pendingOnly,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDepartmentQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetDepartmentQueueQueryIsNotConstructed)
}

// Department returns the caller's department.
func (q GetDepartmentQueueQuery) Department() kernel.Department {
	return q.department
}

// UserID returns the caller's user reference.
func (q GetDepartmentQueueQuery) UserID() kernel.UUID {
	return q.userID
}

// PendingOnly reports whether terminal orders are excluded.
func (q GetDepartmentQueueQuery) PendingOnly() bool {
	return q.pendingOnly
}
