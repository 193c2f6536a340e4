package queries

import (
	"errors"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the caller's dashboard counters. The
// scope follows the caller's department: role_creator sees global numbers,
// every other department sees its own queue (paper_creator scoped by
// creator).
type GetDashboardStatsQuery struct { //nolint:recvcheck //using for validation
	department kernel.Department
	userID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for dashboard counters.
func NewGetDashboardStatsQuery(department kernel.Department, userID kernel.UUID) (GetDashboardStatsQuery, error) {
	if err := department.Validate(); err != nil {
		return GetDashboardStatsQuery{}, err
	}
	if err := userID.Validate(); err != nil {
		return GetDashboardStatsQuery{}, err
	}

	return GetDashboardStatsQuery{
		department: department,
		userID:     userID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// Department returns the caller's department.
func (q GetDashboardStatsQuery) Department() kernel.Department {
	return q.department
}

// UserID returns the caller's user reference.
func (q GetDashboardStatsQuery) UserID() kernel.UUID {
	return q.userID
}

// GetDashboardStatsQueryResponse carries the dashboard counters.
type GetDashboardStatsQueryResponse struct {
	Total      int64
	InProgress int64
	Completed  int64
	Pending    int64
}
