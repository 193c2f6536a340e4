package queries

import (
	"errors"
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var (
	ErrGetDeliveryOrderDetailsQueryIsNotConstructed = errors.New(
		"GetDeliveryOrderDetailsQuery must be created via NewGetDeliveryOrderDetailsQuery constructor",
	)
	ErrNumberIsRequired = errors.New("delivery order number is required")
)

// GetDeliveryOrderDetailsQuery retrieves one delivery order by its exact
// number, together with its full workflow ledger in chronological order.
type GetDeliveryOrderDetailsQuery struct { //nolint:recvcheck //using for validation
	number string

	guard guard.ConstructorGuard
}

// NewGetDeliveryOrderDetailsQuery creates a query for a single order's
// details and ledger.
func NewGetDeliveryOrderDetailsQuery(number string) (GetDeliveryOrderDetailsQuery, error) {
	if number == "" {
		return GetDeliveryOrderDetailsQuery{}, ErrNumberIsRequired
	}

	return GetDeliveryOrderDetailsQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrderDetailsQueryIsNotConstructed)
}

// Number returns the exact order number to look up.
func (q GetDeliveryOrderDetailsQuery) Number() string {
	return q.number
}

// HistoryEntryResponse is one ledger row in a details response.
type HistoryEntryResponse struct {
	ID              kernel.UUID
	FromDepartment  string
	ToDepartment    string
	Action          string
	PerformedBy     kernel.UUID
	PerformedByName string
	Remarks         string
	PerformedAt     time.Time
}

// GetDeliveryOrderDetailsQueryResponse is an order with its ordered ledger.
type GetDeliveryOrderDetailsQueryResponse struct {
	Order   DeliveryOrderResponse
	History []HistoryEntryResponse
}
