package ports

import (
	"context"

	"dotrack/internal/core/domain/model/history"
	"dotrack/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for the append-only
// workflow ledger. Entries are never updated or deleted.
type HistoryRepository interface {
	// Append persists a new ledger entry. Entries are written in the same
	// transaction as the delivery order mutation they describe.
	Append(ctx context.Context, entry *history.Entry) error

	// GetByDeliveryOrder retrieves all ledger entries for a delivery order,
	// ordered by performedAt ascending.
	GetByDeliveryOrder(ctx context.Context, deliveryOrderID kernel.UUID) ([]*history.Entry, error)
}
