package ports

import (
	"context"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/kernel"
)

// DeliveryOrderRepository defines the persistence contract for delivery order
// aggregates. Writes of existing aggregates are conditional on the stage the
// caller observed, so concurrent transitions of the same order surface as
// storage conflicts instead of silently overwriting each other.
type DeliveryOrderRepository interface {
	// Add persists a new delivery order aggregate to storage.
	// Returns a duplicate-number error when the number is already taken.
	Add(ctx context.Context, aggregate *deliveryorder.DeliveryOrder) error

	// Update persists changes to an existing delivery order aggregate.
	// The write only succeeds if the stored stage still equals observedStage;
	// otherwise a storage conflict error is returned and nothing changes.
	Update(ctx context.Context, aggregate *deliveryorder.DeliveryOrder, observedStage deliveryorder.Stage) error

	// Get retrieves a delivery order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliveryorder.DeliveryOrder, error)

	// GetByNumber retrieves a delivery order aggregate by its business number.
	GetByNumber(ctx context.Context, number deliveryorder.Number) (*deliveryorder.DeliveryOrder, error)

	// NextSequence returns the next free sequence for the given year,
	// computed within the current transaction so concurrent allocations
	// of the same number collide on the unique index rather than both
	// succeeding.
	NextSequence(ctx context.Context, year int) (int, error)
}
