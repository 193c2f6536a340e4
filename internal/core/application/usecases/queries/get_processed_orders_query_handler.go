package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProcessedOrdersQueryHandler reads the orders a department has handled
// and forwarded elsewhere.
type GetProcessedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetProcessedOrdersQueryHandler creates a handler for processed order
// queries.
func NewGetProcessedOrdersQueryHandler(db *gorm.DB) GetProcessedOrdersQueryHandler {
	return GetProcessedOrdersQueryHandler{db: db}
}

// Handle executes the processed query: the ledger must show an entry leaving
// the department, and the order must not currently sit there.
func (h GetProcessedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetProcessedOrdersQuery,
) ([]DeliveryOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryOrderColumns+deliveryOrderJoins+`
		WHERE o.current_location != ?
		  AND EXISTS (
			SELECT 1 FROM workflow_history wh
			WHERE wh.do_id = o.id AND wh.from_department = ?
		  )
		ORDER BY o.created_at DESC
	`, query.Department().String(), query.Department().String()).Rows()
	if err != nil {
		return nil, err
	}

	return collectDeliveryOrderRows(rows)
}
