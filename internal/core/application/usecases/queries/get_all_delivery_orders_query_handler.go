package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllDeliveryOrdersQueryHandler reads the global order listing, newest
// first.
type GetAllDeliveryOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDeliveryOrdersQueryHandler creates a handler for the global
// listing query.
func NewGetAllDeliveryOrdersQueryHandler(db *gorm.DB) GetAllDeliveryOrdersQueryHandler {
	return GetAllDeliveryOrdersQueryHandler{db: db}
}

// Handle executes the global listing query.
func (h GetAllDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllDeliveryOrdersQuery,
) ([]DeliveryOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + deliveryOrderColumns + deliveryOrderJoins + `
		ORDER BY o.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}

	return collectDeliveryOrderRows(rows)
}
