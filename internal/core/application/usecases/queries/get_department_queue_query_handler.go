package queries

import (
	"context"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetDepartmentQueueQueryHandler reads a department's working queue from the
// database, newest first.
type GetDepartmentQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetDepartmentQueueQueryHandler creates a handler for department queue
// queries.
func NewGetDepartmentQueueQueryHandler(db *gorm.DB) GetDepartmentQueueQueryHandler {
	return GetDepartmentQueueQueryHandler{db: db}
}

// Handle executes the queue query. paper_creator is scoped by creator
// instead of location; all other departments see the orders they hold.
func (h GetDepartmentQueueQueryHandler) Handle(
	ctx context.Context,
	query GetDepartmentQueueQuery,
) ([]DeliveryOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := `WHERE o.current_location = ?`
	arg := any(query.Department().String())
	if query.Department() == kernel.PaperCreator {
		where = `WHERE o.created_by = ?`
		arg = query.UserID().String()
	}

	sql := `SELECT ` + deliveryOrderColumns + deliveryOrderJoins + `
	` + where
	args := []any{arg}

	if query.PendingOnly() {
		sql += ` AND o.current_stage NOT IN (?, ?)`
		args = append(args, deliveryorder.Completed.String(), deliveryorder.Rejected.String())
	}

	sql += `
	ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}

	return collectDeliveryOrderRows(rows)
}
