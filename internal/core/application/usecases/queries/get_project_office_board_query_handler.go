package queries

import (
	"context"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetProjectOfficeBoardQueryHandler reads the project office board columns.
// The incoming and received columns are simple stage filters; forwarded is
// ledger-based, so orders remain visible there after later departments move
// them on.
type GetProjectOfficeBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetProjectOfficeBoardQueryHandler creates a handler for project office
// board queries.
func NewGetProjectOfficeBoardQueryHandler(db *gorm.DB) GetProjectOfficeBoardQueryHandler {
	return GetProjectOfficeBoardQueryHandler{db: db}
}

// Handle executes the board query for the requested column.
func (h GetProjectOfficeBoardQueryHandler) Handle(
	ctx context.Context,
	query GetProjectOfficeBoardQuery,
) ([]DeliveryOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sql string
	var args []any

	switch query.View() {
	case BoardViewIncoming:
		sql = `SELECT ` + deliveryOrderColumns + deliveryOrderJoins + `
		WHERE o.current_stage = ?
		ORDER BY o.created_at DESC`
		args = []any{deliveryorder.AtProjectOffice.String()}
	case BoardViewReceived:
		sql = `SELECT ` + deliveryOrderColumns + deliveryOrderJoins + `
		WHERE o.current_stage = ?
		ORDER BY o.created_at DESC`
		args = []any{deliveryorder.ReceivedAtProjectOffice.String()}
	case BoardViewForwarded:
		sql = `SELECT ` + deliveryOrderColumns + deliveryOrderJoins + `
		WHERE EXISTS (
			SELECT 1 FROM workflow_history wh
			WHERE wh.do_id = o.id
			  AND wh.from_department = ?
			  AND wh.action = ?
		)
		ORDER BY o.created_at DESC`
		args = []any{kernel.ProjectOffice.String(), deliveryorder.ActionDispatchedToAreaOffice.String()}
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}

	return collectDeliveryOrderRows(rows)
}
