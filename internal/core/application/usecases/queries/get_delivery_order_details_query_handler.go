package queries

import (
	"context"
	"database/sql"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryOrderDetailsQueryHandler reads one order and its ledger.
type GetDeliveryOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryOrderDetailsQueryHandler creates a handler for order detail
// queries.
func NewGetDeliveryOrderDetailsQueryHandler(db *gorm.DB) GetDeliveryOrderDetailsQueryHandler {
	return GetDeliveryOrderDetailsQueryHandler{db: db}
}

// Handle resolves the order by exact number and loads its ledger ordered by
// performedAt ascending. Returns errs.ErrObjectNotFound when the number
// matches nothing.
func (h GetDeliveryOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryOrderDetailsQuery,
) (GetDeliveryOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryOrderDetailsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryOrderColumns+deliveryOrderJoins+`
		WHERE o.do_number = ?
	`, query.Number()).Rows()
	if err != nil {
		return GetDeliveryOrderDetailsQueryResponse{}, err
	}

	orders, err := collectDeliveryOrderRows(rows)
	if err != nil {
		return GetDeliveryOrderDetailsQueryResponse{}, err
	}
	if len(orders) == 0 {
		return GetDeliveryOrderDetailsQueryResponse{},
			errs.NewObjectNotFoundError("doNumber", query.Number())
	}

	response := GetDeliveryOrderDetailsQueryResponse{Order: orders[0]}
	if response.History, err = h.loadHistory(ctx, orders[0].ID); err != nil {
		return GetDeliveryOrderDetailsQueryResponse{}, err
	}

	return response, nil
}

func (h GetDeliveryOrderDetailsQueryHandler) loadHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]HistoryEntryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			wh.id,
			wh.from_department,
			wh.to_department,
			wh.action,
			wh.performed_by,
			u.username,
			wh.remarks,
			wh.performed_at
		FROM workflow_history wh
		JOIN users u ON u.id = wh.performed_by
		WHERE wh.do_id = ?
		ORDER BY wh.performed_at ASC, wh.seq ASC
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntryResponse, 0)
	for rows.Next() {
		var entry HistoryEntryResponse
		var id, performedBy uuid.UUID
		var fromDepartment, remarks sql.NullString

		if err = rows.Scan(
			&id,
			&fromDepartment,
			&entry.ToDepartment,
			&entry.Action,
			&performedBy,
			&entry.PerformedByName,
			&remarks,
			&entry.PerformedAt,
		); err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.PerformedBy, err = kernel.UUIDFromBytes(performedBy[:]); err != nil {
			return nil, err
		}
		entry.FromDepartment = fromDepartment.String
		entry.Remarks = remarks.String

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
