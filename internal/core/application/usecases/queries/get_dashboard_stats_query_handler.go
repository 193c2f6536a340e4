package queries

import (
	"context"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes dashboard counters in a single
// aggregate query over the caller's scope.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the counters query. In-progress covers every stage between
// submission and the terminal stages; pending counts non-terminal orders
// sitting at the caller's department.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	scope := `WHERE current_location = @dept`
	switch query.Department() {
	case kernel.RoleCreator:
		scope = ``
	case kernel.PaperCreator:
		scope = `WHERE created_by = @user`
	}

	var response GetDashboardStatsQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE current_stage IN (
				@atProjectOffice, @received, @dispatched, @atAreaOffice, @atRoadSale
			)) AS in_progress,
			COUNT(*) FILTER (WHERE current_stage = @completed) AS completed,
			COUNT(*) FILTER (
				WHERE current_location = @dept
				  AND current_stage NOT IN (@completed, @rejected)
			) AS pending
		FROM delivery_orders
		`+scope,
		map[string]any{
			"dept":            query.Department().String(),
			"user":            query.UserID().String(),
			"atProjectOffice": deliveryorder.AtProjectOffice.String(),
			"received":        deliveryorder.ReceivedAtProjectOffice.String(),
			"dispatched":      deliveryorder.DispatchedFromProjectOffice.String(),
			"atAreaOffice":    deliveryorder.AtAreaOffice.String(),
			"atRoadSale":      deliveryorder.AtRoadSale.String(),
			"completed":       deliveryorder.Completed.String(),
			"rejected":        deliveryorder.Rejected.String(),
		}).Row()

	if err := row.Scan(
		&response.Total,
		&response.InProgress,
		&response.Completed,
		&response.Pending,
	); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return response, nil
}
