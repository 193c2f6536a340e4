package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// likeEscaper neutralizes LIKE metacharacters in user-supplied search terms,
// so a term of "%" matches a literal percent sign instead of every row.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchDeliveryOrdersQueryHandler searches delivery orders by number
// fragment for the public tracking page.
type SearchDeliveryOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchDeliveryOrdersQueryHandler creates a handler for number searches.
func NewSearchDeliveryOrdersQueryHandler(db *gorm.DB) SearchDeliveryOrdersQueryHandler {
	return SearchDeliveryOrdersQueryHandler{db: db}
}

// Handle executes a case-insensitive substring match on the order number.
func (h SearchDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchDeliveryOrdersQuery,
) ([]DeliveryOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryOrderColumns+deliveryOrderJoins+`
		WHERE o.do_number ILIKE ?
		ORDER BY o.created_at DESC
	`, "%"+likeEscaper.Replace(query.Term())+"%").Rows()
	if err != nil {
		return nil, err
	}

	return collectDeliveryOrderRows(rows)
}
