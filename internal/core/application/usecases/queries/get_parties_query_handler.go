package queries

import (
	"context"

	"dotrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPartiesQueryHandler reads the party listing ordered by name.
type GetPartiesQueryHandler struct {
	db *gorm.DB
}

// NewGetPartiesQueryHandler creates a handler for party listing queries.
func NewGetPartiesQueryHandler(db *gorm.DB) GetPartiesQueryHandler {
	return GetPartiesQueryHandler{db: db}
}

// Handle executes the party listing query.
func (h GetPartiesQueryHandler) Handle(
	ctx context.Context,
	query GetPartiesQuery,
) ([]GetPartiesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, party_number, party_name, created_at
		FROM parties
		ORDER BY party_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parties := make([]GetPartiesQueryResponse, 0)
	for rows.Next() {
		var resp GetPartiesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Number, &resp.Name, &resp.CreatedAt); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		parties = append(parties, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parties, nil
}
