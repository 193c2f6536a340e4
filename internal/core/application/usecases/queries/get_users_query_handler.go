package queries

import (
	"context"

	"dotrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUsersQueryHandler reads the account listing ordered by username.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for user listing queries.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the user listing query.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) ([]GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, email, department, is_active, created_at
		FROM users
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]GetUsersQueryResponse, 0)
	for rows.Next() {
		var resp GetUsersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Username,
			&resp.Email,
			&resp.Department,
			&resp.IsActive,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
