package queries

import (
	"errors"
	"fmt"

	"dotrack/internal/pkg/errs"
	"dotrack/internal/pkg/guard"
)

var ErrGetProjectOfficeBoardQueryIsNotConstructed = errors.New(
	"GetProjectOfficeBoardQuery must be created via NewGetProjectOfficeBoardQuery constructor",
)

// BoardView selects which column of the project office board to read.
type BoardView string

const (
	// BoardViewIncoming lists orders submitted but not yet acknowledged.
	BoardViewIncoming BoardView = "incoming"
	// BoardViewReceived lists acknowledged orders awaiting dispatch.
	BoardViewReceived BoardView = "received"
	// BoardViewForwarded lists orders the project office has dispatched.
	BoardViewForwarded BoardView = "forwarded"
)

// Validate checks the view against the recognized board columns.
func (v BoardView) Validate() error {
	switch v {
	case BoardViewIncoming, BoardViewReceived, BoardViewForwarded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"view is invalid",
			fmt.Errorf("%s is not a board view", string(v)),
		)
	}
}

// GetProjectOfficeBoardQuery retrieves one column of the project office's
// three-column board: incoming, received, or forwarded orders.
type GetProjectOfficeBoardQuery struct { //nolint:recvcheck //using for validation
	view BoardView

	guard guard.ConstructorGuard
}

// NewGetProjectOfficeBoardQuery creates a query for a project office board
// column.
func NewGetProjectOfficeBoardQuery(view BoardView) (GetProjectOfficeBoardQuery, error) {
	if err := view.Validate(); err != nil {
		return GetProjectOfficeBoardQuery{}, err
	}

	return GetProjectOfficeBoardQuery{
		view:  view,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProjectOfficeBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetProjectOfficeBoardQueryIsNotConstructed)
}

// View returns the requested board column.
func (q GetProjectOfficeBoardQuery) View() BoardView {
	return q.view
}
