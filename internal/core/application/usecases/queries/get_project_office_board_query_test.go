package queries_test

import (
	"testing"

	"dotrack/internal/core/application/usecases/queries"
	"dotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProjectOfficeBoardQuery_Valid(t *testing.T) {
	for _, view := range []queries.BoardView{
		queries.BoardViewIncoming,
		queries.BoardViewReceived,
		queries.BoardViewForwarded,
	} {
		query, err := queries.NewGetProjectOfficeBoardQuery(view)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, view, query.View())
	}
}

func TestNewGetProjectOfficeBoardQuery_InvalidView(t *testing.T) {
	_, err := queries.NewGetProjectOfficeBoardQuery(queries.BoardView("outgoing"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetProjectOfficeBoardQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetProjectOfficeBoardQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetProjectOfficeBoardQueryIsNotConstructed)
}
