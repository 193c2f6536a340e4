package queries_test

import (
	"testing"

	"dotrack/internal/core/application/usecases/queries"
	"dotrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDepartmentQueueQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDepartmentQueueQuery(kernel.ProjectOffice, kernel.NewUUID(), true)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, kernel.ProjectOffice, query.Department())
	assert.True(t, query.PendingOnly())
}

func TestNewGetDepartmentQueueQuery_InvalidDepartment(t *testing.T) {
	_, err := queries.NewGetDepartmentQueueQuery(kernel.DepartmentUnknown, kernel.NewUUID(), false)
	require.Error(t, err)
}

func TestNewGetDepartmentQueueQuery_InvalidUser(t *testing.T) {
	_, err := queries.NewGetDepartmentQueueQuery(kernel.PaperCreator, kernel.UUID{}, false)
	require.Error(t, err)
}

func TestGetDepartmentQueueQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDepartmentQueueQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDepartmentQueueQueryIsNotConstructed)
}
