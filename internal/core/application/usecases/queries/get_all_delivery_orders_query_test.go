package queries_test

import (
	"testing"

	"dotrack/internal/core/application/usecases/queries"
	"dotrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllDeliveryOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllDeliveryOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllDeliveryOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllDeliveryOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllDeliveryOrdersQueryIsNotConstructed)
}

func TestNewGetPartiesQuery_Valid(t *testing.T) {
	require.NoError(t, queries.NewGetPartiesQuery().Validate())
}

func TestNewGetUsersQuery_Valid(t *testing.T) {
	require.NoError(t, queries.NewGetUsersQuery().Validate())
}

func TestNewGetDashboardStatsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDashboardStatsQuery(kernel.RoadSale, kernel.NewUUID())

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, kernel.RoadSale, query.Department())
}

func TestNewGetDashboardStatsQuery_InvalidDepartment(t *testing.T) {
	_, err := queries.NewGetDashboardStatsQuery(kernel.DepartmentUnknown, kernel.NewUUID())
	require.Error(t, err)
}
