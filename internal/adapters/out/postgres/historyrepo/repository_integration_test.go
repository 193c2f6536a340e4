package historyrepo_test

import (
	"context"
	"testing"
	"time"

	"dotrack/internal/adapters/out/postgres/historyrepo"
	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/history"
	"dotrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// HistoryRepositoryIntegrationTestSuite verifies ledger persistence and
// ordering against a real PostgreSQL instance.
type HistoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *historyrepo.GormHistoryRepository
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&historyrepo.EntryDTO{}))
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE workflow_history").Error)

	suite.repository = historyrepo.NewGormHistoryRepository(suite.db)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *HistoryRepositoryIntegrationTestSuite) newEntry(
	doID kernel.UUID,
	from *kernel.Department,
	to kernel.Department,
	action deliveryorder.Action,
	performedAt time.Time,
) *history.Entry {
	entry, err := history.NewEntry(
		kernel.NewUUID(), doID, from, to, action, kernel.NewUUID(), "", performedAt)
	suite.Require().NoError(err)
	return entry
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestAppend_GetByDeliveryOrder_RoundTrips() {
	ctx := context.Background()
	doID := kernel.NewUUID()
	paperCreator := kernel.PaperCreator

	created := suite.newEntry(doID, nil, kernel.PaperCreator,
		deliveryorder.ActionCreated, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	submitted := suite.newEntry(doID, &paperCreator, kernel.ProjectOffice,
		deliveryorder.ActionSubmittedToProjectOffice, time.Date(2025, 6, 1, 10, 0, 1, 0, time.UTC))

	suite.Require().NoError(suite.repository.Append(ctx, created))
	suite.Require().NoError(suite.repository.Append(ctx, submitted))

	entries, err := suite.repository.GetByDeliveryOrder(ctx, doID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)

	suite.Equal(deliveryorder.ActionCreated, entries[0].Action())
	suite.Nil(entries[0].FromDepartment())
	suite.Equal(kernel.PaperCreator, entries[0].ToDepartment())

	suite.Equal(deliveryorder.ActionSubmittedToProjectOffice, entries[1].Action())
	suite.Require().NotNil(entries[1].FromDepartment())
	suite.Equal(kernel.PaperCreator, *entries[1].FromDepartment())
	suite.Equal(kernel.ProjectOffice, entries[1].ToDepartment())
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestGetByDeliveryOrder_EqualTimestamps_KeepInsertionOrder() {
	ctx := context.Background()
	doID := kernel.NewUUID()
	paperCreator := kernel.PaperCreator
	projectOffice := kernel.ProjectOffice

	// One transaction can write several entries with the same timestamp;
	// the ledger must still read back in the order they were appended.
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	created := suite.newEntry(doID, nil, kernel.PaperCreator,
		deliveryorder.ActionCreated, at)
	submitted := suite.newEntry(doID, &paperCreator, kernel.ProjectOffice,
		deliveryorder.ActionSubmittedToProjectOffice, at)
	received := suite.newEntry(doID, &projectOffice, kernel.ProjectOffice,
		deliveryorder.ActionReceived, at)

	suite.Require().NoError(suite.repository.Append(ctx, created))
	suite.Require().NoError(suite.repository.Append(ctx, submitted))
	suite.Require().NoError(suite.repository.Append(ctx, received))

	entries, err := suite.repository.GetByDeliveryOrder(ctx, doID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	suite.Equal(deliveryorder.ActionCreated, entries[0].Action())
	suite.Equal(deliveryorder.ActionSubmittedToProjectOffice, entries[1].Action())
	suite.Equal(deliveryorder.ActionReceived, entries[2].Action())
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestGetByDeliveryOrder_ScopedToOrder() {
	ctx := context.Background()
	doID := kernel.NewUUID()
	otherID := kernel.NewUUID()

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.repository.Append(ctx,
		suite.newEntry(doID, nil, kernel.PaperCreator, deliveryorder.ActionCreated, at)))
	suite.Require().NoError(suite.repository.Append(ctx,
		suite.newEntry(otherID, nil, kernel.PaperCreator, deliveryorder.ActionCreated, at)))

	entries, err := suite.repository.GetByDeliveryOrder(ctx, doID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.True(entries[0].DeliveryOrderID().IsEqual(doID))
}

func TestHistoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryRepositoryIntegrationTestSuite))
}
