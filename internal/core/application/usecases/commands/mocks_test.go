package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dotrack/internal/core/application/usecases/commands"
	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/history"
	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/domain/model/party"
	"dotrack/internal/core/domain/model/user"
	"dotrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryOrderRepository struct{ mock.Mock }

func (m *MockDeliveryOrderRepository) Add(ctx context.Context, do *deliveryorder.DeliveryOrder) error {
	args := m.Called(ctx, do)
	return args.Error(0)
}

func (m *MockDeliveryOrderRepository) Update(ctx context.Context, do *deliveryorder.DeliveryOrder, observedStage deliveryorder.Stage) error {
	args := m.Called(ctx, do, observedStage)
	return args.Error(0)
}

func (m *MockDeliveryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryorder.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryorder.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) GetByNumber(ctx context.Context, number deliveryorder.Number) (*deliveryorder.DeliveryOrder, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryorder.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) NextSequence(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entry *history.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetByDeliveryOrder(ctx context.Context, deliveryOrderID kernel.UUID) ([]*history.Entry, error) {
	args := m.Called(ctx, deliveryOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*history.Entry), args.Error(1)
}

type MockWorkflowUoW struct{ mock.Mock }

func (m *MockWorkflowUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryOrderRepository)
}

func (m *MockWorkflowUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockWorkflowUoWFactory struct{ mock.Mock }

func (m *MockWorkflowUoWFactory) Create() commands.WorkflowUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkflowUoW)
}

type MockPartyRepository struct{ mock.Mock }

func (m *MockPartyRepository) Add(ctx context.Context, p *party.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartyRepository) Get(ctx context.Context, id kernel.UUID) (*party.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) GetAll(ctx context.Context) ([]*party.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*party.Party), args.Error(1)
}

type MockPartyUoW struct{ mock.Mock }

func (m *MockPartyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartyUoW) PartyRepository() ports.PartyRepository {
	args := m.Called()
	return args.Get(0).(ports.PartyRepository)
}

type MockPartyUoWFactory struct{ mock.Mock }

func (m *MockPartyUoWFactory) Create() commands.PartyUoW {
	args := m.Called()
	return args.Get(0).(commands.PartyUoW)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockResetTokenRepository struct{ mock.Mock }

func (m *MockResetTokenRepository) Add(ctx context.Context, token *user.ResetToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockResetTokenRepository) GetUnused(ctx context.Context, token string) (*user.ResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.ResetToken), args.Error(1)
}

func (m *MockResetTokenRepository) Update(ctx context.Context, token *user.ResetToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockResetTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenUoW struct{ mock.Mock }

func (m *MockTokenUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTokenUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTokenUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTokenUoW) ResetTokenRepository() ports.ResetTokenRepository {
	args := m.Called()
	return args.Get(0).(ports.ResetTokenRepository)
}

type MockTokenUoWFactory struct{ mock.Mock }

func (m *MockTokenUoWFactory) Create() commands.TokenUoW {
	args := m.Called()
	return args.Get(0).(commands.TokenUoW)
}

// stepClock hands out strictly increasing timestamps, one second apart, so
// ledger entries written in one handler call stay ordered.
type stepClock struct {
	mu   sync.Mutex
	next time.Time
}

func newStepClock() *stepClock {
	return &stepClock{next: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(time.Second)
	return now
}

// newSubmittedOrder builds an order that has already been submitted to the
// project office, optionally advanced further by the given transitions.
func newSubmittedOrder(t *testing.T, advance ...func(*deliveryorder.DeliveryOrder) error) *deliveryorder.DeliveryOrder {
	t.Helper()

	number, err := deliveryorder.NewNumber(2025, 1)
	require.NoError(t, err)

	validFrom := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	do, err := deliveryorder.NewDeliveryOrder(
		kernel.NewUUID(), number, kernel.NewUUID(), "A. Person",
		validFrom, validFrom.AddDate(0, 1, 0), "", kernel.NewUUID(), validFrom)
	require.NoError(t, err)
	require.NoError(t, do.SubmitToProjectOffice(kernel.PaperCreator))

	for _, step := range advance {
		require.NoError(t, step(do))
	}

	return do
}
