package commands_test

import (
	"context"
	"testing"
	"time"

	"eda/internal/core/application/usecases/commands"
	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
	"eda/internal/core/domain/model/review"
	"eda/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatusFrom(ctx context.Context, o *order.Order, from order.Status) (bool, error) {
	args := m.Called(ctx, o, from)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInAcceptedStatus(
	ctx context.Context,
) ([]*order.Order, []ports.UnreadableOrder, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	unreadable, _ := args.Get(1).([]ports.UnreadableOrder)
	return orders, unreadable, args.Error(2)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID, userID int64) (bool, error) {
	args := m.Called(ctx, orderID, userID)
	return args.Bool(0), args.Error(1)
}

type MockAppReviewRepository struct{ mock.Mock }

func (m *MockAppReviewRepository) Add(ctx context.Context, r *review.AppReview) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockAppReviewRepository) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUnitOfWork) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

func (m *MockUnitOfWork) AppReviewRepository() ports.AppReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.AppReviewRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

type MockAppReviewUoWFactory struct{ mock.Mock }

func (m *MockAppReviewUoWFactory) Create() commands.AppReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.AppReviewUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...order.StatusChangedEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// asPublisher keeps a nil mock from becoming a non-nil interface.
func asPublisher(m *MockEventPublisher) ports.OrderEventPublisher {
	if m == nil {
		return nil
	}
	return m
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.FixedZone("UTC+03:00", 3*60*60))

func newTestItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(7, "Borscht", 350, 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func newPlacedOrder(t *testing.T, userID int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), userID, 3, newTestItems(t), "Lenina 1", "", testNow.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

// newAcceptedOrder restores an order accepted acceptedAgo before testNow.
func newAcceptedOrder(t *testing.T, acceptedAgo time.Duration, eta *int) *order.Order {
	t.Helper()
	acceptedAt := testNow.Add(-acceptedAgo)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), 42, 3, newTestItems(t), 700, "Lenina 1", "",
		order.Accepted, testNow.Add(-2*time.Hour), &acceptedAt, eta,
	)
	require.NoError(t, err)
	return o
}

func intPtr(v int) *int { return &v }
