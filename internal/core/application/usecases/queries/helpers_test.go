package queries_test

import (
	"testing"
	"time"

	postgres_adapter "eda/internal/adapters/out/postgres"
	"eda/internal/adapters/out/postgres/reviewrepo"
	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
	"eda/internal/core/domain/model/review"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	zone    = time.FixedZone("UTC+03:00", 3*60*60)
	testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, zone)
)

func pinnedClock(t testing.TB, now time.Time) kernel.FixedZoneClock {
	t.Helper()
	clock, err := kernel.NewFixedZoneClock(180)
	require.NoError(t, err)
	return clock.WithNow(func() time.Time { return now })
}

// seed stores aggregates through a real unit of work.
type seed struct {
	t  testing.TB
	db *gorm.DB
}

func (s seed) order(userID, restaurantID int64, createdAt time.Time, items ...order.Item) *order.Order {
	s.t.Helper()
	if len(items) == 0 {
		item, err := order.NewItem(1, "Borscht", 350, 2)
		require.NoError(s.t, err)
		items = []order.Item{item}
	}

	o, err := order.NewOrder(kernel.NewUUID(), userID, restaurantID, items, "Lenina 1", "", createdAt)
	require.NoError(s.t, err)

	uow := postgres_adapter.NewGormUnitOfWorkFactory(s.db).Create()
	require.NoError(s.t, uow.Begin(s.t.Context()))
	require.NoError(s.t, uow.OrderRepository().Add(s.t.Context(), o))
	require.NoError(s.t, uow.Commit(s.t.Context()))
	return o
}

func (s seed) status(o *order.Order, change func(*order.Order) error) {
	s.t.Helper()
	from := o.Status()
	require.NoError(s.t, change(o))

	uow := postgres_adapter.NewGormUnitOfWorkFactory(s.db).Create()
	require.NoError(s.t, uow.Begin(s.t.Context()))
	updated, err := uow.OrderRepository().UpdateStatusFrom(s.t.Context(), o, from)
	require.NoError(s.t, err)
	require.True(s.t, updated)
	require.NoError(s.t, uow.Commit(s.t.Context()))
}

func (s seed) review(o *order.Order, rating int, createdAt time.Time) *review.Review {
	s.t.Helper()
	r, err := review.NewReview(kernel.NewUUID(), o.ID(), o.RestaurantID(), o.UserID(), rating, "ok", createdAt)
	require.NoError(s.t, err)

	uow := postgres_adapter.NewGormUnitOfWorkFactory(s.db).Create()
	require.NoError(s.t, uow.Begin(s.t.Context()))
	require.NoError(s.t, uow.ReviewRepository().Add(s.t.Context(), r))
	require.NoError(s.t, uow.Commit(s.t.Context()))
	return r
}

func (s seed) deleteReview(r *review.Review) {
	s.t.Helper()
	r.Delete()

	uow := postgres_adapter.NewGormUnitOfWorkFactory(s.db).Create()
	require.NoError(s.t, uow.Begin(s.t.Context()))
	require.NoError(s.t, uow.ReviewRepository().Update(s.t.Context(), r))
	require.NoError(s.t, uow.Commit(s.t.Context()))
}

func (s seed) appReview(userID int64, rating int, createdAt time.Time) *review.AppReview {
	s.t.Helper()
	r, err := review.NewAppReview(kernel.NewUUID(), userID, rating, "ok", createdAt)
	require.NoError(s.t, err)

	uow := postgres_adapter.NewGormUnitOfWorkFactory(s.db).Create()
	require.NoError(s.t, uow.Begin(s.t.Context()))
	require.NoError(s.t, uow.AppReviewRepository().Add(s.t.Context(), r))
	require.NoError(s.t, uow.Commit(s.t.Context()))
	return r
}

// hideAppReview flags the row directly; moderation of app reviews has no command.
func (s seed) hideAppReview(r *review.AppReview) {
	s.t.Helper()
	require.NoError(s.t, s.db.Model(&reviewrepo.AppReviewDTO{}).
		Where("id = ?", r.ID().Bytes()).
		Update("is_deleted", true).Error)
}

func mustItem(t testing.TB, dishID int64, name string, price, qty int) order.Item {
	t.Helper()
	item, err := order.NewItem(dishID, name, price, qty)
	require.NoError(t, err)
	return item
}
