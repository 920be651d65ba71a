package queries_test

import (
	"testing"
	"time"

	"eda/internal/core/application/usecases/queries"
	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
	"eda/internal/pkg/errs"
	"eda/internal/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	db := testdb.SQLite(t)
	s := seed{t: t, db: db}
	handler := queries.NewGetOrderQueryHandler(db)

	t.Run("returns order with items in checkout order", func(t *testing.T) {
		o := s.order(42, 3, testNow,
			mustItem(t, 1, "Borscht", 350, 2),
			mustItem(t, 2, "Tea", 50, 1),
		)

		query, err := queries.NewGetOrderQuery(o.ID())
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.True(t, got.ID.IsEqual(o.ID()))
		assert.Equal(t, int64(42), got.UserID)
		assert.Equal(t, 750, got.TotalPrice)
		assert.Equal(t, "placed", got.Status)
		assert.True(t, got.CreatedAt.Equal(testNow))
		assert.Nil(t, got.AcceptedAt)
		assert.Nil(t, got.EtaMinutes)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "Borscht", got.Items[0].Name)
		assert.Equal(t, "Tea", got.Items[1].Name)
	})

	t.Run("exposes accept timing", func(t *testing.T) {
		o := s.order(42, 3, testNow)
		s.status(o, func(o *order.Order) error { return o.Accept(20, testNow.Add(time.Minute)) })

		query, err := queries.NewGetOrderQuery(o.ID())
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, "accepted", got.Status)
		require.NotNil(t, got.AcceptedAt)
		assert.True(t, got.AcceptedAt.Equal(testNow.Add(time.Minute)))
		require.NotNil(t, got.EtaMinutes)
		assert.Equal(t, 20, *got.EtaMinutes)
	})

	t.Run("missing order is not found", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(kernel.NewUUID())
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rejects unconstructed query", func(t *testing.T) {
		_, err := handler.Handle(t.Context(), queries.GetOrderQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestGetUserOrdersQueryHandler_Handle(t *testing.T) {
	db := testdb.SQLite(t)
	s := seed{t: t, db: db}
	handler := queries.NewGetUserOrdersQueryHandler(db)

	older := s.order(42, 3, testNow.Add(-2*time.Hour))
	newer := s.order(42, 4, testNow.Add(-time.Hour))
	s.order(7, 3, testNow)

	t.Run("lists own orders newest first", func(t *testing.T) {
		query, err := queries.NewGetUserOrdersQuery(42)
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[0].ID.IsEqual(newer.ID()))
		assert.True(t, got[1].ID.IsEqual(older.ID()))
		assert.Len(t, got[0].Items, 1)
	})

	t.Run("user without orders gets an empty list", func(t *testing.T) {
		query, err := queries.NewGetUserOrdersQuery(1000)
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGetOrderStatsQueryHandler_Handle(t *testing.T) {
	db := testdb.SQLite(t)
	s := seed{t: t, db: db}
	handler := queries.NewGetOrderStatsQueryHandler(db, pinnedClock(t, testNow))

	// 700 each
	today := s.order(42, 3, testNow.Add(-time.Hour))
	afterMidnight := s.order(42, 3, time.Date(2026, 10, 14, 0, 30, 0, 0, zone))
	s.order(42, 3, time.Date(2026, 10, 13, 23, 30, 0, 0, zone))
	s.order(42, 3, time.Date(2026, 9, 30, 23, 59, 0, 0, zone))
	s.order(42, 9, testNow.Add(-time.Hour))

	s.status(today, func(o *order.Order) error { return o.Cancel() })
	s.status(afterMidnight, func(o *order.Order) error { return o.Modify() })

	t.Run("all restaurants", func(t *testing.T) {
		query, err := queries.NewGetOrderStatsQuery(0)
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.True(t, got.Today.From.Equal(time.Date(2026, 10, 14, 0, 0, 0, 0, zone)))
		assert.True(t, got.Month.From.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, zone)))

		assert.Equal(t, int64(3), got.Today.Orders)
		assert.Equal(t, int64(2100), got.Today.Sum)
		assert.Equal(t, int64(1), got.Today.Cancelled)
		assert.Equal(t, int64(1), got.Today.Modified)

		assert.Equal(t, int64(4), got.Month.Orders)
		assert.Equal(t, int64(2800), got.Month.Sum)
	})

	t.Run("single restaurant", func(t *testing.T) {
		query, err := queries.NewGetOrderStatsQuery(9)
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Today.Orders)
		assert.Equal(t, int64(0), got.Today.Cancelled)
		assert.Equal(t, int64(1), got.Month.Orders)
	})

	t.Run("empty restaurant sums to zero", func(t *testing.T) {
		query, err := queries.NewGetOrderStatsQuery(77)
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Zero(t, got.Today.Orders)
		assert.Zero(t, got.Month.Sum)
	})
}
