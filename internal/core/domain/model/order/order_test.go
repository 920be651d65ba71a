package order_test

import (
	"testing"
	"time"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
	"eda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.FixedZone("UTC+03:00", 3*60*60))

func mustItem(t *testing.T, dishID int64, price, qty int) order.Item {
	t.Helper()
	item, err := order.NewItem(dishID, "Dish", price, qty)
	require.NoError(t, err)
	return item
}

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), 42, 3, []order.Item{mustItem(t, 1, 100, 2)}, "Lenina 1", "", testNow)
	require.NoError(t, err)
	return o
}

func restoreAccepted(t *testing.T, acceptedAt *time.Time, eta *int) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), 42, 3, nil, 500, "", "", order.Accepted, testNow.Add(-time.Hour), acceptedAt, eta,
	)
	require.NoError(t, err)
	return o
}

func ptr[T any](v T) *T { return &v }

func TestNewOrder(t *testing.T) {
	t.Run("should create placed order with computed total", func(t *testing.T) {
		id := kernel.NewUUID()
		items := []order.Item{mustItem(t, 1, 350, 2), mustItem(t, 2, 120, 1)}

		o, err := order.NewOrder(id, 42, 3, items, "  Lenina 1 ", "no onions", testNow)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, int64(42), o.UserID())
		assert.Equal(t, int64(3), o.RestaurantID())
		assert.Equal(t, 820, o.TotalPrice())
		assert.Equal(t, "Lenina 1", o.Address())
		assert.Equal(t, order.Placed, o.Status())
		assert.Nil(t, o.AcceptedAt())
		assert.Nil(t, o.EtaMinutes())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 42, 3, nil, "", "", testNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, 0, -1, nil, "", "", testNow)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "user_id")
		assert.Contains(t, err.Error(), "restaurant_id")
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("items slice is copied", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, 100, 1)}
		o, err := order.NewOrder(kernel.NewUUID(), 42, 3, items, "", "", testNow)
		require.NoError(t, err)

		items[0] = mustItem(t, 9, 999, 9)

		assert.Equal(t, int64(1), o.Items()[0].DishID())
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("keeps persisted total and timing", func(t *testing.T) {
		acceptedAt := testNow.Add(-10 * time.Minute)

		o := restoreAccepted(t, &acceptedAt, ptr(15))

		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, 500, o.TotalPrice())
		assert.True(t, o.AcceptedAt().Equal(acceptedAt))
		assert.Equal(t, 15, *o.EtaMinutes())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), 42, 3, nil, 0, "", "", order.Unknown, testNow, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative eta", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), 42, 3, nil, 0, "", "", order.Accepted, testNow, nil, ptr(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("getters return copies", func(t *testing.T) {
		acceptedAt := testNow
		o := restoreAccepted(t, &acceptedAt, ptr(10))

		*o.EtaMinutes() = 99
		*o.AcceptedAt() = time.Time{}

		assert.Equal(t, 10, *o.EtaMinutes())
		assert.True(t, o.AcceptedAt().Equal(testNow))
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("placed order becomes accepted with timing", func(t *testing.T) {
		o := newPlacedOrder(t)

		err := o.Accept(25, testNow)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.AcceptedAt().Equal(testNow))
		assert.Equal(t, 25, *o.EtaMinutes())
	})

	t.Run("zero eta is allowed", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.Accept(0, testNow))
	})

	t.Run("negative eta is rejected", func(t *testing.T) {
		o := newPlacedOrder(t)

		err := o.Accept(-5, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("eta above the cap is rejected", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, newPlacedOrder(t).Accept(order.MaxEtaMinutes, testNow))
		err := o.Accept(order.MaxEtaMinutes+1, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, order.Placed, o.Status())
		assert.Nil(t, o.EtaMinutes())
	})

	t.Run("second accept is a conflict", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Accept(10, testNow))

		err := o.Accept(20, testNow.Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 10, *o.EtaMinutes())
	})
}

func TestOrder_CancelAndModify(t *testing.T) {
	t.Run("cancel placed", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("modify accepted", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Accept(10, testNow))
		require.NoError(t, o.Modify())
		assert.Equal(t, order.Modified, o.Status())
	})

	t.Run("cancelled order cannot be delivered", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Deliver(), errs.ErrConflict)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_DeliveryDeadline(t *testing.T) {
	t.Run("eta above the floor", func(t *testing.T) {
		acceptedAt := testNow
		o := restoreAccepted(t, &acceptedAt, ptr(10))

		deadline, ok := o.DeliveryDeadline(order.MinDeliveryWindow)

		require.True(t, ok)
		assert.True(t, deadline.Equal(testNow.Add(10*time.Minute)))
	})

	t.Run("eta below the floor uses the floor", func(t *testing.T) {
		acceptedAt := testNow
		o := restoreAccepted(t, &acceptedAt, ptr(2))

		deadline, ok := o.DeliveryDeadline(order.MinDeliveryWindow)

		require.True(t, ok)
		assert.True(t, deadline.Equal(testNow.Add(5*time.Minute)))
	})

	t.Run("huge stored eta saturates instead of wrapping", func(t *testing.T) {
		acceptedAt := testNow
		o := restoreAccepted(t, &acceptedAt, ptr(200_000_000))

		deadline, ok := o.DeliveryDeadline(order.MinDeliveryWindow)

		require.True(t, ok)
		assert.True(t, deadline.After(testNow.AddDate(290, 0, 0)))
		assert.False(t, o.IsDeliveryDue(testNow.Add(6*time.Minute), order.MinDeliveryWindow))
		assert.False(t, o.IsDeliveryDue(testNow.AddDate(100, 0, 0), order.MinDeliveryWindow))
	})

	t.Run("missing eta", func(t *testing.T) {
		acceptedAt := testNow
		o := restoreAccepted(t, &acceptedAt, nil)

		_, ok := o.DeliveryDeadline(order.MinDeliveryWindow)

		assert.False(t, ok)
	})

	t.Run("missing accepted_at", func(t *testing.T) {
		o := restoreAccepted(t, nil, ptr(10))

		_, ok := o.DeliveryDeadline(order.MinDeliveryWindow)

		assert.False(t, ok)
	})
}

func TestOrder_IsDeliveryDue(t *testing.T) {
	tests := []struct {
		name       string
		acceptedAt *time.Time
		eta        *int
		due        bool
	}{
		{"eta 10 accepted 11 min ago", ptr(testNow.Add(-11 * time.Minute)), ptr(10), true},
		{"eta 10 accepted exactly 10 min ago", ptr(testNow.Add(-10 * time.Minute)), ptr(10), true},
		{"eta 10 accepted 9 min ago", ptr(testNow.Add(-9 * time.Minute)), ptr(10), false},
		{"eta 2 accepted 3 min ago", ptr(testNow.Add(-3 * time.Minute)), ptr(2), false},
		{"eta 2 accepted 5 min ago", ptr(testNow.Add(-5 * time.Minute)), ptr(2), true},
		{"eta 0 accepted 1 min ago", ptr(testNow.Add(-time.Minute)), ptr(0), false},
		{"eta missing accepted 100 min ago", ptr(testNow.Add(-100 * time.Minute)), nil, false},
		{"accepted_at missing", nil, ptr(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := restoreAccepted(t, tt.acceptedAt, tt.eta)

			assert.Equal(t, tt.due, o.IsDeliveryDue(testNow, order.MinDeliveryWindow))
		})
	}

	t.Run("deadline is compared as an instant across zones", func(t *testing.T) {
		acceptedAt := testNow.Add(-11 * time.Minute).UTC()
		o := restoreAccepted(t, &acceptedAt, ptr(10))

		assert.True(t, o.IsDeliveryDue(testNow, order.MinDeliveryWindow))
	})

	t.Run("not accepted is never due", func(t *testing.T) {
		o := newPlacedOrder(t)

		assert.False(t, o.IsDeliveryDue(testNow.Add(24*time.Hour), order.MinDeliveryWindow))
	})
}

func TestNewStatusChangedEvent(t *testing.T) {
	o := newPlacedOrder(t)
	require.NoError(t, o.Accept(15, testNow))

	event := order.NewStatusChangedEvent(o, order.Placed, testNow)

	assert.True(t, event.OrderID.IsEqual(o.ID()))
	assert.Equal(t, int64(42), event.UserID)
	assert.Equal(t, int64(3), event.RestaurantID)
	assert.Equal(t, order.Placed, event.From)
	assert.Equal(t, order.Accepted, event.To)
	assert.True(t, event.OccurredAt.Equal(testNow))
}
