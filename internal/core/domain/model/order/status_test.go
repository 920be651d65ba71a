package order_test

import (
	"testing"

	"eda/internal/core/domain/model/order"
	"eda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "placed", order.Placed.String())
	assert.Equal(t, "accepted", order.Accepted.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
	assert.Equal(t, "modified", order.Modified.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []order.Status{order.Placed, order.Accepted, order.Delivered, order.Cancelled, order.Modified} {
		parsed, err := order.ParseStatus(s.String())

		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.ParseStatus("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("Accepted")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Accepted.Validate())
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)

	accept := func(s order.Status) (order.Status, error) { return s.Accept() }
	deliver := func(s order.Status) (order.Status, error) { return s.Deliver() }
	cancel := func(s order.Status) (order.Status, error) { return s.Cancel() }
	modify := func(s order.Status) (order.Status, error) { return s.Modify() }

	tests := []struct {
		name string
		from order.Status
		fn   transition
		want order.Status
	}{
		{"placed accept", order.Placed, accept, order.Accepted},
		{"accepted accept", order.Accepted, accept, order.Unknown},
		{"accepted deliver", order.Accepted, deliver, order.Delivered},
		{"placed deliver", order.Placed, deliver, order.Unknown},
		{"delivered deliver", order.Delivered, deliver, order.Unknown},
		{"placed cancel", order.Placed, cancel, order.Cancelled},
		{"accepted cancel", order.Accepted, cancel, order.Cancelled},
		{"delivered cancel", order.Delivered, cancel, order.Unknown},
		{"accepted modify", order.Accepted, modify, order.Modified},
		{"cancelled modify", order.Cancelled, modify, order.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.from)

			assert.Equal(t, tt.want, got)
			if tt.want == order.Unknown {
				require.ErrorIs(t, err, errs.ErrConflict)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_IsFinal(t *testing.T) {
	assert.False(t, order.Placed.IsFinal())
	assert.False(t, order.Accepted.IsFinal())
	assert.True(t, order.Delivered.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
	assert.True(t, order.Modified.IsFinal())
}
