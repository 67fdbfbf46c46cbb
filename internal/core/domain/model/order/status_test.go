package order_test

import (
	"testing"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept defined statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Fulfilled, order.Cancelled} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		assert.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		assert.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Fulfilled", order.Fulfilled.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid status names", func(t *testing.T) {
		tests := map[string]order.Status{
			"Pending":   order.Pending,
			"Fulfilled": order.Fulfilled,
			"Cancelled": order.Cancelled,
		}

		for name, want := range tests {
			got, err := order.StatusFromString(name)
			require.NoError(t, err, name)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "pending", "Shipped"} {
			_, err := order.StatusFromString(name)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.True(t, order.Fulfilled.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow edges out of pending", func(t *testing.T) {
		for _, target := range []order.Status{order.Fulfilled, order.Cancelled} {
			got, err := order.Pending.TransitionTo(target)
			require.NoError(t, err, target.String())
			assert.Equal(t, target, got)
		}
	})

	t.Run("should reject self transition", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Pending)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject edges out of terminal states", func(t *testing.T) {
		tests := []struct {
			from, to order.Status
		}{
			{order.Fulfilled, order.Cancelled},
			{order.Fulfilled, order.Pending},
			{order.Cancelled, order.Fulfilled},
			{order.Cancelled, order.Pending},
		}

		for _, tt := range tests {
			_, err := tt.from.TransitionTo(tt.to)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", tt.from, tt.to)
		}
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
