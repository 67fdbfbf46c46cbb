package shipment_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	validID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("should create shipment in not shipped status", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, orderID)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(validID))
		assert.True(t, s.OrderID().IsEqual(orderID))
		assert.Equal(t, shipment.NotShipped, s.DeliveryStatus())
		assert.Nil(t, s.ShippedDate())
	})

	t.Run("should fail with invalid shipment UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := shipment.NewShipment(invalidID, orderID)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail with invalid order UUID", func(t *testing.T) {
		var invalidOrderID kernel.UUID

		_, err := shipment.NewShipment(validID, invalidOrderID)

		require.Error(t, err)
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("should fail validation for nil shipment", func(t *testing.T) {
		var s *shipment.Shipment

		assert.Equal(t, shipment.ErrShipmentIsNotConstructed, s.Validate())
	})

	t.Run("should fail validation for zero value shipment", func(t *testing.T) {
		var s shipment.Shipment

		assert.Equal(t, shipment.ErrShipmentIsNotConstructed, s.Validate())
	})
}

func TestShipment_ChangeStatus(t *testing.T) {
	now := time.Now().UTC()

	newShipment := func(t *testing.T) *shipment.Shipment {
		t.Helper()
		s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		return s
	}

	t.Run("should update status without touching shipped date", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.ChangeStatus(shipment.InTransit, now))

		assert.Equal(t, shipment.InTransit, s.DeliveryStatus())
		assert.Nil(t, s.ShippedDate())
	})

	t.Run("should stamp shipped date on first delivery", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.ChangeStatus(shipment.Delivered, now))

		assert.Equal(t, shipment.Delivered, s.DeliveryStatus())
		require.NotNil(t, s.ShippedDate())
		assert.Equal(t, now, *s.ShippedDate())
	})

	t.Run("should keep original stamp on repeated delivery", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.ChangeStatus(shipment.Delivered, now))

		later := now.Add(time.Hour)
		require.NoError(t, s.ChangeStatus(shipment.Returned, later))
		require.NoError(t, s.ChangeStatus(shipment.Delivered, later))

		require.NotNil(t, s.ShippedDate())
		assert.Equal(t, now, *s.ShippedDate())
	})

	t.Run("should keep stamp when moving away from delivered", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.ChangeStatus(shipment.Delivered, now))

		require.NoError(t, s.ChangeStatus(shipment.Returned, now.Add(time.Hour)))

		assert.Equal(t, shipment.Returned, s.DeliveryStatus())
		assert.NotNil(t, s.ShippedDate())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		s := newShipment(t)

		err := s.ChangeStatus(shipment.UnknownDelivery, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.NotShipped, s.DeliveryStatus())
	})
}

func TestShipment_ClearShippedDate(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, s.ChangeStatus(shipment.Delivered, time.Now().UTC()))
	require.NotNil(t, s.ShippedDate())

	s.ClearShippedDate()

	assert.Nil(t, s.ShippedDate())
}

func TestRestoreShipment(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("should restore shipment with status and stamp", func(t *testing.T) {
		s, err := shipment.RestoreShipment(id, orderID, shipment.Delivered, &now)

		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, s.DeliveryStatus())
		require.NotNil(t, s.ShippedDate())
		assert.Equal(t, now, *s.ShippedDate())
	})

	t.Run("should restore shipment without stamp", func(t *testing.T) {
		s, err := shipment.RestoreShipment(id, orderID, shipment.OnHold, nil)

		require.NoError(t, err)
		assert.Equal(t, shipment.OnHold, s.DeliveryStatus())
		assert.Nil(t, s.ShippedDate())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(id, orderID, shipment.UnknownDelivery, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeliveryStatus(t *testing.T) {
	t.Run("should accept defined statuses", func(t *testing.T) {
		statuses := []shipment.DeliveryStatus{
			shipment.NotShipped,
			shipment.InTransit,
			shipment.Delivered,
			shipment.Returned,
			shipment.OnHold,
		}
		for _, s := range statuses {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		assert.ErrorIs(t, shipment.UnknownDelivery.Validate(), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, shipment.DeliveryStatus(42).Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("should render names", func(t *testing.T) {
		assert.Equal(t, "not shipped", shipment.NotShipped.String())
		assert.Equal(t, "in transit", shipment.InTransit.String())
		assert.Equal(t, "delivered", shipment.Delivered.String())
		assert.Equal(t, "returned", shipment.Returned.String())
		assert.Equal(t, "on hold", shipment.OnHold.String())
		assert.Equal(t, "unknown", shipment.DeliveryStatus(42).String())
	})

	t.Run("should parse valid names", func(t *testing.T) {
		got, err := shipment.DeliveryStatusFromString("in transit")
		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, got)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "shipped", "Delivered"} {
			_, err := shipment.DeliveryStatusFromString(name)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}
