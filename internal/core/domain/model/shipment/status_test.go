package shipment_test

import (
	"fmt"
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(shipment.Unknown))
		assert.Equal(t, 1, int(shipment.Placed))
		assert.Equal(t, 2, int(shipment.InTransit))
		assert.Equal(t, 3, int(shipment.OutForDelivery))
		assert.Equal(t, 4, int(shipment.Delivered))
		assert.Equal(t, 5, int(shipment.Cancelled))
	})

	t.Run("should order lifecycle progress", func(t *testing.T) {
		assert.Less(t, shipment.Placed, shipment.InTransit)
		assert.Less(t, shipment.InTransit, shipment.OutForDelivery)
		assert.Less(t, shipment.OutForDelivery, shipment.Delivered)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []shipment.Status{
			shipment.Placed,
			shipment.InTransit,
			shipment.OutForDelivery,
			shipment.Delivered,
			shipment.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := shipment.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := shipment.Status(99).Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		assert.Equal(t, "placed", shipment.Placed.String())
		assert.Equal(t, "in_transit", shipment.InTransit.String())
		assert.Equal(t, "out_for_delivery", shipment.OutForDelivery.String())
		assert.Equal(t, "delivered", shipment.Delivered.String())
		assert.Equal(t, "cancelled", shipment.Cancelled.String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round trip every valid status", func(t *testing.T) {
		statuses := []shipment.Status{
			shipment.Placed,
			shipment.InTransit,
			shipment.OutForDelivery,
			shipment.Delivered,
			shipment.Cancelled,
		}

		for _, status := range statuses {
			parsed, err := shipment.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown string", func(t *testing.T) {
		_, err := shipment.StatusFromString("misplaced")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := shipment.StatusFromString("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should mark delivered and cancelled terminal", func(t *testing.T) {
		assert.True(t, shipment.Delivered.IsTerminal())
		assert.True(t, shipment.Cancelled.IsTerminal())
	})

	t.Run("should keep all other statuses non-terminal", func(t *testing.T) {
		assert.False(t, shipment.Placed.IsTerminal())
		assert.False(t, shipment.InTransit.IsTerminal())
		assert.False(t, shipment.OutForDelivery.IsTerminal())
		assert.False(t, shipment.Unknown.IsTerminal())
	})
}

func TestStatus_CanProceedTo(t *testing.T) {
	t.Run("should allow forward progress", func(t *testing.T) {
		transitions := []struct {
			from shipment.Status
			to   shipment.Status
		}{
			{shipment.Placed, shipment.InTransit},
			{shipment.Placed, shipment.OutForDelivery},
			{shipment.Placed, shipment.Delivered},
			{shipment.InTransit, shipment.OutForDelivery},
			{shipment.InTransit, shipment.Delivered},
			{shipment.OutForDelivery, shipment.Delivered},
		}

		for _, tr := range transitions {
			t.Run(fmt.Sprintf("%s to %s", tr.from, tr.to), func(t *testing.T) {
				require.NoError(t, tr.from.CanProceedTo(tr.to))
			})
		}
	})

	t.Run("should allow repeating the current status", func(t *testing.T) {
		require.NoError(t, shipment.InTransit.CanProceedTo(shipment.InTransit))
		require.NoError(t, shipment.Placed.CanProceedTo(shipment.Placed))
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		transitions := []struct {
			from shipment.Status
			to   shipment.Status
		}{
			{shipment.InTransit, shipment.Placed},
			{shipment.OutForDelivery, shipment.InTransit},
			{shipment.OutForDelivery, shipment.Placed},
		}

		for _, tr := range transitions {
			t.Run(fmt.Sprintf("%s to %s", tr.from, tr.to), func(t *testing.T) {
				err := tr.from.CanProceedTo(tr.to)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should allow cancelling from any non-terminal status", func(t *testing.T) {
		for _, from := range []shipment.Status{
			shipment.Placed,
			shipment.InTransit,
			shipment.OutForDelivery,
		} {
			require.NoError(t, from.CanProceedTo(shipment.Cancelled))
		}
	})

	t.Run("should tolerate duplicate cancel", func(t *testing.T) {
		require.NoError(t, shipment.Cancelled.CanProceedTo(shipment.Cancelled))
	})

	t.Run("should reject cancelling a delivered shipment", func(t *testing.T) {
		err := shipment.Delivered.CanProceedTo(shipment.Cancelled)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cannot cancel a delivered shipment")
	})

	t.Run("should reject any transition out of delivered", func(t *testing.T) {
		for _, to := range []shipment.Status{
			shipment.Placed,
			shipment.InTransit,
			shipment.OutForDelivery,
			shipment.Delivered,
		} {
			require.Error(t, shipment.Delivered.CanProceedTo(to))
		}
	})

	t.Run("should reject leaving cancelled for a lifecycle status", func(t *testing.T) {
		for _, to := range []shipment.Status{
			shipment.Placed,
			shipment.InTransit,
			shipment.OutForDelivery,
			shipment.Delivered,
		} {
			require.Error(t, shipment.Cancelled.CanProceedTo(to))
		}
	})

	t.Run("should reject an invalid target status", func(t *testing.T) {
		err := shipment.Placed.CanProceedTo(shipment.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_DefaultDescription(t *testing.T) {
	location, err := kernel.NewZipCode(11003)
	require.NoError(t, err)

	t.Run("should describe every status", func(t *testing.T) {
		assert.Equal(t, "assigned delivery partner", shipment.Placed.DefaultDescription(location))
		assert.Equal(t, "scanned at 11003", shipment.InTransit.DefaultDescription(location))
		assert.Equal(t, "shipment out for delivery", shipment.OutForDelivery.DefaultDescription(location))
		assert.Equal(t, "successfully delivered", shipment.Delivered.DefaultDescription(location))
		assert.Equal(t, "cancelled by seller", shipment.Cancelled.DefaultDescription(location))
	})
}
