package order_test

import (
	"testing"

	"partsflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.LocatePending,
			order.POPending,
			order.POSent,
			order.POConfirmed,
			order.VendorPaymentPending,
			order.VendorPaymentConfirmed,
			order.ShippingPending,
			order.ShipOut,
			order.Intransit,
			order.Delivered,
			order.Litigation,
			order.Replacement,
			order.ReplacementCancelled,
		}

		for _, s := range statuses {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(99).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "99 is not a valid status")
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return defined names", func(t *testing.T) {
		assert.Equal(t, "LocatePending", order.LocatePending.String())
		assert.Equal(t, "POConfirmed", order.POConfirmed.String())
		assert.Equal(t, "VendorPaymentConfirmed", order.VendorPaymentConfirmed.String())
		assert.Equal(t, "ReplacementCancelled", order.ReplacementCancelled.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(-1).String())
		assert.Equal(t, "Unknown", order.Status(99).String())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("litigation and replacement cancelled are terminal", func(t *testing.T) {
		assert.True(t, order.Litigation.IsTerminal())
		assert.True(t, order.ReplacementCancelled.IsTerminal())
	})

	t.Run("delivered is not terminal", func(t *testing.T) {
		assert.False(t, order.Delivered.IsTerminal())
	})

	t.Run("sourcing and shipping statuses are not terminal", func(t *testing.T) {
		assert.False(t, order.LocatePending.IsTerminal())
		assert.False(t, order.POSent.IsTerminal())
		assert.False(t, order.Intransit.IsTerminal())
		assert.False(t, order.Replacement.IsTerminal())
	})
}

func TestStatus_RequiresActiveVendor(t *testing.T) {
	t.Run("statuses past PO confirmation require an active vendor", func(t *testing.T) {
		withVendor := []order.Status{
			order.POConfirmed,
			order.VendorPaymentPending,
			order.VendorPaymentConfirmed,
			order.ShippingPending,
			order.ShipOut,
			order.Intransit,
			order.Delivered,
		}

		for _, s := range withVendor {
			assert.True(t, s.RequiresActiveVendor(), s.String())
		}
	})

	t.Run("sourcing and post-delivery branch statuses do not", func(t *testing.T) {
		without := []order.Status{
			order.LocatePending,
			order.POPending,
			order.POSent,
			order.Litigation,
			order.Replacement,
			order.ReplacementCancelled,
		}

		for _, s := range without {
			assert.False(t, s.RequiresActiveVendor(), s.String())
		}
	})
}

func TestPOStatus_Validate(t *testing.T) {
	t.Run("should accept all defined PO statuses", func(t *testing.T) {
		statuses := []order.POStatus{
			order.POStatusPending,
			order.POStatusSent,
			order.POStatusConfirmed,
			order.POStatusCanceled,
		}

		for _, s := range statuses {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown PO status", func(t *testing.T) {
		require.Error(t, order.POStatusUnknown.Validate())
		require.Error(t, order.POStatus(42).Validate())
	})
}

func TestPOStatus_CanCancel(t *testing.T) {
	assert.True(t, order.POStatusPending.CanCancel())
	assert.True(t, order.POStatusSent.CanCancel())
	assert.True(t, order.POStatusConfirmed.CanCancel())
	assert.False(t, order.POStatusCanceled.CanCancel())
}

func TestPOStatus_GeneratesRefundObligation(t *testing.T) {
	t.Run("only a confirmed PO generates a refund obligation", func(t *testing.T) {
		assert.True(t, order.POStatusConfirmed.GeneratesRefundObligation())
		assert.False(t, order.POStatusPending.GeneratesRefundObligation())
		assert.False(t, order.POStatusSent.GeneratesRefundObligation())
		assert.False(t, order.POStatusCanceled.GeneratesRefundObligation())
	})
}
