package order_test

import (
	"testing"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuote(t *testing.T) *order.VendorQuote {
	t.Helper()

	quote, err := order.NewVendorQuote(
		kernel.NewUUID(),
		"Midwest Auto Parts", "Dale", "+1-555-0134", "dale@midwestparts.example",
		kernel.MustMoneyFromCents(45000),
		kernel.MustMoneyFromCents(12000),
		kernel.MustMoneyFromCents(5000),
	)
	require.NoError(t, err)
	return quote
}

func TestNewVendorQuote(t *testing.T) {
	t.Run("should create pending quote with derived total", func(t *testing.T) {
		quote := newTestQuote(t)

		require.NoError(t, quote.Validate())
		assert.Equal(t, order.POStatusPending, quote.POStatus())
		assert.False(t, quote.IsConfirmed())
		assert.False(t, quote.PaymentConfirmed())
		assert.Equal(t, "Midwest Auto Parts", quote.BusinessName())
		assert.Equal(t, int64(57000), quote.TotalCost().Cents())
	})

	t.Run("core price is excluded from the derived total", func(t *testing.T) {
		quote := newTestQuote(t)

		assert.Equal(t, int64(5000), quote.CorePrice().Cents())
		assert.Equal(t, quote.CostPrice().Cents()+quote.ShippingCost().Cents(), quote.TotalCost().Cents())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		quote, err := order.NewVendorQuote(invalidID, "Midwest Auto Parts", "", "", "",
			kernel.Money{}, kernel.Money{}, kernel.Money{})

		require.Error(t, err)
		assert.Nil(t, quote)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail without business name", func(t *testing.T) {
		quote, err := order.NewVendorQuote(kernel.NewUUID(), "", "", "", "",
			kernel.Money{}, kernel.Money{}, kernel.Money{})

		require.Error(t, err)
		assert.Nil(t, quote)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestVendorQuote_Validate(t *testing.T) {
	t.Run("should fail validation for nil quote", func(t *testing.T) {
		var quote *order.VendorQuote

		err := quote.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrVendorQuoteIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value quote", func(t *testing.T) {
		var quote order.VendorQuote

		err := quote.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrVendorQuoteIsNotConstructed, err)
	})
}

func TestVendorQuote_UpdateContact(t *testing.T) {
	t.Run("should update contact while PO is pending", func(t *testing.T) {
		quote := newTestQuote(t)

		err := quote.UpdateContact("Northside Salvage", "Rita", "+1-555-0177", "rita@northside.example")

		require.NoError(t, err)
		assert.Equal(t, "Northside Salvage", quote.BusinessName())
		assert.Equal(t, "Rita", quote.AgentName())
	})

	t.Run("should reject empty business name", func(t *testing.T) {
		quote := newTestQuote(t)

		err := quote.UpdateContact("", "Rita", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "Midwest Auto Parts", quote.BusinessName())
	})
}

func TestVendorQuote_UpdateCosts(t *testing.T) {
	t.Run("should recompute derived total on every cost edit", func(t *testing.T) {
		quote := newTestQuote(t)

		err := quote.UpdateCosts(
			kernel.MustMoneyFromCents(50000),
			kernel.MustMoneyFromCents(9000),
			kernel.MustMoneyFromCents(0),
		)

		require.NoError(t, err)
		assert.Equal(t, int64(59000), quote.TotalCost().Cents())
	})
}

func TestVendorQuote_UpdateDetails(t *testing.T) {
	t.Run("should update descriptive fields", func(t *testing.T) {
		quote := newTestQuote(t)

		err := quote.UpdateDetails(4, "90 days", 84000)

		require.NoError(t, err)
		assert.Equal(t, 4, quote.Rating())
		assert.Equal(t, "90 days", quote.Warranty())
		assert.Equal(t, 84000, quote.Mileage())
	})

	t.Run("should reject rating above 5", func(t *testing.T) {
		quote := newTestQuote(t)

		err := quote.UpdateDetails(6, "", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "6 is rating")
	})

	t.Run("should reject negative rating", func(t *testing.T) {
		quote := newTestQuote(t)

		err := quote.UpdateDetails(-1, "", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative mileage", func(t *testing.T) {
		quote := newTestQuote(t)

		err := quote.UpdateDetails(3, "", -100)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVendorQuote_AddNote(t *testing.T) {
	t.Run("notes are append only", func(t *testing.T) {
		quote := newTestQuote(t)

		require.NoError(t, quote.AddNote("called, left voicemail"))
		require.NoError(t, quote.AddNote("quoted over the phone"))

		notes := quote.Notes()
		require.Len(t, notes, 2)
		assert.Equal(t, "called, left voicemail", notes[0].Text())
		assert.Equal(t, "quoted over the phone", notes[1].Text())
	})

	t.Run("should reject empty note", func(t *testing.T) {
		quote := newTestQuote(t)

		err := quote.AddNote("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestVendorQuote_IsActive(t *testing.T) {
	t.Run("a fresh quote is not active", func(t *testing.T) {
		quote := newTestQuote(t)

		assert.False(t, quote.IsActive())
	})

	t.Run("restored quote with confirmed PO and operator confirmation is active", func(t *testing.T) {
		quote, err := order.RestoreVendorQuote(
			kernel.NewUUID(),
			"Midwest Auto Parts", "", "", "",
			kernel.MustMoneyFromCents(45000),
			kernel.MustMoneyFromCents(12000),
			kernel.Money{},
			3, "60 days", 90000,
			order.POStatusConfirmed,
			true, false,
			nil,
		)

		require.NoError(t, err)
		assert.True(t, quote.IsActive())
	})

	t.Run("confirmed PO without operator confirmation is not active", func(t *testing.T) {
		quote, err := order.RestoreVendorQuote(
			kernel.NewUUID(),
			"Midwest Auto Parts", "", "", "",
			kernel.Money{}, kernel.Money{}, kernel.Money{},
			0, "", 0,
			order.POStatusConfirmed,
			false, false,
			nil,
		)

		require.NoError(t, err)
		assert.False(t, quote.IsActive())
	})
}

func TestRestoreVendorQuote(t *testing.T) {
	t.Run("should recompute the derived total instead of trusting storage", func(t *testing.T) {
		quote, err := order.RestoreVendorQuote(
			kernel.NewUUID(),
			"Midwest Auto Parts", "", "", "",
			kernel.MustMoneyFromCents(100),
			kernel.MustMoneyFromCents(50),
			kernel.MustMoneyFromCents(999),
			0, "", 0,
			order.POStatusPending,
			false, false,
			nil,
		)

		require.NoError(t, err)
		assert.Equal(t, int64(150), quote.TotalCost().Cents())
	})

	t.Run("should reject invalid PO status", func(t *testing.T) {
		quote, err := order.RestoreVendorQuote(
			kernel.NewUUID(),
			"Midwest Auto Parts", "", "", "",
			kernel.Money{}, kernel.Money{}, kernel.Money{},
			0, "", 0,
			order.POStatus(42),
			false, false,
			nil,
		)

		require.Error(t, err)
		assert.Nil(t, quote)
	})
}
