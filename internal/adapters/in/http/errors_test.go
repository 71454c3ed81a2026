package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partsflow/internal/pkg/errs"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "some-id"), http.StatusNotFound},
		{"invalid state", errs.NewInvalidStateError("sendPO", "LocatePending", "POPending"), http.StatusConflict},
		{"conflict", errs.NewConflictError("order", "version mismatch"), http.StatusConflict},
		{"value required", errs.NewValueIsRequiredError("customerName"), http.StatusBadRequest},
		{"value invalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(t)

			require.NoError(t, respondError(ctx, tt.err))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRespondError_AlreadySetIsNoOp(t *testing.T) {
	ctx, rec := newTestContext(t)

	require.NoError(t, respondError(ctx, errs.NewAlreadySetError("paymentConfirmed")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRequestValidator(t *testing.T) {
	validator := NewRequestValidator()

	t.Run("valid payload passes", func(t *testing.T) {
		err := validator.Validate(&CreateOrderRequest{
			CustomerName: "John Carter",
			AmountCents:  120000,
		})
		assert.NoError(t, err)
	})

	t.Run("missing required field fails", func(t *testing.T) {
		err := validator.Validate(&CreateOrderRequest{AmountCents: 120000})
		assert.Error(t, err)
	})

	t.Run("negative amount fails", func(t *testing.T) {
		err := validator.Validate(&CreateOrderRequest{
			CustomerName: "John Carter",
			AmountCents:  -1,
		})
		assert.Error(t, err)
	})

	t.Run("unknown shipping status fails", func(t *testing.T) {
		err := validator.Validate(&UpdateShippingStatusRequest{Status: "Teleported"})
		assert.Error(t, err)
	})
}
