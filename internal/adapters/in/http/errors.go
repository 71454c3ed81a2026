package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"partsflow/internal/pkg/errs"
)

var (
	errInvalidOrderID  = errors.New("invalid order id")
	errInvalidVendorID = errors.New("invalid vendor id")
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps an application error onto an HTTP response.
//
// AlreadySet is deliberately not an error at this boundary: retrying an
// idempotent action (confirming twice, marking pictures twice) returns
// 200 so UI callers need no special casing.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrAlreadySet):
		return ctx.NoContent(http.StatusOK)
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

// respondBadRequest reports a malformed or rejected request payload.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
