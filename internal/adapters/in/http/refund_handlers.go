package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"partsflow/internal/core/application/usecases/commands"
	"partsflow/internal/core/application/usecases/queries"
)

// GetPendingRefunds handles GET /api/v1/refunds/pending - reports all
// outstanding vendor refunds and the total amount owed.
func (s *Server) GetPendingRefunds(ctx echo.Context) error {
	response, err := s.queries.GetPendingRefunds.Handle(
		ctx.Request().Context(), queries.NewGetPendingRefundsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	refunds := make([]PendingRefund, len(response.Refunds))
	for i, row := range response.Refunds {
		refunds[i] = PendingRefund{
			EntryID:            row.EntryID.String(),
			OrderID:            row.OrderID.String(),
			VendorID:           row.VendorID.String(),
			VendorBusinessName: row.VendorBusinessName,
			AmountCents:        row.AmountCents,
			CancellationReason: row.CancellationReason,
			CreatedAt:          row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, PendingRefunds{
		Refunds:        refunds,
		TotalOwedCents: response.TotalOwedCents,
	})
}

// ConfirmRefund handles POST /api/v1/refunds/:entryId/confirmation - marks a
// ledger entry's refund as received.
func (s *Server) ConfirmRefund(ctx echo.Context) error {
	entryID, err := pathUUID(ctx, "entryId")
	if err != nil {
		return respondBadRequest(ctx, "invalid ledger entry id")
	}

	cmd, err := commands.NewConfirmRefundCommand(entryID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.ConfirmRefund.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
