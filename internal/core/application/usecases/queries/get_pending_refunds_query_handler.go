package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/ledger"
)

// GetPendingRefundsQueryHandler lists ledger entries awaiting refund payment.
type GetPendingRefundsQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingRefundsQueryHandler(db *gorm.DB) GetPendingRefundsQueryHandler {
	return GetPendingRefundsQueryHandler{db: db}
}

func (h GetPendingRefundsQueryHandler) Handle(
	ctx context.Context, _ GetPendingRefundsQuery,
) (GetPendingRefundsQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, vendor_id, vendor_business_name,
		       amount_cents, cancellation_reason, created_at
		FROM ledger_entries
		WHERE payment_status = ?
		ORDER BY created_at`, int(ledger.RefundPending)).Rows()
	if err != nil {
		return GetPendingRefundsQueryResponse{}, err
	}
	defer rows.Close()

	var response GetPendingRefundsQueryResponse
	for rows.Next() {
		var (
			refund PendingRefundResponse

			entryID  uuid.UUID
			orderID  uuid.UUID
			vendorID uuid.UUID
		)
		err = rows.Scan(
			&entryID, &orderID, &vendorID, &refund.VendorBusinessName,
			&refund.AmountCents, &refund.CancellationReason, &refund.CreatedAt,
		)
		if err != nil {
			return GetPendingRefundsQueryResponse{}, err
		}
		refund.EntryID, err = kernel.UUIDFromBytes(entryID[:])
		if err != nil {
			return GetPendingRefundsQueryResponse{}, err
		}
		refund.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return GetPendingRefundsQueryResponse{}, err
		}
		refund.VendorID, err = kernel.UUIDFromBytes(vendorID[:])
		if err != nil {
			return GetPendingRefundsQueryResponse{}, err
		}

		response.Refunds = append(response.Refunds, refund)
		response.TotalOwedCents += refund.AmountCents
	}

	return response, rows.Err()
}
