package queries

import (
	"time"

	"partsflow/internal/core/domain/model/kernel"
)

// GetPendingRefundsQuery lists all refund obligations still awaiting payment,
// oldest first. Parameterless; always constructed valid.
type GetPendingRefundsQuery struct{}

func NewGetPendingRefundsQuery() GetPendingRefundsQuery {
	return GetPendingRefundsQuery{}
}

// PendingRefundResponse is one outstanding refund position.
type PendingRefundResponse struct {
	EntryID            kernel.UUID
	OrderID            kernel.UUID
	VendorID           kernel.UUID
	VendorBusinessName string
	AmountCents        int64
	CancellationReason string
	CreatedAt          time.Time
}

// GetPendingRefundsQueryResponse carries all outstanding refunds and their sum.
type GetPendingRefundsQueryResponse struct {
	Refunds        []PendingRefundResponse
	TotalOwedCents int64
}
