package queries

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var ErrGetCanceledVendorsQueryIsNotConstructed = errors.New(
	"GetCanceledVendorsQuery must be created via NewGetCanceledVendorsQuery constructor",
)

// GetCanceledVendorsQuery lists the canceled vendor quotes of an order, each
// with its refund position if cancellation produced one.
type GetCanceledVendorsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCanceledVendorsQuery(orderID kernel.UUID) (GetCanceledVendorsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetCanceledVendorsQuery{}, err
	}

	return GetCanceledVendorsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetCanceledVendorsQuery) Validate() error {
	return q.guard.Validate(ErrGetCanceledVendorsQueryIsNotConstructed)
}

func (q GetCanceledVendorsQuery) OrderID() kernel.UUID { return q.orderID }

// CanceledVendorResponse is one canceled quote. RefundStatus is empty when the
// cancellation happened before confirmation and no refund is owed.
type CanceledVendorResponse struct {
	VendorID       kernel.UUID
	BusinessName   string
	TotalCostCents int64

	RefundEntryID *kernel.UUID
	RefundStatus  string
	RefundReason  string
}

// GetCanceledVendorsQueryResponse wraps the canceled vendor list.
type GetCanceledVendorsQueryResponse struct {
	OrderID kernel.UUID
	Vendors []CanceledVendorResponse
}
