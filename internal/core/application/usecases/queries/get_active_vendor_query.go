package queries

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var ErrGetActiveVendorQueryIsNotConstructed = errors.New(
	"GetActiveVendorQuery must be created via NewGetActiveVendorQuery constructor",
)

// GetActiveVendorQuery retrieves the confirmed vendor of an order together
// with the order's profit figures.
type GetActiveVendorQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetActiveVendorQuery(orderID kernel.UUID) (GetActiveVendorQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetActiveVendorQuery{}, err
	}

	return GetActiveVendorQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetActiveVendorQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveVendorQueryIsNotConstructed)
}

func (q GetActiveVendorQuery) OrderID() kernel.UUID { return q.orderID }

// GetActiveVendorQueryResponse pairs the active vendor with the margin the
// order earns against its quote. ProfitMargin is a fraction of the customer
// amount, e.g. 0.525 for a 52.5% margin.
type GetActiveVendorQueryResponse struct {
	OrderID          kernel.UUID
	OrderAmountCents int64

	Vendor VendorResponse

	ProfitCents  int64
	ProfitMargin float64
}
