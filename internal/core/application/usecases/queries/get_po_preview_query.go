package queries

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var ErrGetPOPreviewQueryIsNotConstructed = errors.New(
	"GetPOPreviewQuery must be created via NewGetPOPreviewQuery constructor",
)

// GetPOPreviewQuery assembles the data for a purchase order document sent to
// one vendor. The preview is available for any non-canceled quote so agents
// can review terms before sending.
type GetPOPreviewQuery struct {
	orderID  kernel.UUID
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPOPreviewQuery(orderID, vendorID kernel.UUID) (GetPOPreviewQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPOPreviewQuery{}, err
	}
	if err := vendorID.Validate(); err != nil {
		return GetPOPreviewQuery{}, err
	}

	return GetPOPreviewQuery{
		orderID:  orderID,
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetPOPreviewQuery) Validate() error {
	return q.guard.Validate(ErrGetPOPreviewQueryIsNotConstructed)
}

func (q GetPOPreviewQuery) OrderID() kernel.UUID  { return q.orderID }
func (q GetPOPreviewQuery) VendorID() kernel.UUID { return q.vendorID }

// GetPOPreviewQueryResponse carries the purchase order document data.
// PONumber is derived from the order and vendor identifiers so repeated
// previews of the same pair produce the same number.
type GetPOPreviewQueryResponse struct {
	PONumber string

	OrderID      kernel.UUID
	CustomerName string

	VendorID           kernel.UUID
	VendorBusinessName string
	VendorAgentName    string
	VendorPhoneNumber  string
	VendorEmail        string

	CostPriceCents    int64
	ShippingCostCents int64
	CorePriceCents    int64
	TotalCostCents    int64

	Warranty string
	Mileage  int
}
