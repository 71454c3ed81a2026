package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/errs"
)

// GetActiveVendorQueryHandler resolves the single confirmed vendor of an order.
type GetActiveVendorQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveVendorQueryHandler(db *gorm.DB) GetActiveVendorQueryHandler {
	return GetActiveVendorQueryHandler{db: db}
}

// Handle joins the order with its confirmed, non-canceled vendor quote. A
// NotFound error means either the order does not exist or it has no active
// vendor yet.
func (h GetActiveVendorQueryHandler) Handle(
	ctx context.Context, query GetActiveVendorQuery,
) (GetActiveVendorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveVendorQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.amount_cents,
		       v.id, v.business_name, v.agent_name, v.phone_number, v.email,
		       v.cost_price_cents, v.shipping_cost_cents, v.core_price_cents, v.total_cost_cents,
		       v.rating, v.warranty, v.mileage,
		       v.po_status, v.is_confirmed, v.payment_confirmed
		FROM orders o
		JOIN vendor_quotes v ON v.order_id = o.id
		WHERE o.id = ? AND v.is_confirmed AND v.po_status = ?`,
		query.OrderID().String(), int(order.POStatusConfirmed)).Rows()
	if err != nil {
		return GetActiveVendorQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return GetActiveVendorQueryResponse{}, err
		}
		return GetActiveVendorQueryResponse{},
			errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	var (
		response GetActiveVendorQueryResponse

		orderID  uuid.UUID
		vendorID uuid.UUID
		poStatus int
	)
	vendor := &response.Vendor
	err = rows.Scan(
		&orderID, &response.OrderAmountCents,
		&vendorID, &vendor.BusinessName, &vendor.AgentName, &vendor.PhoneNumber, &vendor.Email,
		&vendor.CostPriceCents, &vendor.ShippingCostCents,
		&vendor.CorePriceCents, &vendor.TotalCostCents,
		&vendor.Rating, &vendor.Warranty, &vendor.Mileage,
		&poStatus, &vendor.IsConfirmed, &vendor.PaymentConfirmed,
	)
	if err != nil {
		return GetActiveVendorQueryResponse{}, err
	}

	response.OrderID, err = kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetActiveVendorQueryResponse{}, err
	}
	vendor.ID, err = kernel.UUIDFromBytes(vendorID[:])
	if err != nil {
		return GetActiveVendorQueryResponse{}, err
	}
	vendor.POStatus = order.POStatus(poStatus)

	response.ProfitCents = response.OrderAmountCents - vendor.TotalCostCents
	if response.OrderAmountCents > 0 {
		response.ProfitMargin =
			float64(response.ProfitCents) / float64(response.OrderAmountCents)
	}

	return response, rows.Err()
}
