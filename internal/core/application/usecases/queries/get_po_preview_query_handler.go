package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/errs"
)

// GetPOPreviewQueryHandler builds the purchase order document read model.
type GetPOPreviewQueryHandler struct {
	db *gorm.DB
}

func NewGetPOPreviewQueryHandler(db *gorm.DB) GetPOPreviewQueryHandler {
	return GetPOPreviewQueryHandler{db: db}
}

// Handle loads the order and vendor pair. Canceled quotes cannot be previewed.
func (h GetPOPreviewQueryHandler) Handle(
	ctx context.Context, query GetPOPreviewQuery,
) (GetPOPreviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPOPreviewQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.customer_name,
		       v.id, v.business_name, v.agent_name, v.phone_number, v.email,
		       v.cost_price_cents, v.shipping_cost_cents, v.core_price_cents, v.total_cost_cents,
		       v.warranty, v.mileage
		FROM orders o
		JOIN vendor_quotes v ON v.order_id = o.id
		WHERE o.id = ? AND v.id = ? AND v.po_status <> ?`,
		query.OrderID().String(), query.VendorID().String(),
		int(order.POStatusCanceled)).Rows()
	if err != nil {
		return GetPOPreviewQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return GetPOPreviewQueryResponse{}, err
		}
		return GetPOPreviewQueryResponse{},
			errs.NewObjectNotFoundError("vendorID", query.VendorID())
	}

	var (
		response GetPOPreviewQueryResponse
		orderID  uuid.UUID
		vendorID uuid.UUID
	)
	err = rows.Scan(
		&orderID, &response.CustomerName,
		&vendorID, &response.VendorBusinessName, &response.VendorAgentName,
		&response.VendorPhoneNumber, &response.VendorEmail,
		&response.CostPriceCents, &response.ShippingCostCents,
		&response.CorePriceCents, &response.TotalCostCents,
		&response.Warranty, &response.Mileage,
	)
	if err != nil {
		return GetPOPreviewQueryResponse{}, err
	}

	response.OrderID, err = kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetPOPreviewQueryResponse{}, err
	}
	response.VendorID, err = kernel.UUIDFromBytes(vendorID[:])
	if err != nil {
		return GetPOPreviewQueryResponse{}, err
	}
	response.PONumber = poNumber(response.OrderID, response.VendorID)

	return response, rows.Err()
}

// poNumber derives a stable human-readable purchase order number from the
// first segments of the order and vendor identifiers.
func poNumber(orderID, vendorID kernel.UUID) string {
	orderPart := strings.SplitN(orderID.String(), "-", 2)[0]
	vendorPart := strings.SplitN(vendorID.String(), "-", 2)[0]
	return fmt.Sprintf("PO-%s-%s", strings.ToUpper(orderPart), strings.ToUpper(vendorPart))
}
