package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/ledger"
	"partsflow/internal/core/domain/model/order"
)

// GetCanceledVendorsQueryHandler lists canceled quotes with their ledger state.
type GetCanceledVendorsQueryHandler struct {
	db *gorm.DB
}

func NewGetCanceledVendorsQueryHandler(db *gorm.DB) GetCanceledVendorsQueryHandler {
	return GetCanceledVendorsQueryHandler{db: db}
}

// Handle left-joins canceled quotes against the refund ledger. Quotes canceled
// before confirmation have no ledger row and come back with empty refund
// fields.
func (h GetCanceledVendorsQueryHandler) Handle(
	ctx context.Context, query GetCanceledVendorsQuery,
) (GetCanceledVendorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCanceledVendorsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT v.id, v.business_name, v.total_cost_cents,
		       l.id, l.payment_status, l.cancellation_reason
		FROM vendor_quotes v
		LEFT JOIN ledger_entries l ON l.vendor_id = v.id AND l.order_id = v.order_id
		WHERE v.order_id = ? AND v.po_status = ?
		ORDER BY v.created_at`,
		query.OrderID().String(), int(order.POStatusCanceled)).Rows()
	if err != nil {
		return GetCanceledVendorsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetCanceledVendorsQueryResponse{OrderID: query.OrderID()}
	for rows.Next() {
		var (
			vendor CanceledVendorResponse

			vendorID uuid.UUID
			entryID  sql.NullString
			status   sql.NullInt64
			reason   sql.NullString
		)
		err = rows.Scan(
			&vendorID, &vendor.BusinessName, &vendor.TotalCostCents,
			&entryID, &status, &reason,
		)
		if err != nil {
			return GetCanceledVendorsQueryResponse{}, err
		}
		vendor.VendorID, err = kernel.UUIDFromBytes(vendorID[:])
		if err != nil {
			return GetCanceledVendorsQueryResponse{}, err
		}
		if entryID.Valid {
			id, err := kernel.UUIDFromString(entryID.String)
			if err != nil {
				return GetCanceledVendorsQueryResponse{}, err
			}
			vendor.RefundEntryID = &id
			vendor.RefundStatus = ledger.PaymentStatus(status.Int64).String()
			vendor.RefundReason = reason.String
		}
		response.Vendors = append(response.Vendors, vendor)
	}

	return response, rows.Err()
}
