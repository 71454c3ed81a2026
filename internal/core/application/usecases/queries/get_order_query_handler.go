package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/errs"
)

// Note stream discriminators. Must match the encoding used by the
// postgres adapter when persisting note rows.
const (
	noteStreamOrder       = 0
	noteStreamProcurement = 1
	noteStreamVendor      = 2
)

// GetOrderQueryHandler loads one order's full read model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler over the given read connection.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order row, its vendor quotes and its note streams.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context, query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.fetchOrderRow(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	vendors, vendorNotes, err := h.fetchVendors(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	for i := range vendors {
		vendors[i].Notes = vendorNotes[vendors[i].ID.String()]
	}
	response.Vendors = vendors

	if err := h.fetchOrderNotes(ctx, query.OrderID(), &response); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) fetchOrderRow(
	ctx context.Context, orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_name, amount_cents, status,
		       shipment_recorded,
		       shipment_weight, shipment_height, shipment_width,
		       shipment_carrier_name, shipment_tracking_number,
		       shipment_bol_number, shipment_tracking_link,
		       pictures_received_from_yard, pictures_sent_to_customer,
		       checklist_present,
		       checklist_vendor_informed_date, checklist_replacement_part_ready_date,
		       checklist_sent_pictures_to_vendor, checklist_sent_diagnostic_report_to_vendor,
		       checklist_yard_agreed_return_shipping, checklist_yard_agreed_replacement,
		       checklist_yard_agreed_replacement_shipping,
		       checklist_additional_cost_part_cents, checklist_additional_cost_shipping_cents,
		       agent_id, version
		FROM orders
		WHERE id = ?`, orderID.String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID)
	}

	var (
		response GetOrderQueryResponse

		id     uuid.UUID
		status int

		shipmentRecorded bool
		shipment         ShipmentResponse

		checklistPresent  bool
		informedDate      sql.NullTime
		partReadyDate     sql.NullTime
		sentPictures      bool
		sentDiagnostic    bool
		agreedReturn      bool
		agreedReplacement bool
		agreedShipping    bool
		costPartCents     sql.NullInt64
		costShippingCents sql.NullInt64

		agentID sql.NullString
	)
	err = rows.Scan(
		&id, &response.CustomerName, &response.AmountCents, &status,
		&shipmentRecorded,
		&shipment.Weight, &shipment.Height, &shipment.Width,
		&shipment.CarrierName, &shipment.TrackingNumber,
		&shipment.BOLNumber, &shipment.TrackingLink,
		&response.PicturesReceivedFromYard, &response.PicturesSentToCustomer,
		&checklistPresent,
		&informedDate, &partReadyDate,
		&sentPictures, &sentDiagnostic,
		&agreedReturn, &agreedReplacement, &agreedShipping,
		&costPartCents, &costShippingCents,
		&agentID, &response.Version,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Status = order.Status(status)

	if shipmentRecorded {
		response.Shipment = &shipment
	}
	if checklistPresent {
		response.Checklist = &ChecklistResponse{
			VendorInformedDate:                     nullTimePtr(informedDate),
			ReplacementPartReadyDate:               nullTimePtr(partReadyDate),
			SentPicturesToVendor:                   sentPictures,
			SentDiagnosticReportToVendor:           sentDiagnostic,
			YardAgreedReturnShipping:               agreedReturn,
			YardAgreedReplacement:                  agreedReplacement,
			YardAgreedReplacementShipping:          agreedShipping,
			AdditionalCostReplacementPartCents:     nullInt64Ptr(costPartCents),
			AdditionalCostReplacementShippingCents: nullInt64Ptr(costShippingCents),
		}
	}
	if agentID.Valid {
		agent, err := kernel.UUIDFromString(agentID.String)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}
		response.AgentID = &agent
	}

	return response, rows.Err()
}

func (h GetOrderQueryHandler) fetchVendors(
	ctx context.Context, orderID kernel.UUID,
) ([]VendorResponse, map[string][]NoteResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, business_name, agent_name, phone_number, email,
		       cost_price_cents, shipping_cost_cents, core_price_cents, total_cost_cents,
		       rating, warranty, mileage,
		       po_status, is_confirmed, payment_confirmed
		FROM vendor_quotes
		WHERE order_id = ?
		ORDER BY created_at`, orderID.String()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var vendors []VendorResponse
	for rows.Next() {
		var (
			vendor   VendorResponse
			id       uuid.UUID
			poStatus int
		)
		err = rows.Scan(
			&id, &vendor.BusinessName, &vendor.AgentName, &vendor.PhoneNumber, &vendor.Email,
			&vendor.CostPriceCents, &vendor.ShippingCostCents,
			&vendor.CorePriceCents, &vendor.TotalCostCents,
			&vendor.Rating, &vendor.Warranty, &vendor.Mileage,
			&poStatus, &vendor.IsConfirmed, &vendor.PaymentConfirmed,
		)
		if err != nil {
			return nil, nil, err
		}
		vendor.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, nil, err
		}
		vendor.POStatus = order.POStatus(poStatus)
		vendors = append(vendors, vendor)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	notes, err := h.fetchVendorNotes(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return vendors, notes, nil
}

func (h GetOrderQueryHandler) fetchVendorNotes(
	ctx context.Context, orderID kernel.UUID,
) (map[string][]NoteResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT vendor_id, text, created_at
		FROM notes
		WHERE order_id = ? AND stream = ?
		ORDER BY created_at, id`, orderID.String(), noteStreamVendor).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make(map[string][]NoteResponse)
	for rows.Next() {
		var (
			vendorID  uuid.UUID
			text      string
			createdAt time.Time
		)
		if err := rows.Scan(&vendorID, &text, &createdAt); err != nil {
			return nil, err
		}
		key := vendorID.String()
		notes[key] = append(notes[key], NoteResponse{Text: text, CreatedAt: createdAt})
	}
	return notes, rows.Err()
}

func (h GetOrderQueryHandler) fetchOrderNotes(
	ctx context.Context, orderID kernel.UUID, response *GetOrderQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT stream, text, created_at
		FROM notes
		WHERE order_id = ? AND stream IN (?, ?)
		ORDER BY created_at, id`,
		orderID.String(), noteStreamOrder, noteStreamProcurement).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			stream    int
			text      string
			createdAt time.Time
		)
		if err := rows.Scan(&stream, &text, &createdAt); err != nil {
			return err
		}
		note := NoteResponse{Text: text, CreatedAt: createdAt}
		if stream == noteStreamProcurement {
			response.ProcurementNotes = append(response.ProcurementNotes, note)
		} else {
			response.Notes = append(response.Notes, note)
		}
	}
	return rows.Err()
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
