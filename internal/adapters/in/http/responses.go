package http

import (
	"time"

	"partsflow/internal/core/application/usecases/queries"
	"partsflow/internal/core/domain/model/kernel"
)

// Note is one audit note in API responses.
type Note struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Vendor is the API representation of a vendor quote.
type Vendor struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
	AgentName    string `json:"agentName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`

	CostPriceCents    int64 `json:"costPriceCents"`
	ShippingCostCents int64 `json:"shippingCostCents"`
	CorePriceCents    int64 `json:"corePriceCents"`
	TotalCostCents    int64 `json:"totalCostCents"`

	Rating   int    `json:"rating"`
	Warranty string `json:"warranty"`
	Mileage  int    `json:"mileage"`

	POStatus         string `json:"poStatus"`
	IsConfirmed      bool   `json:"isConfirmed"`
	PaymentConfirmed bool   `json:"paymentConfirmed"`

	Notes []Note `json:"notes"`
}

// Shipment is the API representation of recorded shipment details.
type Shipment struct {
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`

	CarrierName    string `json:"carrierName"`
	TrackingNumber string `json:"trackingNumber"`
	BOLNumber      string `json:"bolNumber"`
	TrackingLink   string `json:"trackingLink,omitempty"`
}

// Checklist is the API representation of the procurement checklist.
type Checklist struct {
	VendorInformedDate       *time.Time `json:"vendorInformedDate,omitempty"`
	ReplacementPartReadyDate *time.Time `json:"replacementPartReadyDate,omitempty"`

	SentPicturesToVendor          bool `json:"sentPicturesToVendor"`
	SentDiagnosticReportToVendor  bool `json:"sentDiagnosticReportToVendor"`
	YardAgreedReturnShipping      bool `json:"yardAgreedReturnShipping"`
	YardAgreedReplacement         bool `json:"yardAgreedReplacement"`
	YardAgreedReplacementShipping bool `json:"yardAgreedReplacementShipping"`

	AdditionalCostReplacementPartCents     *int64 `json:"additionalCostReplacementPartCents,omitempty"`
	AdditionalCostReplacementShippingCents *int64 `json:"additionalCostReplacementShippingCents,omitempty"`
}

// Order is the full order detail returned by GET /orders/{orderId}.
type Order struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	AmountCents  int64  `json:"amountCents"`
	Status       string `json:"status"`

	Vendors   []Vendor   `json:"vendors"`
	Shipment  *Shipment  `json:"shipment,omitempty"`
	Checklist *Checklist `json:"checklist,omitempty"`

	PicturesReceivedFromYard bool `json:"picturesReceivedFromYard"`
	PicturesSentToCustomer   bool `json:"picturesSentToCustomer"`

	Notes            []Note `json:"notes"`
	ProcurementNotes []Note `json:"procurementNotes"`

	AgentID *string `json:"agentId,omitempty"`
	Version int     `json:"version"`
}

// OpenOrder is one row of the open order listing.
type OpenOrder struct {
	ID               string  `json:"id"`
	CustomerName     string  `json:"customerName"`
	AmountCents      int64   `json:"amountCents"`
	Status           string  `json:"status"`
	AgentID          *string `json:"agentId,omitempty"`
	ActiveVendorName string  `json:"activeVendorName,omitempty"`
}

// ActiveVendor is the active vendor view with profitability figures.
type ActiveVendor struct {
	OrderID          string  `json:"orderId"`
	OrderAmountCents int64   `json:"orderAmountCents"`
	Vendor           Vendor  `json:"vendor"`
	ProfitCents      int64   `json:"profitCents"`
	ProfitMargin     float64 `json:"profitMargin"`
}

// CanceledVendor is one row of the canceled vendor listing with its refund
// ledger state.
type CanceledVendor struct {
	VendorID       string  `json:"vendorId"`
	BusinessName   string  `json:"businessName"`
	TotalCostCents int64   `json:"totalCostCents"`
	RefundEntryID  *string `json:"refundEntryId,omitempty"`
	RefundStatus   string  `json:"refundStatus"`
	RefundReason   string  `json:"refundReason,omitempty"`
}

// POPreview is the rendered purchase order document data.
type POPreview struct {
	PONumber string `json:"poNumber"`

	OrderID      string `json:"orderId"`
	CustomerName string `json:"customerName"`

	VendorID           string `json:"vendorId"`
	VendorBusinessName string `json:"vendorBusinessName"`
	VendorAgentName    string `json:"vendorAgentName"`
	VendorPhoneNumber  string `json:"vendorPhoneNumber"`
	VendorEmail        string `json:"vendorEmail"`

	CostPriceCents    int64 `json:"costPriceCents"`
	ShippingCostCents int64 `json:"shippingCostCents"`
	CorePriceCents    int64 `json:"corePriceCents"`
	TotalCostCents    int64 `json:"totalCostCents"`

	Warranty string `json:"warranty"`
	Mileage  int    `json:"mileage"`
}

// PendingRefund is one outstanding refund owed by a canceled vendor.
type PendingRefund struct {
	EntryID            string    `json:"entryId"`
	OrderID            string    `json:"orderId"`
	VendorID           string    `json:"vendorId"`
	VendorBusinessName string    `json:"vendorBusinessName"`
	AmountCents        int64     `json:"amountCents"`
	CancellationReason string    `json:"cancellationReason"`
	CreatedAt          time.Time `json:"createdAt"`
}

// PendingRefunds is the full outstanding refund report.
type PendingRefunds struct {
	Refunds        []PendingRefund `json:"refunds"`
	TotalOwedCents int64           `json:"totalOwedCents"`
}

func uuidPtrToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func notesToResponse(notes []queries.NoteResponse) []Note {
	response := make([]Note, len(notes))
	for i, note := range notes {
		response[i] = Note{Text: note.Text, CreatedAt: note.CreatedAt}
	}
	return response
}

func vendorToResponse(vendor queries.VendorResponse) Vendor {
	return Vendor{
		ID:           vendor.ID.String(),
		BusinessName: vendor.BusinessName,
		AgentName:    vendor.AgentName,
		PhoneNumber:  vendor.PhoneNumber,
		Email:        vendor.Email,

		CostPriceCents:    vendor.CostPriceCents,
		ShippingCostCents: vendor.ShippingCostCents,
		CorePriceCents:    vendor.CorePriceCents,
		TotalCostCents:    vendor.TotalCostCents,

		Rating:   vendor.Rating,
		Warranty: vendor.Warranty,
		Mileage:  vendor.Mileage,

		POStatus:         vendor.POStatus.String(),
		IsConfirmed:      vendor.IsConfirmed,
		PaymentConfirmed: vendor.PaymentConfirmed,

		Notes: notesToResponse(vendor.Notes),
	}
}

func orderToResponse(order queries.GetOrderQueryResponse) Order {
	response := Order{
		ID:           order.ID.String(),
		CustomerName: order.CustomerName,
		AmountCents:  order.AmountCents,
		Status:       order.Status.String(),

		PicturesReceivedFromYard: order.PicturesReceivedFromYard,
		PicturesSentToCustomer:   order.PicturesSentToCustomer,

		Notes:            notesToResponse(order.Notes),
		ProcurementNotes: notesToResponse(order.ProcurementNotes),

		AgentID: uuidPtrToString(order.AgentID),
		Version: order.Version,
	}

	response.Vendors = make([]Vendor, len(order.Vendors))
	for i, vendor := range order.Vendors {
		response.Vendors[i] = vendorToResponse(vendor)
	}

	if order.Shipment != nil {
		response.Shipment = &Shipment{
			Weight:         order.Shipment.Weight,
			Height:         order.Shipment.Height,
			Width:          order.Shipment.Width,
			CarrierName:    order.Shipment.CarrierName,
			TrackingNumber: order.Shipment.TrackingNumber,
			BOLNumber:      order.Shipment.BOLNumber,
			TrackingLink:   order.Shipment.TrackingLink,
		}
	}
	if order.Checklist != nil {
		response.Checklist = &Checklist{
			VendorInformedDate:       order.Checklist.VendorInformedDate,
			ReplacementPartReadyDate: order.Checklist.ReplacementPartReadyDate,

			SentPicturesToVendor:          order.Checklist.SentPicturesToVendor,
			SentDiagnosticReportToVendor:  order.Checklist.SentDiagnosticReportToVendor,
			YardAgreedReturnShipping:      order.Checklist.YardAgreedReturnShipping,
			YardAgreedReplacement:         order.Checklist.YardAgreedReplacement,
			YardAgreedReplacementShipping: order.Checklist.YardAgreedReplacementShipping,

			AdditionalCostReplacementPartCents:     order.Checklist.AdditionalCostReplacementPartCents,
			AdditionalCostReplacementShippingCents: order.Checklist.AdditionalCostReplacementShippingCents,
		}
	}

	return response
}
