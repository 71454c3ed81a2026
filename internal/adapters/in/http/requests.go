package http

import "time"

// CreateOrderRequest is the payload for opening a new order.
type CreateOrderRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	AmountCents  int64  `json:"amountCents"  validate:"gte=0"`
}

// AttachVendorRequest is the payload for attaching a vendor quote.
type AttachVendorRequest struct {
	BusinessName string `json:"businessName" validate:"required"`
	AgentName    string `json:"agentName"    validate:"required"`
	PhoneNumber  string `json:"phoneNumber"  validate:"required"`
	Email        string `json:"email"        validate:"required,email"`

	CostPriceCents    int64 `json:"costPriceCents"    validate:"gte=0"`
	ShippingCostCents int64 `json:"shippingCostCents" validate:"gte=0"`
	CorePriceCents    int64 `json:"corePriceCents"    validate:"gte=0"`
}

// VendorContactSection is the optional contact group of a vendor update.
type VendorContactSection struct {
	BusinessName string `json:"businessName" validate:"required"`
	AgentName    string `json:"agentName"    validate:"required"`
	PhoneNumber  string `json:"phoneNumber"  validate:"required"`
	Email        string `json:"email"        validate:"required,email"`
}

// VendorCostsSection is the optional cost group of a vendor update.
type VendorCostsSection struct {
	CostPriceCents    int64 `json:"costPriceCents"    validate:"gte=0"`
	ShippingCostCents int64 `json:"shippingCostCents" validate:"gte=0"`
	CorePriceCents    int64 `json:"corePriceCents"    validate:"gte=0"`
}

// VendorDetailsSection is the optional descriptive group of a vendor update.
type VendorDetailsSection struct {
	Rating   int    `json:"rating"  validate:"gte=0,lte=5"`
	Warranty string `json:"warranty"`
	Mileage  int    `json:"mileage" validate:"gte=0"`
}

// UpdateVendorRequest is the payload for editing a vendor quote. Absent
// sections leave that group of fields untouched.
type UpdateVendorRequest struct {
	Contact *VendorContactSection `json:"contact,omitempty" validate:"omitempty"`
	Costs   *VendorCostsSection   `json:"costs,omitempty"   validate:"omitempty"`
	Details *VendorDetailsSection `json:"details,omitempty"  validate:"omitempty"`
}

// CancelVendorRequest is the payload for canceling a vendor quote.
type CancelVendorRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// RecordShipmentRequest is the payload for recording shipment details.
type RecordShipmentRequest struct {
	Weight float64 `json:"weight" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
	Width  float64 `json:"width"  validate:"gt=0"`

	CarrierName    string `json:"carrierName"    validate:"required"`
	TrackingNumber string `json:"trackingNumber" validate:"required"`
	BOLNumber      string `json:"bolNumber"      validate:"required"`
	TrackingLink   string `json:"trackingLink"   validate:"omitempty,url"`
}

// UpdateShippingStatusRequest is the payload for a carrier progress update.
type UpdateShippingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ShipOut Intransit Delivered"`
}

// EscalateLitigationRequest is the payload for escalating an order to litigation.
type EscalateLitigationRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// CloseReplacementRequest is the payload for closing a replacement negotiation.
type CloseReplacementRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=completed cancelled"`
}

// UpdateChecklistRequest is the partial update for the procurement checklist.
// Absent fields keep their current value.
type UpdateChecklistRequest struct {
	VendorInformedDate       *time.Time `json:"vendorInformedDate,omitempty"`
	ReplacementPartReadyDate *time.Time `json:"replacementPartReadyDate,omitempty"`

	SentPicturesToVendor          *bool `json:"sentPicturesToVendor,omitempty"`
	SentDiagnosticReportToVendor  *bool `json:"sentDiagnosticReportToVendor,omitempty"`
	YardAgreedReturnShipping      *bool `json:"yardAgreedReturnShipping,omitempty"`
	YardAgreedReplacement         *bool `json:"yardAgreedReplacement,omitempty"`
	YardAgreedReplacementShipping *bool `json:"yardAgreedReplacementShipping,omitempty"`

	AdditionalCostReplacementPartCents     *int64 `json:"additionalCostReplacementPartCents,omitempty"     validate:"omitempty,gte=0"`
	AdditionalCostReplacementShippingCents *int64 `json:"additionalCostReplacementShippingCents,omitempty" validate:"omitempty,gte=0"`
}

// MarkPicturesRequest is the payload for recording a picture exchange stage.
type MarkPicturesRequest struct {
	Stage string `json:"stage" validate:"required,oneof=received sent"`
}

// AddNoteRequest is the payload for appending a note. A vendor ID routes the
// note to that vendor's stream; otherwise Internal selects between the
// customer-visible and procurement streams.
type AddNoteRequest struct {
	Text     string  `json:"text" validate:"required"`
	VendorID *string `json:"vendorId,omitempty" validate:"omitempty,uuid"`
	Internal bool    `json:"internal"`
}

// UpdateRotationRequest is the payload for editing the agent rotation pool.
type UpdateRotationRequest struct {
	AgentID string `json:"agentId" validate:"required,uuid"`
	Action  string `json:"action"  validate:"required,oneof=add remove"`
}
