// Package queries contains read-only operations for the fulfillment system.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the domain
// aggregates that guard writes.
package queries

import (
	"errors"
	"time"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its vendors and notes.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's full detail.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// VendorResponse is the read model for one vendor quote.
type VendorResponse struct {
	ID           kernel.UUID
	BusinessName string
	AgentName    string
	PhoneNumber  string
	Email        string

	CostPriceCents    int64
	ShippingCostCents int64
	CorePriceCents    int64
	TotalCostCents    int64

	Rating   int
	Warranty string
	Mileage  int

	POStatus         order.POStatus
	IsConfirmed      bool
	PaymentConfirmed bool

	Notes []NoteResponse
}

// ShipmentResponse is the read model for recorded shipment details.
type ShipmentResponse struct {
	Weight         float64
	Height         float64
	Width          float64
	CarrierName    string
	TrackingNumber string
	BOLNumber      string
	TrackingLink   string
}

// NoteResponse is the read model for one audit note.
type NoteResponse struct {
	Text      string
	CreatedAt time.Time
}

// ChecklistResponse is the read model for the replacement procurement checklist.
type ChecklistResponse struct {
	VendorInformedDate       *time.Time
	ReplacementPartReadyDate *time.Time

	SentPicturesToVendor          bool
	SentDiagnosticReportToVendor  bool
	YardAgreedReturnShipping      bool
	YardAgreedReplacement         bool
	YardAgreedReplacementShipping bool

	AdditionalCostReplacementPartCents     *int64
	AdditionalCostReplacementShippingCents *int64
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	AmountCents  int64
	Status       order.Status

	Vendors   []VendorResponse
	Shipment  *ShipmentResponse
	Checklist *ChecklistResponse

	PicturesReceivedFromYard bool
	PicturesSentToCustomer   bool

	Notes            []NoteResponse
	ProcurementNotes []NoteResponse

	AgentID *kernel.UUID
	Version int
}
