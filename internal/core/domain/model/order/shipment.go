package order

import (
	"partsflow/internal/pkg/errs"
)

// Domain errors for shipment construction.
var (
	// ErrCarrierNameIsRequired is returned when recording a shipment without a carrier.
	ErrCarrierNameIsRequired = errs.NewValueIsRequiredError("carrierName")
	// ErrTrackingNumberIsRequired is returned when recording a shipment without a tracking number.
	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("trackingNumber")
	// ErrShipmentDimensionIsInvalid is returned for negative weight or dimensions.
	ErrShipmentDimensionIsInvalid = errs.NewValueIsInvalidError("shipment dimensions must not be negative")
)

// Shipment is a value object holding the physical and carrier details of an
// order shipment. It is present on the order only once recorded, and recording
// identical details twice is an idempotent no-op at the aggregate level, so
// equality comparison is part of its contract.
type Shipment struct {
	weight         float64
	height         float64
	width          float64
	carrierName    string
	trackingNumber string
	bolNumber      string
	trackingLink   string
}

// NewShipment creates a shipment detail record. Carrier name and tracking
// number are required; BOL number and tracking link are optional; weight and
// dimensions must not be negative.
func NewShipment(
	weight, height, width float64,
	carrierName, trackingNumber, bolNumber, trackingLink string,
) (Shipment, error) {
	if carrierName == "" {
		return Shipment{}, ErrCarrierNameIsRequired
	}
	if trackingNumber == "" {
		return Shipment{}, ErrTrackingNumberIsRequired
	}
	if weight < 0 || height < 0 || width < 0 {
		return Shipment{}, ErrShipmentDimensionIsInvalid
	}

	return Shipment{
		weight:         weight,
		height:         height,
		width:          width,
		carrierName:    carrierName,
		trackingNumber: trackingNumber,
		bolNumber:      bolNumber,
		trackingLink:   trackingLink,
	}, nil
}

// Weight returns the shipment weight.
func (s Shipment) Weight() float64 { return s.weight }

// Height returns the shipment height.
func (s Shipment) Height() float64 { return s.height }

// Width returns the shipment width.
func (s Shipment) Width() float64 { return s.width }

// CarrierName returns the carrier handling the shipment.
func (s Shipment) CarrierName() string { return s.carrierName }

// TrackingNumber returns the carrier tracking number.
func (s Shipment) TrackingNumber() string { return s.trackingNumber }

// BOLNumber returns the bill-of-lading number, if any.
func (s Shipment) BOLNumber() string { return s.bolNumber }

// TrackingLink returns the carrier tracking URL, if any.
func (s Shipment) TrackingLink() string { return s.trackingLink }

// IsEqual compares two shipment detail records field by field.
// Used by the aggregate's idempotency guard on repeated submissions.
func (s Shipment) IsEqual(other Shipment) bool {
	return s == other
}
