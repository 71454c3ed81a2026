package order

import (
	"fmt"

	"partsflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine whose transitions are driven by vendor
// sub-state: the aggregate derives the order status from purchase-order
// negotiation, payment, shipment and post-delivery events.
//
// Primary transition graph:
//
//	LocatePending ──> POPending ──> POSent ──> POConfirmed
//	                     ^            │            │
//	                     └────────────┘ (PO canceled, another vendor pending)
//	POConfirmed ──> VendorPaymentPending ──> VendorPaymentConfirmed
//	VendorPaymentConfirmed ──> ShippingPending ──> ShipOut ──> Intransit ──> Delivered
//	{POConfirmed..Delivered} ──> Litigation                      (terminal)
//	Delivered ──> Replacement ──> ReplacementCancelled           (terminal)
//	Replacement ──> Delivered                                    (new cycle)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// LocatePending is the initial status when a lead converts to an order
	// and no vendor has been sourced yet.
	LocatePending

	// POPending indicates at least one vendor quote is attached and a
	// purchase order has not yet been sent.
	POPending

	// POSent indicates a purchase order has been sent to at least one vendor.
	POSent

	// POConfirmed indicates exactly one vendor has confirmed the purchase
	// order and is now the active vendor.
	POConfirmed

	// VendorPaymentPending indicates payment to the active vendor has been
	// initiated but not yet confirmed.
	VendorPaymentPending

	// VendorPaymentConfirmed indicates payment to the active vendor is settled.
	VendorPaymentConfirmed

	// ShippingPending indicates shipment details have been recorded and the
	// part awaits dispatch.
	ShippingPending

	// ShipOut indicates the part has left the yard.
	ShipOut

	// Intransit indicates the carrier has the part in transit.
	Intransit

	// Delivered indicates the customer has received the part.
	Delivered

	// Litigation is the terminal dispute state. No transition leaves it.
	Litigation

	// Replacement is the post-delivery negotiation branch for obtaining a
	// replacement part from the yard.
	Replacement

	// ReplacementCancelled is the terminal state reached when the yard
	// declines or the replacement negotiation fails.
	ReplacementCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "Unknown",
		LocatePending:          "LocatePending",
		POPending:              "POPending",
		POSent:                 "POSent",
		POConfirmed:            "POConfirmed",
		VendorPaymentPending:   "VendorPaymentPending",
		VendorPaymentConfirmed: "VendorPaymentConfirmed",
		ShippingPending:        "ShippingPending",
		ShipOut:                "ShipOut",
		Intransit:              "Intransit",
		Delivered:              "Delivered",
		Litigation:             "Litigation",
		Replacement:            "Replacement",
		ReplacementCancelled:   "ReplacementCancelled",
	}
}

// Validate checks if the Status value is one of the defined order statuses.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// orders from persistence or parsing external input.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
// Litigation and ReplacementCancelled are hard-terminal; Delivered is not,
// because litigation escalation and the replacement branch start there.
func (s Status) IsTerminal() bool {
	return s == Litigation || s == ReplacementCancelled
}

// RequiresActiveVendor reports whether the status implies exactly one
// confirmed vendor quote drives the order. This is the aggregate-wide
// invariant checked after every transition.
func (s Status) RequiresActiveVendor() bool {
	switch s {
	case POConfirmed, VendorPaymentPending, VendorPaymentConfirmed,
		ShippingPending, ShipOut, Intransit, Delivered:
		return true
	default:
		return false
	}
}

// CanEscalateToLitigation reports whether manual escalation to the terminal
// dispute state is permitted. Litigation is reachable from any non-terminal
// state past PO confirmation.
func (s Status) CanEscalateToLitigation() bool {
	return s.RequiresActiveVendor()
}

// isSourcing reports whether the order is still in the vendor sourcing phase,
// before any vendor confirmed the purchase order.
func (s Status) isSourcing() bool {
	return s == LocatePending || s == POPending || s == POSent
}
