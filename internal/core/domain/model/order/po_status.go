package order

import (
	"fmt"

	"partsflow/internal/pkg/errs"
)

// POStatus represents the purchase-order negotiation state of a single vendor
// quote. It moves forward POPending -> POSent -> POConfirmed and may branch to
// POCanceled from POSent or POConfirmed; POCanceled is final and freezes the
// quote.
type POStatus int

const (
	// POStatusUnknown represents an invalid or undefined PO status.
	POStatusUnknown POStatus = iota

	// POStatusPending is the initial state of a freshly attached vendor quote.
	// Identity and cost fields remain editable.
	POStatusPending

	// POStatusSent indicates the purchase order has been sent to the vendor.
	// Identity and contact fields are frozen from here on.
	POStatusSent

	// POStatusConfirmed indicates the vendor accepted the purchase order.
	POStatusConfirmed

	// POStatusCanceled indicates the purchase order was withdrawn.
	// A canceled quote is immutable and can never become the active vendor.
	POStatusCanceled
)

func getPOStatusStrings() map[POStatus]string {
	return map[POStatus]string{
		POStatusUnknown:   "Unknown",
		POStatusPending:   "POPending",
		POStatusSent:      "POSent",
		POStatusConfirmed: "POConfirmed",
		POStatusCanceled:  "POCanceled",
	}
}

// Validate checks if the POStatus value is one of the defined states.
func (s POStatus) Validate() error {
	if s == POStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("poStatus is invalid",
			fmt.Errorf("%d is not a valid PO status", s))
	}
	if _, ok := getPOStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("poStatus is invalid",
			fmt.Errorf("%d is not a valid PO status", s))
	}
	return nil
}

// String returns the human-readable name of the PO status.
func (s POStatus) String() string {
	if str, ok := getPOStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanCancel reports whether the quote may still be withdrawn from this state.
// A canceled quote cannot be canceled twice.
func (s POStatus) CanCancel() bool {
	return s == POStatusPending || s == POStatusSent || s == POStatusConfirmed
}

// GeneratesRefundObligation reports whether canceling from this state writes a
// snapshot into the refund ledger. Only confirmed vendors ever had payment at
// risk.
func (s POStatus) GeneratesRefundObligation() bool {
	return s == POStatusConfirmed
}
