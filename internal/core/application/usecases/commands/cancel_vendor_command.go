package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var (
	ErrCancelVendorCommandIsNotConstructed = errors.New(
		"CancelVendorCommand must be created via NewCancelVendorCommand constructor",
	)
	ErrCancellationReasonIsRequired = errors.New("cancellation reason is required")
)

// CancelVendorCommand represents canceling a vendor quote.
// A reason is always required, whatever the quote's state: cancellations are
// the raw material for vendor quality reviews and refund disputes.
type CancelVendorCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	vendorID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewCancelVendorCommand creates a command to cancel a vendor quote.
func NewCancelVendorCommand(orderID, vendorID kernel.UUID, reason string) (CancelVendorCommand, error) {
	if err := errors.Join(orderID.Validate(), vendorID.Validate()); err != nil {
		return CancelVendorCommand{}, err
	}
	if reason == "" {
		return CancelVendorCommand{}, ErrCancellationReasonIsRequired
	}

	return CancelVendorCommand{
		orderID:  orderID,
		vendorID: vendorID,
		reason:   reason,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelVendorCommand) Validate() error {
	return c.guard.Validate(ErrCancelVendorCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CancelVendorCommand) OrderID() kernel.UUID { return c.orderID }

// VendorID returns the vendor quote to cancel.
func (c CancelVendorCommand) VendorID() kernel.UUID { return c.vendorID }

// Reason returns the operator-supplied cancellation reason.
func (c CancelVendorCommand) Reason() string { return c.reason }
