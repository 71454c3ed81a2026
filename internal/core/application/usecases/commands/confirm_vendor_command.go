package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var ErrConfirmVendorCommandIsNotConstructed = errors.New(
	"ConfirmVendorCommand must be created via NewConfirmVendorCommand constructor",
)

// ConfirmVendorCommand represents a vendor confirming the purchase order.
// Confirmation promotes the vendor to the order's single active slot; racing
// confirmations surface as conflicts.
type ConfirmVendorCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmVendorCommand creates a command to confirm a vendor's purchase order.
func NewConfirmVendorCommand(orderID, vendorID kernel.UUID) (ConfirmVendorCommand, error) {
	if err := errors.Join(orderID.Validate(), vendorID.Validate()); err != nil {
		return ConfirmVendorCommand{}, err
	}

	return ConfirmVendorCommand{
		orderID:  orderID,
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmVendorCommand) Validate() error {
	return c.guard.Validate(ErrConfirmVendorCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ConfirmVendorCommand) OrderID() kernel.UUID { return c.orderID }

// VendorID returns the confirming vendor's identifier.
func (c ConfirmVendorCommand) VendorID() kernel.UUID { return c.vendorID }
