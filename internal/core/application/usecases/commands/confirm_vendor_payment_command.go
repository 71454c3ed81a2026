package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var ErrConfirmVendorPaymentCommandIsNotConstructed = errors.New(
	"ConfirmVendorPaymentCommand must be created via NewConfirmVendorPaymentCommand constructor",
)

// ConfirmVendorPaymentCommand represents settled payment to the active vendor.
type ConfirmVendorPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmVendorPaymentCommand creates a command to confirm vendor payment.
func NewConfirmVendorPaymentCommand(orderID kernel.UUID) (ConfirmVendorPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmVendorPaymentCommand{}, err
	}

	return ConfirmVendorPaymentCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmVendorPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmVendorPaymentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ConfirmVendorPaymentCommand) OrderID() kernel.UUID { return c.orderID }
