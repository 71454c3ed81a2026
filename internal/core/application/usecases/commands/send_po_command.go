package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var ErrSendPOCommandIsNotConstructed = errors.New(
	"SendPOCommand must be created via NewSendPOCommand constructor",
)

// SendPOCommand represents an operator confirming that a purchase order email
// went out to the vendor.
type SendPOCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendPOCommand creates a command to record a sent purchase order.
func NewSendPOCommand(orderID, vendorID kernel.UUID) (SendPOCommand, error) {
	if err := errors.Join(orderID.Validate(), vendorID.Validate()); err != nil {
		return SendPOCommand{}, err
	}

	return SendPOCommand{
		orderID:  orderID,
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendPOCommand) Validate() error {
	return c.guard.Validate(ErrSendPOCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c SendPOCommand) OrderID() kernel.UUID { return c.orderID }

// VendorID returns the vendor the purchase order was sent to.
func (c SendPOCommand) VendorID() kernel.UUID { return c.vendorID }
