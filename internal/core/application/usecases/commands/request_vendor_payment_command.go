package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var ErrRequestVendorPaymentCommandIsNotConstructed = errors.New(
	"RequestVendorPaymentCommand must be created via NewRequestVendorPaymentCommand constructor",
)

// RequestVendorPaymentCommand represents initiating payment to the active vendor.
type RequestVendorPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestVendorPaymentCommand creates a command to initiate vendor payment.
func NewRequestVendorPaymentCommand(orderID kernel.UUID) (RequestVendorPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RequestVendorPaymentCommand{}, err
	}

	return RequestVendorPaymentCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestVendorPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRequestVendorPaymentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RequestVendorPaymentCommand) OrderID() kernel.UUID { return c.orderID }
