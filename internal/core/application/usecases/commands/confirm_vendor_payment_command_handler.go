package commands

import (
	"context"

	"partsflow/internal/core/domain/model/order"
)

// ConfirmVendorPaymentCommandHandler records settled payment to the active
// vendor and moves the order to VendorPaymentConfirmed.
type ConfirmVendorPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmVendorPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmVendorPaymentCommandHandler(uowFactory OrderUoWFactory) ConfirmVendorPaymentCommandHandler {
	return ConfirmVendorPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment confirmation command.
func (h ConfirmVendorPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmVendorPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.ConfirmVendorPayment()
	})
}
