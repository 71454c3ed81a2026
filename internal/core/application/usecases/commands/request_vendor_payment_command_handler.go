package commands

import (
	"context"

	"partsflow/internal/core/domain/model/order"
)

// RequestVendorPaymentCommandHandler moves the order to VendorPaymentPending.
type RequestVendorPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestVendorPaymentCommandHandler creates a handler for payment initiation.
func NewRequestVendorPaymentCommandHandler(uowFactory OrderUoWFactory) RequestVendorPaymentCommandHandler {
	return RequestVendorPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment initiation command.
func (h RequestVendorPaymentCommandHandler) Handle(ctx context.Context, cmd RequestVendorPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.RequestVendorPayment()
	})
}
