package commands

import (
	"context"

	"partsflow/internal/core/domain/model/order"
)

// RecordShipmentCommandHandler stores shipment details on the order.
// The first record moves the order to ShippingPending.
type RecordShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordShipmentCommandHandler creates a handler for shipment recording.
func NewRecordShipmentCommandHandler(uowFactory OrderUoWFactory) RecordShipmentCommandHandler {
	return RecordShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment recording command.
func (h RecordShipmentCommandHandler) Handle(ctx context.Context, cmd RecordShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.RecordShipment(cmd.Shipment())
	})
}
