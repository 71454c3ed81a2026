package commands

import (
	"context"

	"partsflow/internal/core/domain/model/order"
)

// UpdateShippingStatusCommandHandler advances an order along the shipping leg:
// ShipOut, Intransit or Delivered.
type UpdateShippingStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateShippingStatusCommandHandler creates a handler for shipping progress updates.
func NewUpdateShippingStatusCommandHandler(uowFactory OrderUoWFactory) UpdateShippingStatusCommandHandler {
	return UpdateShippingStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipping progress command.
func (h UpdateShippingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShippingStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		switch cmd.Target() {
		case order.ShipOut:
			return aggregate.MarkShipOut()
		case order.Intransit:
			return aggregate.MarkInTransit()
		default:
			return aggregate.MarkDelivered()
		}
	})
}
