package commands

import (
	"context"

	"partsflow/internal/core/domain/model/order"
)

// CloseReplacementCommandHandler ends a replacement negotiation. A completed
// negotiation returns the order to Delivered; a cancelled one is terminal.
type CloseReplacementCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCloseReplacementCommandHandler creates a handler for closing replacements.
func NewCloseReplacementCommandHandler(uowFactory OrderUoWFactory) CloseReplacementCommandHandler {
	return CloseReplacementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the replacement closing command.
func (h CloseReplacementCommandHandler) Handle(ctx context.Context, cmd CloseReplacementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		if cmd.Outcome() == ReplacementCompleted {
			return aggregate.CompleteReplacement()
		}
		return aggregate.CancelReplacement()
	})
}
