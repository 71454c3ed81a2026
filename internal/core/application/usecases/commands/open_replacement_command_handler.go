package commands

import (
	"context"

	"partsflow/internal/core/domain/model/order"
)

// OpenReplacementCommandHandler moves a delivered order into the Replacement
// branch, creating the procurement checklist on first entry.
type OpenReplacementCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewOpenReplacementCommandHandler creates a handler for opening replacements.
func NewOpenReplacementCommandHandler(uowFactory OrderUoWFactory) OpenReplacementCommandHandler {
	return OpenReplacementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the replacement opening command.
func (h OpenReplacementCommandHandler) Handle(ctx context.Context, cmd OpenReplacementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.OpenReplacement()
	})
}
