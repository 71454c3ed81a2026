package commands

import (
	"context"

	"partsflow/internal/core/domain/model/order"
)

// EscalateLitigationCommandHandler moves an order to the terminal litigation
// state and records the escalation reason.
type EscalateLitigationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEscalateLitigationCommandHandler creates a handler for litigation escalation.
func NewEscalateLitigationCommandHandler(uowFactory OrderUoWFactory) EscalateLitigationCommandHandler {
	return EscalateLitigationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the litigation escalation command.
func (h EscalateLitigationCommandHandler) Handle(ctx context.Context, cmd EscalateLitigationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		if err := aggregate.EscalateLitigation(); err != nil {
			return err
		}
		return aggregate.AddProcurementNote("litigation: " + cmd.Reason())
	})
}
