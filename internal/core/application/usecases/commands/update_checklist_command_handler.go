package commands

import (
	"context"

	"partsflow/internal/core/domain/model/order"
)

// UpdateChecklistCommandHandler applies checklist edits while the order is in
// the Replacement branch.
type UpdateChecklistCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateChecklistCommandHandler creates a handler for checklist updates.
func NewUpdateChecklistCommandHandler(uowFactory OrderUoWFactory) UpdateChecklistCommandHandler {
	return UpdateChecklistCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checklist update command.
func (h UpdateChecklistCommandHandler) Handle(ctx context.Context, cmd UpdateChecklistCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.UpdateChecklist(cmd.toDomain())
	})
}
