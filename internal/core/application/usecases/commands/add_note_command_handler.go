package commands

import (
	"context"

	"partsflow/internal/core/domain/model/order"
)

// AddNoteCommandHandler appends notes to orders and vendor quotes.
type AddNoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddNoteCommandHandler creates a handler for note operations.
func NewAddNoteCommandHandler(uowFactory OrderUoWFactory) AddNoteCommandHandler {
	return AddNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note command.
func (h AddNoteCommandHandler) Handle(ctx context.Context, cmd AddNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		if vendorID := cmd.VendorID(); vendorID != nil {
			return aggregate.AddVendorNote(*vendorID, cmd.Text())
		}
		if cmd.Internal() {
			return aggregate.AddProcurementNote(cmd.Text())
		}
		return aggregate.AddNote(cmd.Text())
	})
}
