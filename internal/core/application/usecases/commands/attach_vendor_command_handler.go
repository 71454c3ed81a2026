package commands

import (
	"context"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
)

// AttachVendorCommandHandler attaches a sourced vendor quote to an order.
// The first attached quote moves the order out of LocatePending.
type AttachVendorCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAttachVendorCommandHandler creates a handler for vendor attachment operations.
func NewAttachVendorCommandHandler(uowFactory OrderUoWFactory) AttachVendorCommandHandler {
	return AttachVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor attachment command.
// Loads the order, builds the new quote and attaches it within a transaction.
func (h AttachVendorCommandHandler) Handle(ctx context.Context, cmd AttachVendorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	quote, err := order.NewVendorQuote(
		cmd.VendorID(),
		cmd.BusinessName(), cmd.AgentName(), cmd.PhoneNumber(), cmd.Email(),
		kernel.MustMoneyFromCents(cmd.CostPriceCents()),
		kernel.MustMoneyFromCents(cmd.ShippingCostCents()),
		kernel.MustMoneyFromCents(cmd.CorePriceCents()),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AttachVendor(quote); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
