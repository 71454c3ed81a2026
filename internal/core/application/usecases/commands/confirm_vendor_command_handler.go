package commands

import (
	"context"
)

// ConfirmVendorCommandHandler promotes a vendor to the order's active slot.
// The optimistic concurrency check on the order update guarantees that two
// operators confirming different vendors at once cannot both win: the second
// write fails with a conflict and must be retried against the fresh state,
// where the domain rejects it.
type ConfirmVendorCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmVendorCommandHandler creates a handler for vendor confirmation operations.
func NewConfirmVendorCommandHandler(uowFactory OrderUoWFactory) ConfirmVendorCommandHandler {
	return ConfirmVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor confirmation command.
func (h ConfirmVendorCommandHandler) Handle(ctx context.Context, cmd ConfirmVendorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = aggregate.ConfirmVendor(cmd.VendorID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
