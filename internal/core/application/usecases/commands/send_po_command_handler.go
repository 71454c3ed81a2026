package commands

import (
	"context"
)

// SendPOCommandHandler records a sent purchase order against a vendor quote.
type SendPOCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSendPOCommandHandler creates a handler for PO send operations.
func NewSendPOCommandHandler(uowFactory OrderUoWFactory) SendPOCommandHandler {
	return SendPOCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the PO send command.
func (h SendPOCommandHandler) Handle(ctx context.Context, cmd SendPOCommand) error {
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

	if err = aggregate.SendPO(cmd.VendorID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
