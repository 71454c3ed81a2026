package commands

import (
	"context"
)

// ConfirmRefundCommandHandler marks a refund ledger entry as paid.
type ConfirmRefundCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewConfirmRefundCommandHandler creates a handler for refund confirmation operations.
func NewConfirmRefundCommandHandler(uowFactory LedgerUoWFactory) ConfirmRefundCommandHandler {
	return ConfirmRefundCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund confirmation command.
func (h ConfirmRefundCommandHandler) Handle(ctx context.Context, cmd ConfirmRefundCommand) error {
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

	ledgerRepo := uow.LedgerRepository()
	entry, err := ledgerRepo.Get(ctx, cmd.EntryID())
	if err != nil {
		return err
	}

	if err = entry.MarkPaid(); err != nil {
		return err
	}

	if err = ledgerRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
