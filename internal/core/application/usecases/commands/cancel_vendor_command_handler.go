package commands

import (
	"context"

	"partsflow/internal/core/domain/model/ledger"
)

// CancelVendorCommandHandler cancels a vendor quote. When the canceled quote
// held a confirmed purchase order, the demoted order and the new refund ledger
// entry commit in one transaction: there is no window in which money owed by
// the vendor is not tracked.
//
// Example:
//
//	handler := NewCancelVendorCommandHandler(uowFactory)
//	cmd, _ := NewCancelVendorCommand(orderID, vendorID, "part failed inspection")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("vendor cancellation failed: %w", err)
//	}
type CancelVendorCommandHandler struct {
	uowFactory OrderLedgerUoWFactory
}

// NewCancelVendorCommandHandler creates a handler for vendor cancellation operations.
func NewCancelVendorCommandHandler(uowFactory OrderLedgerUoWFactory) CancelVendorCommandHandler {
	return CancelVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor cancellation command.
// The ledger snapshot is taken before the domain strips the quote's
// confirmation, so the entry captures the terms the refund is owed against.
func (h CancelVendorCommandHandler) Handle(ctx context.Context, cmd CancelVendorCommand) error {
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

	vendor, err := aggregate.VendorByID(cmd.VendorID())
	if err != nil {
		return err
	}

	entry, err := ledger.SnapshotVendor(aggregate.ID(), vendor, cmd.Reason())
	if err != nil {
		return err
	}

	refundDue, err := aggregate.CancelVendor(cmd.VendorID(), cmd.Reason())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if refundDue {
		if err = uow.LedgerRepository().Add(ctx, entry); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
