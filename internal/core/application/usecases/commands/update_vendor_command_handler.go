package commands

import (
	"context"

	"partsflow/internal/core/domain/model/kernel"
)

// UpdateVendorCommandHandler applies vendor quote edits. Each present section
// is applied in order: contact, costs, details. The first rejected section
// aborts the whole command and rolls back.
type UpdateVendorCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateVendorCommandHandler creates a handler for vendor edit operations.
func NewUpdateVendorCommandHandler(uowFactory OrderUoWFactory) UpdateVendorCommandHandler {
	return UpdateVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor edit command.
func (h UpdateVendorCommandHandler) Handle(ctx context.Context, cmd UpdateVendorCommand) error {
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

	if contact := cmd.Contact(); contact != nil {
		if err = aggregate.UpdateVendorContact(cmd.VendorID(),
			contact.BusinessName, contact.AgentName, contact.PhoneNumber, contact.Email); err != nil {
			return err
		}
	}
	if costs := cmd.Costs(); costs != nil {
		if err = aggregate.UpdateVendorCosts(cmd.VendorID(),
			kernel.MustMoneyFromCents(costs.CostPriceCents),
			kernel.MustMoneyFromCents(costs.ShippingCostCents),
			kernel.MustMoneyFromCents(costs.CorePriceCents)); err != nil {
			return err
		}
	}
	if details := cmd.Details(); details != nil {
		if err = aggregate.UpdateVendorDetails(cmd.VendorID(),
			details.Rating, details.Warranty, details.Mileage); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
