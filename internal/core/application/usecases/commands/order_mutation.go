package commands

import (
	"context"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
)

// mutateOrder runs a single-aggregate order mutation inside a transaction:
// load, apply, update, commit. Handlers whose whole job is one domain call
// share this instead of repeating the unit of work choreography.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
