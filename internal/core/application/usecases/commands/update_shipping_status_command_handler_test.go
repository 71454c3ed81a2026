package commands_test

import (
	"testing"

	"partsflow/internal/core/application/usecases/commands"
	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shippingOrder builds an order in ShippingPending.
func shippingOrder(t *testing.T) *order.Order {
	t.Helper()

	aggregate, _ := confirmedOrder(t)
	require.NoError(t, aggregate.ConfirmVendorPayment())

	shipment, err := order.NewShipment(42.5, 30, 24, "FreightCo", "FC-998877", "", "")
	require.NoError(t, err)
	require.NoError(t, aggregate.RecordShipment(shipment))
	return aggregate
}

func TestNewUpdateShippingStatusCommand(t *testing.T) {
	t.Run("should accept shipping progress statuses", func(t *testing.T) {
		for _, target := range []order.Status{order.ShipOut, order.Intransit, order.Delivered} {
			_, err := commands.NewUpdateShippingStatusCommand(kernel.NewUUID(), target)
			require.NoError(t, err, target.String())
		}
	})

	t.Run("should reject non-shipping statuses", func(t *testing.T) {
		for _, target := range []order.Status{order.LocatePending, order.POConfirmed, order.Litigation} {
			_, err := commands.NewUpdateShippingStatusCommand(kernel.NewUUID(), target)
			require.Error(t, err, target.String())
		}
	})
}

func TestUpdateShippingStatusCommandHandler_Handle_ShipOut(t *testing.T) {
	ctx := t.Context()
	aggregate := shippingOrder(t)
	cmd, err := commands.NewUpdateShippingStatusCommand(aggregate.ID(), order.ShipOut)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShippingStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.ShipOut, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateShippingStatusCommandHandler_Handle_IllegalHop(t *testing.T) {
	ctx := t.Context()
	aggregate := shippingOrder(t)
	cmd, err := commands.NewUpdateShippingStatusCommand(aggregate.ID(), order.Delivered)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShippingStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.ShippingPending, aggregate.Status())
	uow.AssertExpectations(t)
}
