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

// confirmedOrder builds an order with one confirmed vendor, ready for
// cancellation scenarios.
func confirmedOrder(t *testing.T) (*order.Order, kernel.UUID) {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "John Carter", kernel.MustMoneyFromCents(120000))
	require.NoError(t, err)

	quote, err := order.NewVendorQuote(
		kernel.NewUUID(),
		"Midwest Auto Parts", "", "", "",
		kernel.MustMoneyFromCents(45000),
		kernel.MustMoneyFromCents(12000),
		kernel.Money{},
	)
	require.NoError(t, err)

	require.NoError(t, o.AttachVendor(quote))
	require.NoError(t, o.SendPO(quote.ID()))
	require.NoError(t, o.ConfirmVendor(quote.ID()))
	return o, quote.ID()
}

func TestCancelVendorCommandHandler_Handle_ConfirmedVendor(t *testing.T) {
	ctx := t.Context()
	aggregate, vendorID := confirmedOrder(t)
	cmd, err := commands.NewCancelVendorCommand(aggregate.ID(), vendorID, "part failed inspection")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockOrderLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Add", mock.Anything, mock.AnythingOfType("*ledger.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelVendorCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.LocatePending, aggregate.Status())
	orderRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelVendorCommandHandler_Handle_PendingVendorSkipsLedger(t *testing.T) {
	ctx := t.Context()

	aggregate, err := order.NewOrder(kernel.NewUUID(), "John Carter", kernel.MustMoneyFromCents(120000))
	require.NoError(t, err)
	quote, err := order.NewVendorQuote(
		kernel.NewUUID(),
		"Midwest Auto Parts", "", "", "",
		kernel.Money{}, kernel.Money{}, kernel.Money{},
	)
	require.NoError(t, err)
	require.NoError(t, aggregate.AttachVendor(quote))

	cmd, err := commands.NewCancelVendorCommand(aggregate.ID(), quote.ID(), "price too high")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelVendorCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.POStatusCanceled, quote.POStatus())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelVendorCommandHandler_Handle_UnknownVendor(t *testing.T) {
	ctx := t.Context()
	aggregate, _ := confirmedOrder(t)
	cmd, err := commands.NewCancelVendorCommand(aggregate.ID(), kernel.NewUUID(), "reason")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelVendorCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewCancelVendorCommand_ReasonRequired(t *testing.T) {
	_, err := commands.NewCancelVendorCommand(kernel.NewUUID(), kernel.NewUUID(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancellationReasonIsRequired)
}
