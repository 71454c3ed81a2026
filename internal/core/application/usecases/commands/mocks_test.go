package commands_test

import (
	"context"
	"errors"

	"partsflow/internal/core/application/usecases/commands"
	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/ledger"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/core/domain/model/rotation"
	"partsflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockLedgerRepository) Update(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockLedgerRepository) Get(ctx context.Context, id kernel.UUID) (*ledger.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Entry), args.Error(1)
}
func (m *MockLedgerRepository) GetAllByOrder(_ context.Context, _ kernel.UUID) ([]*ledger.Entry, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockLedgerRepository) GetAllPending(_ context.Context) ([]*ledger.Entry, error) {
	return nil, errors.New("not implemented in mock")
}

type MockRotationRepository struct{ mock.Mock }

func (m *MockRotationRepository) Add(ctx context.Context, r *rotation.AgentRotation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRotationRepository) Update(ctx context.Context, r *rotation.AgentRotation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRotationRepository) Get(ctx context.Context) (*rotation.AgentRotation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rotation.AgentRotation), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderLedgerUoW struct{ MockOrderUoW }

func (m *MockOrderLedgerUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockOrderLedgerUoWFactory struct{ mock.Mock }

func (m *MockOrderLedgerUoWFactory) Create() commands.OrderLedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderLedgerUoW)
}

type MockLedgerUoW struct{ mock.Mock }

func (m *MockLedgerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLedgerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLedgerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLedgerUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockOrderRotationUoW struct{ MockOrderUoW }

func (m *MockOrderRotationUoW) RotationRepository() ports.RotationRepository {
	args := m.Called()
	return args.Get(0).(ports.RotationRepository)
}

type MockOrderRotationUoWFactory struct{ mock.Mock }

func (m *MockOrderRotationUoWFactory) Create() commands.OrderRotationUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderRotationUoW)
}
