package commands_test

import (
	"context"
	"time"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, item *cart.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) Remove(ctx context.Context, customerID, menuItemID uint) error {
	args := m.Called(ctx, customerID, menuItemID)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, customerID uint) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveItems(ctx context.Context, customerID uint, menuItemIDs []uint) error {
	args := m.Called(ctx, customerID, menuItemIDs)
	return args.Error(0)
}

func (m *MockCartRepository) GetByCustomer(ctx context.Context, customerID uint) ([]*cart.Item, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Item), args.Error(1)
}

func (m *MockCartRepository) GetByCustomerForUpdate(ctx context.Context, customerID uint) ([]*cart.Item, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Item), args.Error(1)
}

func (m *MockCartRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) (uint, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uint) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Get(ctx context.Context, id uint) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.MenuItem) (uint, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuRepository) GetCategory(ctx context.Context, id uint) (*menu.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Category), args.Error(1)
}

func (m *MockMenuRepository) AddCategory(ctx context.Context, category *menu.Category) (uint, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockMenuRepository) UpdateCategory(ctx context.Context, category *menu.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockMenuRepository) DeleteCategory(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockTx embeds the transaction lifecycle expectations shared by the UoW
// mocks.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCartUoW struct{ mockTx }

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockCartUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockCheckoutUoW struct{ mockTx }

func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockMenuUoW struct{ mockTx }

func (m *MockMenuUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW { return f() }

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW { return f() }

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW { return f() }
