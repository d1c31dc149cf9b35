package commands_test

import (
	"testing"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustCartItem(t *testing.T, customerID, menuItemID uint, quantity int, unitPrice string) *cart.Item {
	t.Helper()
	price, err := decimal.NewFromString(unitPrice)
	require.NoError(t, err)
	item, err := cart.NewItem(customerID, menuItemID, quantity, price)
	require.NoError(t, err)
	return item
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCheckoutCommand(7)

	rows := []*cart.Item{
		mustCartItem(t, 7, 1, 2, "9.50"),
		mustCartItem(t, 7, 2, 1, "4.25"),
	}

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomerForUpdate", mock.Anything, uint(7)).Return(rows, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.CustomerID() == 7 &&
				len(o.Items()) == 2 &&
				o.Total().Equal(decimal.RequireFromString("23.25")) &&
				o.Status().IsPending()
		})).Return(uint(41), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("RemoveItems", mock.Anything, uint(7), []uint{1, 2}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := FuncCheckoutUoWFactory(func() commands.CheckoutUoW { return uow })

	h := commands.NewCheckoutCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, uint(41), id)
	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCheckoutCommand(7)

	cartRepo := new(MockCartRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomerForUpdate", mock.Anything, uint(7)).Return([]*cart.Item{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := FuncCheckoutUoWFactory(func() commands.CheckoutUoW { return uow })

	h := commands.NewCheckoutCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)

	// No Add, RemoveItems or Commit expectations were set: the mocks fail the test
	// if the handler performs any write on an empty cart.
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_RetriesOnceOnConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCheckoutCommand(7)

	rows := []*cart.Item{mustCartItem(t, 7, 1, 1, "5.00")}

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)

	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("CartRepository").Return(cartRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	cartRepo.On("GetByCustomerForUpdate", mock.Anything, uint(7)).Return(rows, nil).Twice()
	cartRepo.On("RemoveItems", mock.Anything, uint(7), []uint{1}).Return(nil).Once()

	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(uint(0), errs.NewConflictError("order")).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(uint(99), nil).Once()

	factory := FuncCheckoutUoWFactory(func() commands.CheckoutUoW { return uow })

	h := commands.NewCheckoutCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, uint(99), id)
	orderRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ConflictSurfacesAfterRetry(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCheckoutCommand(7)

	rows := []*cart.Item{mustCartItem(t, 7, 1, 1, "5.00")}

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)

	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("CartRepository").Return(cartRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)

	cartRepo.On("GetByCustomerForUpdate", mock.Anything, uint(7)).Return(rows, nil).Twice()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(uint(0), errs.NewConflictError("order")).Twice()

	factory := FuncCheckoutUoWFactory(func() commands.CheckoutUoW { return uow })

	h := commands.NewCheckoutCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	orderRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly

	factory := FuncCheckoutUoWFactory(func() commands.CheckoutUoW { return new(MockCheckoutUoW) })

	h := commands.NewCheckoutCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
