package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/cart"
)

// AddCartItemCommandHandler handles cart insertion. The catalog price is read
// and captured inside the same transaction as the insert, so a price change
// cannot slip between snapshot and write.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart insertions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle resolves the menu item, builds the cart row with the captured price
// and inserts it. A duplicate (customer, menu item) row surfaces as a
// ConflictError; a missing menu item as an ObjectNotFoundError.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	menuItem, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	item, err := cart.NewItem(cmd.CustomerID(), cmd.MenuItemID(), cmd.Quantity(), menuItem.Price())
	if err != nil {
		return err
	}

	if err = uow.CartRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
