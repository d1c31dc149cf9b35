package commands

import (
	"context"
)

// RemoveCartItemCommandHandler handles removal of a single cart row.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart row removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the (customer, menu item) cart row. A missing row surfaces
// as an ObjectNotFoundError.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	if err := uow.CartRepository().Remove(ctx, cmd.CustomerID(), cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
