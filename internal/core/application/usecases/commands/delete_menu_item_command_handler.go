package commands

import (
	"context"
)

// DeleteMenuItemCommandHandler handles catalog deletion.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for catalog deletion.
func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the menu item; missing entries surface as ObjectNotFoundError.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
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

	if err := uow.MenuItemRepository().Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
