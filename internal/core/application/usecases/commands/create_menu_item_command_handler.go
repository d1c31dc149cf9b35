package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler handles catalog insertion.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for catalog insertion.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle creates the menu item and returns its id. The referenced category
// must exist.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (uint, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	item, err := menu.NewMenuItem(cmd.Title(), cmd.Price(), cmd.CategoryID(), cmd.Featured())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.MenuItemRepository().GetCategory(ctx, cmd.CategoryID()); err != nil {
		return 0, err
	}

	id, err := uow.MenuItemRepository().Add(ctx, item)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
