package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
)

// UpdateMenuItemCommandHandler handles partial catalog updates.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for catalog updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle loads the item, overlays the supplied fields and writes it back.
// Cart rows keep their captured prices; a price change here only affects
// future cart adds and item replacements.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	current, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	title := current.Title()
	if cmd.Title() != nil {
		title = *cmd.Title()
	}
	price := current.Price()
	if cmd.Price() != nil {
		price = *cmd.Price()
	}
	categoryID := current.CategoryID()
	if cmd.CategoryID() != nil {
		categoryID = *cmd.CategoryID()
	}
	featured := current.Featured()
	if cmd.Featured() != nil {
		featured = *cmd.Featured()
	}

	updated, err := menu.RestoreMenuItem(cmd.MenuItemID(), title, price, categoryID, featured)
	if err != nil {
		return err
	}

	if err = uow.MenuItemRepository().Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
