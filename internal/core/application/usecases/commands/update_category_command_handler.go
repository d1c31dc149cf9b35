package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
)

// UpdateCategoryCommandHandler handles category renaming.
type UpdateCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateCategoryCommandHandler creates a handler for category renaming.
func NewUpdateCategoryCommandHandler(uowFactory MenuUoWFactory) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle loads the category and stores it under the new name.
func (h *UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) error {
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

	current, err := uow.MenuItemRepository().GetCategory(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	category, err := menu.RestoreCategory(current.ID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.MenuItemRepository().UpdateCategory(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
