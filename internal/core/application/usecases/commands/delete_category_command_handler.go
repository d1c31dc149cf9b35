package commands

import (
	"context"
)

// DeleteCategoryCommandHandler handles category removal.
type DeleteCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewDeleteCategoryCommandHandler creates a handler for category removal.
func NewDeleteCategoryCommandHandler(uowFactory MenuUoWFactory) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle removes the category. Absent ids surface as ObjectNotFoundError.
func (h *DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
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

	if err := uow.MenuItemRepository().DeleteCategory(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
