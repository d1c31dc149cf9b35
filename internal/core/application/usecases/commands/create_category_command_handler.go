package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
)

// CreateCategoryCommandHandler handles category insertion.
type CreateCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category insertion.
func NewCreateCategoryCommandHandler(uowFactory MenuUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle creates the category and returns its id. A taken name surfaces as a
// ConflictError.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (uint, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	category, err := menu.NewCategory(cmd.Name())
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

	id, err := uow.MenuItemRepository().AddCategory(ctx, category)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
