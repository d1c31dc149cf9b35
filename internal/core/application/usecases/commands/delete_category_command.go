package commands

import (
	"errors"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrDeleteCategoryCommandIsNotConstructed = errors.New(
		"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
	)
)

// DeleteCategoryCommand removes a category from the catalog.
type DeleteCategoryCommand struct {
	categoryID uint

	guard guard.ConstructorGuard
}

func NewDeleteCategoryCommand(categoryID uint) (DeleteCategoryCommand, error) {
	if categoryID == 0 {
		return DeleteCategoryCommand{}, errs.NewValueIsRequiredError("categoryID")
	}

	return DeleteCategoryCommand{
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

func (c DeleteCategoryCommand) CategoryID() uint { return c.categoryID }
