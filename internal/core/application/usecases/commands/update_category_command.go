package commands

import (
	"errors"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrUpdateCategoryCommandIsNotConstructed = errors.New(
		"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
	)
)

// UpdateCategoryCommand renames a category.
type UpdateCategoryCommand struct {
	categoryID uint
	name       string

	guard guard.ConstructorGuard
}

func NewUpdateCategoryCommand(categoryID uint, name string) (UpdateCategoryCommand, error) {
	if categoryID == 0 {
		return UpdateCategoryCommand{}, errs.NewValueIsRequiredError("categoryID")
	}

	if name == "" {
		return UpdateCategoryCommand{}, errs.NewValueIsRequiredError("name")
	}

	return UpdateCategoryCommand{
		categoryID: categoryID,
		name:       name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

func (c UpdateCategoryCommand) CategoryID() uint { return c.categoryID }
func (c UpdateCategoryCommand) Name() string     { return c.name }
