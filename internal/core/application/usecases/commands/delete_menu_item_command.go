package commands

import (
	"errors"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
		"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
	)
)

// DeleteMenuItemCommand removes a catalog entry.
type DeleteMenuItemCommand struct {
	menuItemID uint

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand validates the id is set.
func NewDeleteMenuItemCommand(menuItemID uint) (DeleteMenuItemCommand, error) {
	if menuItemID == 0 {
		return DeleteMenuItemCommand{}, errs.NewValueIsRequiredError("menuItemID")
	}

	return DeleteMenuItemCommand{menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the entry being deleted.
func (c DeleteMenuItemCommand) MenuItemID() uint {
	return c.menuItemID
}
