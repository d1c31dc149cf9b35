package commands

import (
	"errors"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrRemoveCartItemCommandIsNotConstructed = errors.New(
		"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
	)
)

// RemoveCartItemCommand deletes one row from the caller's cart.
type RemoveCartItemCommand struct {
	customerID uint
	menuItemID uint

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand validates both ids are set.
func NewRemoveCartItemCommand(customerID, menuItemID uint) (RemoveCartItemCommand, error) {
	if customerID == 0 {
		return RemoveCartItemCommand{}, errs.NewValueIsRequiredError("customerID")
	}
	if menuItemID == 0 {
		return RemoveCartItemCommand{}, errs.NewValueIsRequiredError("menuItemID")
	}

	return RemoveCartItemCommand{
		customerID: customerID,
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner.
func (c RemoveCartItemCommand) CustomerID() uint {
	return c.customerID
}

// MenuItemID returns the item being removed.
func (c RemoveCartItemCommand) MenuItemID() uint {
	return c.menuItemID
}
