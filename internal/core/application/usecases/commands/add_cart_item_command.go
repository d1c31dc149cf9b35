package commands

import (
	"errors"
	"fmt"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
)

// AddCartItemCommand puts a menu item into the caller's cart, capturing the
// current catalog price onto the new row.
type AddCartItemCommand struct {
	customerID uint
	menuItemID uint
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand validates ids are set and quantity is at least 1.
func NewAddCartItemCommand(customerID, menuItemID uint, quantity int) (AddCartItemCommand, error) {
	if customerID == 0 {
		return AddCartItemCommand{}, errs.NewValueIsRequiredError("customerID")
	}
	if menuItemID == 0 {
		return AddCartItemCommand{}, errs.NewValueIsRequiredError("menuItemID")
	}
	if quantity < 1 {
		return AddCartItemCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is less than 1", quantity))
	}

	return AddCartItemCommand{
		customerID: customerID,
		menuItemID: menuItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner.
func (c AddCartItemCommand) CustomerID() uint {
	return c.customerID
}

// MenuItemID returns the item being added.
func (c AddCartItemCommand) MenuItemID() uint {
	return c.menuItemID
}

// Quantity returns the requested quantity.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}
