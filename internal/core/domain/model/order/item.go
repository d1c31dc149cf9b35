package order

import (
	"errors"
	"fmt"

	"littlelemon/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem constructor")
)

// Item is a line item: (customer, menu item, quantity). A customer has at most
// one line item per menu item across all of their orders; writing a line item
// for an existing (customer, menu item) pair overwrites its quantity and moves
// the row to the writing order. See orderrepo for the persistence invariant.
type Item struct {
	customerID uint
	menuItemID uint
	quantity   int

	isConstructed bool
}

// NewItem creates a line item. Customer and menu item ids must be positive and
// quantity must be at least 1.
func NewItem(customerID, menuItemID uint, quantity int) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setCustomerID(customerID),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// CustomerID returns the owning customer.
func (i Item) CustomerID() uint {
	return i.customerID
}

// MenuItemID returns the referenced menu item.
func (i Item) MenuItemID() uint {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setCustomerID(customerID uint) error {
	if customerID == 0 {
		return errs.NewValueIsRequiredError("customerID")
	}
	i.customerID = customerID
	return nil
}

func (i *Item) setMenuItemID(menuItemID uint) error {
	if menuItemID == 0 {
		return errs.NewValueIsRequiredError("menuItemID")
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}
