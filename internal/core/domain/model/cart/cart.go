package cart

import (
	"errors"
	"fmt"

	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("cart Item must be created via NewItem constructor")
)

// Item is one row of a customer's cart: a menu item with a quantity and the
// price captured at add time. A customer holds at most one row per menu item.
//
// Item follows these invariants:
//   - Customer and menu item ids must be positive
//   - Quantity must be at least 1
//   - Unit price is the catalog price at add time and is never re-read
//   - The line price equals quantity times the captured unit price, computed
//     once at construction
type Item struct {
	customerID uint
	menuItemID uint
	quantity   int

	// unitPrice is the catalog price captured when the row was created
	unitPrice decimal.Decimal

	// price is the captured line total: quantity * unitPrice
	price decimal.Decimal

	isConstructed bool
}

// NewItem creates a cart row, capturing unitPrice as the pricing snapshot and
// computing the line total. Returns a validation error for a zero customer or
// menu item id, a quantity below 1, or a negative unit price.
func NewItem(customerID, menuItemID uint, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setCustomerID(customerID),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	item.price = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return item, nil
}

// RestoreItem reconstructs a cart row from persistence, keeping the stored
// line price rather than recomputing it.
func RestoreItem(customerID, menuItemID uint, quantity int, unitPrice, price decimal.Decimal) (*Item, error) {
	item, err := NewItem(customerID, menuItemID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	item.price = price
	return item, nil
}

// Validate ensures the Item was created through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// CustomerID returns the owner of the cart row.
func (i *Item) CustomerID() uint {
	return i.customerID
}

// MenuItemID returns the referenced menu item.
func (i *Item) MenuItemID() uint {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the catalog price captured at add time.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Price returns the captured line total.
func (i *Item) Price() decimal.Decimal {
	return i.price
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

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
