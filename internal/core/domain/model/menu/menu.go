// Package menu holds the catalog entities. The catalog is plain CRUD managed
// by managers; the ordering core only reads an item's title and price.
package menu

import (
	"errors"
	"fmt"

	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")
)

// MenuItem is a priced catalog entry. Its price at cart-add time becomes the
// cart row's captured price.
type MenuItem struct {
	id         uint
	title      string
	price      decimal.Decimal
	categoryID uint
	featured   bool

	isConstructed bool
}

// NewMenuItem creates a catalog entry. Title is required and price must not be
// negative.
func NewMenuItem(title string, price decimal.Decimal, categoryID uint, featured bool) (*MenuItem, error) {
	m := &MenuItem{isConstructed: true, featured: featured}

	if err := errors.Join(
		m.setTitle(title),
		m.setPrice(price),
		m.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenuItem reconstructs a catalog entry from persistence.
func RestoreMenuItem(id uint, title string, price decimal.Decimal, categoryID uint, featured bool) (*MenuItem, error) {
	m, err := NewMenuItem(title, price, categoryID, featured)
	if err != nil {
		return nil, err
	}

	m.id = id
	return m, nil
}

// Validate ensures the MenuItem was created through a factory method.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() uint               { return m.id }
func (m *MenuItem) Title() string          { return m.title }
func (m *MenuItem) Price() decimal.Decimal { return m.price }
func (m *MenuItem) CategoryID() uint       { return m.categoryID }
func (m *MenuItem) Featured() bool         { return m.featured }

func (m *MenuItem) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	m.title = title
	return nil
}

func (m *MenuItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategoryID(categoryID uint) error {
	if categoryID == 0 {
		return errs.NewValueIsRequiredError("categoryID")
	}
	m.categoryID = categoryID
	return nil
}

// Category groups menu items.
type Category struct {
	id   uint
	name string

	isConstructed bool
}

// NewCategory creates a category. Name is required.
func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &Category{name: name, isConstructed: true}, nil
}

// RestoreCategory reconstructs a category from persistence.
func RestoreCategory(id uint, name string) (*Category, error) {
	c, err := NewCategory(name)
	if err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the Category was created through a factory method.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() uint     { return c.id }
func (c *Category) Name() string { return c.name }
