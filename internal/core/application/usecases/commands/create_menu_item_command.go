package commands

import (
	"errors"

	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
)

// CreateMenuItemCommand adds an entry to the catalog.
type CreateMenuItemCommand struct {
	title      string
	price      decimal.Decimal
	categoryID uint
	featured   bool

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand carries the fields through; the menu.MenuItem
// constructor owns the validation rules.
func NewCreateMenuItemCommand(title string, price decimal.Decimal, categoryID uint, featured bool) CreateMenuItemCommand {
	return CreateMenuItemCommand{
		title:      title,
		price:      price,
		categoryID: categoryID,
		featured:   featured,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Title() string          { return c.title }
func (c CreateMenuItemCommand) Price() decimal.Decimal { return c.price }
func (c CreateMenuItemCommand) CategoryID() uint       { return c.categoryID }
func (c CreateMenuItemCommand) Featured() bool         { return c.featured }
