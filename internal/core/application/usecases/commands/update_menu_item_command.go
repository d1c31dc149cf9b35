package commands

import (
	"errors"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
)

// UpdateMenuItemCommand partially updates a catalog entry. Unset fields keep
// their stored values.
type UpdateMenuItemCommand struct {
	menuItemID uint

	title      *string
	price      *decimal.Decimal
	categoryID *uint
	featured   *bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand validates the id; nil field pointers mean "leave
// unchanged".
func NewUpdateMenuItemCommand(
	menuItemID uint,
	title *string,
	price *decimal.Decimal,
	categoryID *uint,
	featured *bool,
) (UpdateMenuItemCommand, error) {
	if menuItemID == 0 {
		return UpdateMenuItemCommand{}, errs.NewValueIsRequiredError("menuItemID")
	}

	return UpdateMenuItemCommand{
		menuItemID: menuItemID,
		title:      title,
		price:      price,
		categoryID: categoryID,
		featured:   featured,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) MenuItemID() uint         { return c.menuItemID }
func (c UpdateMenuItemCommand) Title() *string           { return c.title }
func (c UpdateMenuItemCommand) Price() *decimal.Decimal  { return c.price }
func (c UpdateMenuItemCommand) CategoryID() *uint        { return c.categoryID }
func (c UpdateMenuItemCommand) Featured() *bool          { return c.featured }
