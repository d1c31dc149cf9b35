package queries

import (
	"errors"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
)

// GetMenuItemQuery retrieves one catalog entry.
type GetMenuItemQuery struct {
	menuItemID uint

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(menuItemID uint) (GetMenuItemQuery, error) {
	if menuItemID == 0 {
		return GetMenuItemQuery{}, errs.NewValueIsRequiredError("menuItemID")
	}

	return GetMenuItemQuery{menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) MenuItemID() uint { return q.menuItemID }
