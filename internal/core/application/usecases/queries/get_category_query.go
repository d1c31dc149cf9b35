package queries

import (
	"errors"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrGetCategoryQueryIsNotConstructed = errors.New(
		"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
	)
)

// GetCategoryQuery retrieves one category.
type GetCategoryQuery struct {
	categoryID uint

	guard guard.ConstructorGuard
}

func NewGetCategoryQuery(categoryID uint) (GetCategoryQuery, error) {
	if categoryID == 0 {
		return GetCategoryQuery{}, errs.NewValueIsRequiredError("categoryID")
	}

	return GetCategoryQuery{categoryID: categoryID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

func (q GetCategoryQuery) CategoryID() uint { return q.categoryID }
