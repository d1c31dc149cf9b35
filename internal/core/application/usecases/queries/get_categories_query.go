package queries

import (
	"errors"

	"littlelemon/internal/pkg/guard"
)

var (
	ErrGetCategoriesQueryIsNotConstructed = errors.New(
		"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
	)
)

// GetCategoriesQuery lists every category. Parameterless.
type GetCategoriesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCategoriesQuery() GetCategoriesQuery {
	return GetCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}

// GetCategoriesQueryResponse is one category row.
type GetCategoriesQueryResponse struct {
	ID   uint
	Name string
}
