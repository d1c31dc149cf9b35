package queries

import (
	"errors"
	"fmt"
	"strings"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetMenuItemsQueryIsNotConstructed = errors.New(
		"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
	)
)

const (
	defaultMenuItemsPerPage = 10
	maxMenuItemsPerPage     = 100
)

// menuItemSortColumns is the whitelist of sortable catalog columns.
func menuItemSortColumns() map[string]struct{} {
	return map[string]struct{}{
		"id":          {},
		"title":       {},
		"price":       {},
		"featured":    {},
		"category_id": {},
	}
}

// GetMenuItemsQuery browses the catalog. Filters combine with AND: category
// name, an upper price bound and a title substring search. Ordering accepts a
// comma-separated list of whitelisted columns, each optionally prefixed with
// "-" for descending. Results are paginated.
type GetMenuItemsQuery struct {
	categoryName string
	toPrice      *decimal.Decimal
	search       string
	ordering     []string
	perPage      int
	page         int

	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a catalog browse query. Zero perPage and page
// fall back to defaults; unknown ordering columns fail with ValueIsInvalid.
func NewGetMenuItemsQuery(
	categoryName string,
	toPrice *decimal.Decimal,
	search string,
	ordering string,
	perPage int,
	page int,
) (GetMenuItemsQuery, error) {
	if perPage < 0 {
		return GetMenuItemsQuery{}, errs.NewValueIsInvalidError("perPage")
	}
	if perPage == 0 {
		perPage = defaultMenuItemsPerPage
	}
	if perPage > maxMenuItemsPerPage {
		perPage = maxMenuItemsPerPage
	}

	if page < 0 {
		return GetMenuItemsQuery{}, errs.NewValueIsInvalidError("page")
	}
	if page == 0 {
		page = 1
	}

	fields := make([]string, 0)
	if ordering != "" {
		for _, field := range strings.Split(ordering, ",") {
			field = strings.TrimSpace(field)
			column := strings.TrimPrefix(field, "-")
			if _, ok := menuItemSortColumns()[column]; !ok {
				return GetMenuItemsQuery{}, errs.NewValueIsInvalidErrorWithCause(
					"ordering", fmt.Errorf("%q is not a sortable field", field))
			}
			fields = append(fields, field)
		}
	}

	return GetMenuItemsQuery{
		categoryName: categoryName,
		toPrice:      toPrice,
		search:       search,
		ordering:     fields,
		perPage:      perPage,
		page:         page,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

func (q GetMenuItemsQuery) CategoryName() string      { return q.categoryName }
func (q GetMenuItemsQuery) ToPrice() *decimal.Decimal { return q.toPrice }
func (q GetMenuItemsQuery) Search() string            { return q.search }
func (q GetMenuItemsQuery) PerPage() int              { return q.perPage }
func (q GetMenuItemsQuery) Page() int                 { return q.page }

// orderBy renders the validated ordering as a SQL fragment. Defaults to id
// ascending.
func (q GetMenuItemsQuery) orderBy() string {
	if len(q.ordering) == 0 {
		return "m.id"
	}

	parts := make([]string, 0, len(q.ordering))
	for _, field := range q.ordering {
		if column, found := strings.CutPrefix(field, "-"); found {
			parts = append(parts, "m."+column+" DESC")
		} else {
			parts = append(parts, "m."+field)
		}
	}

	return strings.Join(parts, ", ")
}

// GetMenuItemsQueryResponse is one catalog entry with its category name.
type GetMenuItemsQueryResponse struct {
	ID           uint
	Title        string
	Price        decimal.Decimal
	Featured     bool
	CategoryID   uint
	CategoryName string
}
