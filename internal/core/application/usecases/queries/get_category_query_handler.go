package queries

import (
	"context"

	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCategoryQueryHandler reads one category row.
type GetCategoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoryQueryHandler creates a handler for single category queries.
func NewGetCategoryQueryHandler(db *gorm.DB) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{db: db}
}

// Handle returns the category or ObjectNotFoundError.
func (h GetCategoryQueryHandler) Handle(
	ctx context.Context,
	query GetCategoryQuery,
) (GetCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCategoriesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM categories
		WHERE id = ?
	`, query.CategoryID()).Rows()
	if err != nil {
		return GetCategoriesQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetCategoriesQueryResponse{}, err
		}
		return GetCategoriesQueryResponse{}, errs.NewObjectNotFoundError("category", query.CategoryID())
	}

	var category GetCategoriesQueryResponse
	if err = rows.Scan(&category.ID, &category.Name); err != nil {
		return GetCategoriesQueryResponse{}, err
	}

	return category, nil
}
