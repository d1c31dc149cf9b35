package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCategoriesQueryHandler lists the catalog's categories.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler creates a handler for category list queries.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle returns every category ordered by id.
func (h GetCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetCategoriesQuery,
) ([]GetCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]GetCategoriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM categories
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category GetCategoriesQueryResponse

		if err = rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
