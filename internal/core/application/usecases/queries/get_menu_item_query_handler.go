package queries

import (
	"context"

	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMenuItemQueryHandler reads one catalog entry with its category name.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a handler for single catalog queries.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle returns the catalog entry or ObjectNotFoundError.
func (h GetMenuItemQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemQuery,
) (GetMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuItemsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.title,
			m.price,
			m.featured,
			m.category_id,
			c.name
		FROM menu_items m
		JOIN categories c ON c.id = m.category_id
		WHERE m.id = ?
	`, query.MenuItemID()).Rows()
	if err != nil {
		return GetMenuItemsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetMenuItemsQueryResponse{}, err
		}
		return GetMenuItemsQueryResponse{}, errs.NewObjectNotFoundError("menuItem", query.MenuItemID())
	}

	var item GetMenuItemsQueryResponse
	err = rows.Scan(
		&item.ID,
		&item.Title,
		&item.Price,
		&item.Featured,
		&item.CategoryID,
		&item.CategoryName,
	)
	if err != nil {
		return GetMenuItemsQueryResponse{}, err
	}

	return item, nil
}
