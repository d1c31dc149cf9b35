package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMenuItemsQueryHandler browses the catalog with filters and paging.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for catalog browse queries.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle returns one page of catalog entries matching the filters.
func (h GetMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsQuery,
) ([]GetMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	args := make([]any, 0, 5)

	if query.CategoryName() != "" {
		where += " AND c.name = ?"
		args = append(args, query.CategoryName())
	}

	if toPrice := query.ToPrice(); toPrice != nil {
		where += " AND m.price <= ?"
		args = append(args, *toPrice)
	}

	if query.Search() != "" {
		where += " AND m.title ILIKE ?"
		args = append(args, "%"+query.Search()+"%")
	}

	args = append(args, query.PerPage(), (query.Page()-1)*query.PerPage())

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
		WHERE 1 = 1`+where+`
		ORDER BY `+query.orderBy()+`
		LIMIT ? OFFSET ?`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetMenuItemsQueryResponse, 0)

	for rows.Next() {
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
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
