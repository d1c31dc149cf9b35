package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCartQueryHandler reads cart rows joined with the catalog.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle returns the customer's cart rows ordered by menu item id.
// An empty cart yields an empty slice, not an error.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) ([]GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetCartQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.menu_item_id,
			m.title,
			c.quantity,
			c.unit_price,
			c.price
		FROM cart_items c
		JOIN menu_items m ON m.id = c.menu_item_id
		WHERE c.customer_id = ?
		ORDER BY c.menu_item_id
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetCartQueryResponse

		err = rows.Scan(
			&item.MenuItemID,
			&item.Title,
			&item.Quantity,
			&item.UnitPrice,
			&item.Price,
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
