package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders with their line items in the caller's
// scope.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the visible orders. Manager filters narrow the list;
// unknown usernames simply match nothing.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := h.filters(query)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.delivery_crew_id,
			o.total,
			o.date,
			o.status,
			cu.first_name,
			cu.email,
			dc.first_name,
			dc.email
		FROM orders o
		JOIN users cu ON cu.id = o.customer_id
		LEFT JOIN users dc ON dc.id = o.delivery_crew_id
		WHERE 1 = 1`+where+`
		ORDER BY `+query.orderBy(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrderQueryResponse, 0)
	ids := make([]uint, 0)

	for rows.Next() {
		resp, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		orders = append(orders, resp)
		ids = append(ids, resp.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	items, err := loadOrderItems(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}

// filters builds the WHERE fragment for the caller. Only managers get the
// username and status filters.
func (h GetOrdersQueryHandler) filters(query GetOrdersQuery) (string, []any) {
	if query.Role() != kernel.RoleManager {
		return orderScope(query.Role(), query.CallerID())
	}

	where := ""
	args := make([]any, 0, 3)

	if query.CustomerUsername() != "" {
		where += " AND cu.username = ?"
		args = append(args, query.CustomerUsername())
	}

	if query.CrewUsername() != "" {
		where += " AND dc.username = ?"
		args = append(args, query.CrewUsername())
	}

	if status := query.Status(); status != nil {
		where += " AND o.status = ?"
		args = append(args, *status)
	}

	return where, args
}
