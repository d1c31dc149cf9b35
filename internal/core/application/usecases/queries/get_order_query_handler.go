package queries

import (
	"context"
	"database/sql"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its line items and the people
// attached to it.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order when it exists and is inside the caller's scope.
// Both a missing order and one belonging to someone else surface as
// ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	scope, args := orderScope(query.Role(), query.CallerID())
	args = append([]any{query.OrderID()}, args...)

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
		WHERE o.id = ?`+scope, args...).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	resp, err := scanOrder(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, []uint{resp.ID})
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items[resp.ID]

	return resp, nil
}

// orderScope returns the WHERE fragment restricting orders to the caller's
// visibility, with its bind arguments. Managers see everything.
func orderScope(role kernel.Role, callerID uint) (string, []any) {
	switch role {
	case kernel.RoleCustomer:
		return " AND o.customer_id = ?", []any{callerID}
	case kernel.RoleDeliveryCrew:
		return " AND o.delivery_crew_id = ?", []any{callerID}
	default:
		return "", nil
	}
}

// scanOrder reads one row produced by the order SELECT above.
func scanOrder(rows *sql.Rows) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var crewID sql.NullInt64
	var crewFirstName, crewEmail sql.NullString

	err := rows.Scan(
		&resp.ID,
		&resp.CustomerID,
		&crewID,
		&resp.Total,
		&resp.Date,
		&resp.Status,
		&resp.Customer.FirstName,
		&resp.Customer.Email,
		&crewFirstName,
		&crewEmail,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if crewID.Valid {
		resp.DeliveryCrew = &OrderUserView{
			FirstName: crewFirstName.String,
			Email:     crewEmail.String,
		}
	}

	return resp, nil
}

// loadOrderItems fetches the line items for a batch of orders, keyed by
// order id. Titles and prices come from the live catalog.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderIDs []uint) (map[uint][]OrderItemView, error) {
	byOrder := make(map[uint][]OrderItemView, len(orderIDs))
	if len(orderIDs) == 0 {
		return byOrder, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			m.title,
			m.price,
			oi.quantity
		FROM order_items oi
		JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id, oi.menu_item_id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uint
		var item OrderItemView

		err = rows.Scan(&orderID, &item.Title, &item.Price, &item.Quantity)
		if err != nil {
			return nil, err
		}

		byOrder[orderID] = append(byOrder[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return byOrder, nil
}
