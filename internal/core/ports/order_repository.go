package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates and their line items.
//
// Line item rows are unique per (customer, menu item) across all orders:
// writing an existing pair overwrites its quantity and reassigns the row to
// the writing order. Repositories enforce this with a uniqueness constraint
// plus an upsert, so concurrent writers cannot create duplicates.
type OrderRepository interface {
	// Add persists a new order and upserts its line items. Returns the
	// assigned order id.
	Add(ctx context.Context, aggregate *order.Order) (uint, error)

	// Get retrieves an order with its line items. Returns an
	// ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id uint) (*order.Order, error)

	// Update persists the aggregate's status, delivery assignment, date and
	// total. When the aggregate's line item set was replaced, detached rows
	// are deleted (scoped to the order's customer) and the remaining set is
	// upserted. Returns an ObjectNotFoundError when the order is gone.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order. Line item rows survive since they are owned
	// by the (customer, menu item) pair, not the order. Returns an
	// ObjectNotFoundError when no such order exists.
	Delete(ctx context.Context, id uint) error
}
