package ports

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/cart"
)

// CartRepository persists cart rows. One row per (customer, menu item).
type CartRepository interface {
	// Add inserts a new cart row. Returns a ConflictError when the customer
	// already has a row for the menu item.
	Add(ctx context.Context, item *cart.Item) error

	// Remove deletes one cart row. Returns an ObjectNotFoundError when the
	// customer has no row for the menu item.
	Remove(ctx context.Context, customerID, menuItemID uint) error

	// Clear deletes all of the customer's cart rows. Clearing an empty cart
	// is not an error.
	Clear(ctx context.Context, customerID uint) error

	// RemoveItems deletes the customer's cart rows for the given menu items
	// only. Checkout uses it instead of Clear so a row inserted after the
	// locked read survives for the next checkout.
	RemoveItems(ctx context.Context, customerID uint, menuItemIDs []uint) error

	// GetByCustomer returns all of the customer's cart rows.
	GetByCustomer(ctx context.Context, customerID uint) ([]*cart.Item, error)

	// GetByCustomerForUpdate returns all of the customer's cart rows holding
	// row locks until the surrounding transaction ends. Checkout uses it to
	// serialize concurrent checkouts of the same cart.
	GetByCustomerForUpdate(ctx context.Context, customerID uint) ([]*cart.Item, error)

	// DeleteOlderThan removes cart rows created before the cutoff and
	// returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
