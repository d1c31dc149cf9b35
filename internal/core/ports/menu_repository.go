package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
)

// MenuItemRepository is the catalog store. The ordering core only calls Get
// to snapshot an item's price; the CRUD surface backs the manager endpoints.
type MenuItemRepository interface {
	// Get retrieves a menu item. Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id uint) (*menu.MenuItem, error)

	// Add persists a new menu item and returns its id.
	Add(ctx context.Context, item *menu.MenuItem) (uint, error)

	// Update overwrites an existing menu item's fields.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Delete removes a menu item.
	Delete(ctx context.Context, id uint) error

	// GetCategory retrieves a category. Returns an ObjectNotFoundError when
	// absent.
	GetCategory(ctx context.Context, id uint) (*menu.Category, error)

	// AddCategory persists a new category and returns its id. Returns a
	// ConflictError when the name is taken.
	AddCategory(ctx context.Context, category *menu.Category) (uint, error)

	// UpdateCategory renames an existing category.
	UpdateCategory(ctx context.Context, category *menu.Category) error

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id uint) error
}
