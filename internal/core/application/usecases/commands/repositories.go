// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: a guarded command struct created
// through a validating constructor, and a handler that runs the operation
// inside a unit of work transaction.
package commands

import (
	"context"

	"littlelemon/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest composition that covers the repositories
// they touch.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuRepoFactory provides access to the catalog repository within a transaction.
	MenuRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// CartUoW manages transactions for cart mutations. Adding to the cart
	// also reads the catalog to capture the item price.
	CartUoW interface {
		TxManager
		CartRepoFactory
		MenuRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the checkout transaction: it consumes the cart and
	// writes the order atomically.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order transitions. Item replacement
	// reads live catalog prices inside the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MenuUoW manages transactions for catalog mutations.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates new catalog unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}
)
