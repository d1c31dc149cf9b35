package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
)

// UserRepository reads from the identity provider's records. This system never
// writes users or group memberships.
type UserRepository interface {
	// Get retrieves a user. Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id uint) (*identity.User, error)

	// GetByUsername retrieves a user by username. Returns an
	// ObjectNotFoundError when absent.
	GetByUsername(ctx context.Context, username string) (*identity.User, error)

	// RoleOf resolves the user's role from their group memberships.
	RoleOf(ctx context.Context, userID uint) (kernel.Role, error)
}
