package userrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user by id.
func (r *GormUserRepository) Get(ctx context.Context, id uint) (*identity.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// GetByUsername retrieves a user by username.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", username)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// RoleOf resolves the user's role from their group memberships. A user in no
// group is a customer.
func (r *GormUserRepository) RoleOf(ctx context.Context, userID uint) (kernel.Role, error) {
	var groups []string
	err := r.db.WithContext(ctx).
		Model(&UserGroupDTO{}).
		Where("user_id = ?", userID).
		Pluck("name", &groups).Error
	if err != nil {
		return kernel.RoleUnknown, err
	}

	return kernel.RoleFromGroups(groups), nil
}
