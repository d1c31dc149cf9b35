package cartrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add inserts a new cart row. The composite primary key turns a repeated add
// of the same menu item into a ConflictError.
func (r *GormCartRepository) Add(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("cartItem", err)
		}
		return err
	}

	return nil
}

// Remove deletes one cart row.
func (r *GormCartRepository) Remove(ctx context.Context, customerID, menuItemID uint) error {
	result := r.db.WithContext(ctx).
		Where("customer_id = ? AND menu_item_id = ?", customerID, menuItemID).
		Delete(&CartItemDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartItem", fmt.Sprintf("%d/%d", customerID, menuItemID))
	}

	return nil
}

// Clear deletes all of the customer's cart rows.
func (r *GormCartRepository) Clear(ctx context.Context, customerID uint) error {
	return r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&CartItemDTO{}).Error
}

// RemoveItems deletes the customer's cart rows for the given menu items only.
func (r *GormCartRepository) RemoveItems(ctx context.Context, customerID uint, menuItemIDs []uint) error {
	if len(menuItemIDs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("customer_id = ? AND menu_item_id IN ?", customerID, menuItemIDs).
		Delete(&CartItemDTO{}).Error
}

// GetByCustomer returns the customer's cart rows.
func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID uint) ([]*cart.Item, error) {
	return r.getByCustomer(ctx, customerID, false)
}

// GetByCustomerForUpdate returns the customer's cart rows under row locks.
// Callers must hold an open transaction; the locks last until it ends.
func (r *GormCartRepository) GetByCustomerForUpdate(ctx context.Context, customerID uint) ([]*cart.Item, error) {
	return r.getByCustomer(ctx, customerID, true)
}

func (r *GormCartRepository) getByCustomer(ctx context.Context, customerID uint, forUpdate bool) ([]*cart.Item, error) {
	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dtos []CartItemDTO
	if err := db.Order("menu_item_id").Find(&dtos, "customer_id = ?", customerID).Error; err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// DeleteOlderThan removes cart rows created before the cutoff and returns how
// many were removed.
func (r *GormCartRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&CartItemDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
