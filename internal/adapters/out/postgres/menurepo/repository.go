package menurepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements MenuItemRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM catalog repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Get retrieves a menu item by id.
func (r *GormMenuRepository) Get(ctx context.Context, id uint) (*menu.MenuItem, error) {
	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", id)
		}
		return nil, err
	}

	return menuItemToDomain(dto)
}

// Add persists a new menu item and returns its id.
func (r *GormMenuRepository) Add(ctx context.Context, item *menu.MenuItem) (uint, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}

	dto := menuItemFromDomain(item)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// Update overwrites an existing menu item's fields. The map form keeps
// zero values like featured=false from being skipped.
func (r *GormMenuRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"title":       dto.Title,
		"price":       dto.Price,
		"featured":    dto.Featured,
		"category_id": dto.CategoryID,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItem", dto.ID)
	}

	return nil
}

// Delete removes a menu item.
func (r *GormMenuRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItem", id)
	}

	return nil
}

// GetCategory retrieves a category by id.
func (r *GormMenuRepository) GetCategory(ctx context.Context, id uint) (*menu.Category, error) {
	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id)
		}
		return nil, err
	}

	return categoryToDomain(dto)
}

// AddCategory persists a new category and returns its id. A taken name
// surfaces as a ConflictError.
func (r *GormMenuRepository) AddCategory(ctx context.Context, category *menu.Category) (uint, error) {
	if err := category.Validate(); err != nil {
		return 0, err
	}

	dto := categoryFromDomain(category)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.NewConflictErrorWithCause("category", err)
		}
		return 0, err
	}

	return dto.ID, nil
}

// UpdateCategory renames an existing category. A taken name surfaces as a
// ConflictError.
func (r *GormMenuRepository) UpdateCategory(ctx context.Context, category *menu.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(category)
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).Where("id = ?", dto.ID).Update("name", dto.Name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("category", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", dto.ID)
	}

	return nil
}

// DeleteCategory removes a category.
func (r *GormMenuRepository) DeleteCategory(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", id)
	}

	return nil
}
