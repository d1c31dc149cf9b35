// Package menurepo persists the catalog: menu items and their categories.
package menurepo

import (
	"littlelemon/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// MenuItemDTO is the database representation of a catalog entry.
type MenuItemDTO struct {
	ID         uint            `gorm:"primaryKey"`
	Title      string          `gorm:"size:255;index"`
	Price      decimal.Decimal `gorm:"type:numeric(6,2)"`
	Featured   bool            `gorm:"index"`
	CategoryID uint            `gorm:"index"`
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// CategoryDTO is the database representation of a category. Names are unique.
type CategoryDTO struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;uniqueIndex"`
}

// TableName overrides GORM's default naming to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

func menuItemFromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         item.ID(),
		Title:      item.Title(),
		Price:      item.Price(),
		Featured:   item.Featured(),
		CategoryID: item.CategoryID(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	return menu.RestoreMenuItem(dto.ID, dto.Title, dto.Price, dto.CategoryID, dto.Featured)
}

func categoryFromDomain(category *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:   category.ID(),
		Name: category.Name(),
	}
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	return menu.RestoreCategory(dto.ID, dto.Name)
}
