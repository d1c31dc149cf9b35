// Package cartrepo persists cart rows. The table is keyed by
// (customer_id, menu_item_id), which is what makes a duplicate add a
// database-level conflict rather than an application-level check.
package cartrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/cart"

	"github.com/shopspring/decimal"
)

// CartItemDTO is the database representation of one cart row. UnitPrice and
// Price are the values captured when the row was created; CreatedAt feeds the
// stale-cart purge job.
type CartItemDTO struct {
	CustomerID uint            `gorm:"primaryKey;autoIncrement:false"`
	MenuItemID uint            `gorm:"primaryKey;autoIncrement:false"`
	Quantity   int             `gorm:"type:smallint"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(6,2)"`
	Price      decimal.Decimal `gorm:"type:numeric(6,2)"`
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "cart_items".
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart row to its database representation.
func fromDomain(item *cart.Item) CartItemDTO {
	return CartItemDTO{
		CustomerID: item.CustomerID(),
		MenuItemID: item.MenuItemID(),
		Quantity:   item.Quantity(),
		UnitPrice:  item.UnitPrice(),
		Price:      item.Price(),
	}
}

// toDomain reconstructs a cart row, keeping the stored line price.
func toDomain(dto CartItemDTO) (*cart.Item, error) {
	return cart.RestoreItem(dto.CustomerID, dto.MenuItemID, dto.Quantity, dto.UnitPrice, dto.Price)
}
