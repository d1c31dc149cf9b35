// Package orderrepo persists order aggregates and their line items.
//
// Line item rows are unique per (customer_id, menu_item_id) across all
// orders. Writing an existing pair is an upsert that overwrites the quantity
// and reassigns the row to the writing order, so a row always belongs to the
// customer's latest order that touched it. Deleting an order leaves its line
// item rows in place for the same reason.
package orderrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of an order aggregate. Line items
// live in their own table and are loaded separately.
type OrderDTO struct {
	ID             uint            `gorm:"primaryKey"`
	CustomerID     uint            `gorm:"index"`
	DeliveryCrewID *uint           `gorm:"index"`
	Total          decimal.Decimal `gorm:"type:numeric(6,2)"`
	Date           time.Time
	Status         int `gorm:"type:smallint;index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item row. The unique index over
// (customer_id, menu_item_id) backs the upsert in the repository.
type OrderItemDTO struct {
	ID         uint `gorm:"primaryKey"`
	OrderID    uint `gorm:"index"`
	CustomerID uint `gorm:"uniqueIndex:idx_order_items_customer_item"`
	MenuItemID uint `gorm:"uniqueIndex:idx_order_items_customer_item"`
	Quantity   int  `gorm:"type:smallint"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO) {
	dto := OrderDTO{
		ID:             aggregate.ID(),
		CustomerID:     aggregate.CustomerID(),
		DeliveryCrewID: aggregate.DeliveryCrewID(),
		Total:          aggregate.Total(),
		Date:           aggregate.Date(),
		Status:         int(aggregate.Status()),
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID(),
			CustomerID: item.CustomerID(),
			MenuItemID: item.MenuItemID(),
			Quantity:   item.Quantity(),
		})
	}

	return dto, items
}

// toDomain reconstructs an order aggregate from its rows.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, err := order.NewItem(itemDTO.CustomerID, itemDTO.MenuItemID, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.DeliveryCrewID,
		items,
		dto.Total,
		dto.Date,
		order.Status(dto.Status),
	)
}
