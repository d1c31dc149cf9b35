package orderrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add persists a new order, upserts its line items and returns the assigned
// id. A uniqueness violation that slips past the upsert surfaces as a
// ConflictError so callers can retry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (uint, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto, items := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.NewConflictErrorWithCause("order", err)
		}
		return 0, err
	}

	for i := range items {
		items[i].OrderID = dto.ID
	}

	if err := r.upsertItems(ctx, items); err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// Get retrieves an order with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id uint) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	var items []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Order("menu_item_id").
		Find(&items, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

// Update persists the aggregate's mutable fields. When the line item set was
// replaced, detached rows are deleted scoped to the order's customer and the
// new set is upserted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"delivery_crew_id": dto.DeliveryCrewID,
		"total":            dto.Total,
		"date":             dto.Date,
		"status":           dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	if !aggregate.ItemsReplaced() {
		return nil
	}

	if removed := aggregate.RemovedItemIDs(); len(removed) > 0 {
		err := r.db.WithContext(ctx).
			Where("customer_id = ? AND menu_item_id IN ?", dto.CustomerID, removed).
			Delete(&OrderItemDTO{}).Error
		if err != nil {
			return err
		}
	}

	return r.upsertItems(ctx, items)
}

// Delete removes an order. Line item rows stay behind since they belong to
// the (customer, menu item) pair rather than the order.
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	return nil
}

// upsertItems writes line items through the (customer_id, menu_item_id)
// unique index. An existing pair gets its quantity overwritten and the row
// reassigned to the writing order.
func (r *GormOrderRepository) upsertItems(ctx context.Context, items []OrderItemDTO) error {
	if len(items) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "order_id"}),
	}).Create(&items).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("orderItem", err)
		}
		return err
	}

	return nil
}
