package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// UpdateOrderCommandHandler dispatches order transitions by role, checked in
// precedence order: Delivery Crew, then Manager, then Customer. The whole
// transition, including the live catalog price reads behind an item
// replacement, runs in one transaction.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order transitions.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle validates the payload against the caller's role gate and applies the
// permitted mutation. Gate violations surface as ValueIsInvalidError /
// ValueIsRequiredError for the delivery crew and UnauthorizedError for
// customers; a missing order as ObjectNotFoundError.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var err error
	switch cmd.Role() {
	case kernel.RoleDeliveryCrew:
		err = h.applyDeliveryCrew(ctx, uow, cmd)
	case kernel.RoleManager:
		err = h.applyManager(ctx, uow, cmd)
	default:
		err = h.applyCustomer(ctx, uow, cmd)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyDeliveryCrew lets the crew flip the status and nothing else. The
// payload may carry at most 2 fields and must include status.
func (h *UpdateOrderCommandHandler) applyDeliveryCrew(ctx context.Context, uow OrderUoW, cmd UpdateOrderCommand) error {
	payload := cmd.Payload()
	if payload.FieldCount > 2 {
		return errs.NewValueIsInvalidError("payload")
	}
	if !payload.HasStatus {
		return errs.NewValueIsRequiredError("status")
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregate.ChangeStatus(payload.Status)
	return uow.OrderRepository().Update(ctx, aggregate)
}

// applyManager applies either a full re-derivation (payload has items) or a
// partial update of status/deliver_crew/date.
func (h *UpdateOrderCommandHandler) applyManager(ctx context.Context, uow OrderUoW, cmd UpdateOrderCommand) error {
	payload := cmd.Payload()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if payload.HasItems {
		if err = h.replaceItems(ctx, uow, aggregate, payload.Items); err != nil {
			return err
		}
	}

	if payload.HasStatus {
		aggregate.ChangeStatus(payload.Status)
	}
	if payload.HasDeliveryCrew {
		if err = aggregate.AssignDeliveryCrew(payload.DeliveryCrewID); err != nil {
			return err
		}
	}
	if payload.HasDate {
		aggregate.ChangeDate(payload.Date)
	}

	return uow.OrderRepository().Update(ctx, aggregate)
}

// applyCustomer accepts exactly one field, items, and runs the same
// re-derivation as the manager path. Any other payload shape is an
// authorization failure, not a validation one.
func (h *UpdateOrderCommandHandler) applyCustomer(ctx context.Context, uow OrderUoW, cmd UpdateOrderCommand) error {
	payload := cmd.Payload()
	if payload.FieldCount > 1 || !payload.HasItems {
		return errs.NewUnauthorizedError("update order")
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.replaceItems(ctx, uow, aggregate, payload.Items); err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, aggregate)
}

// replaceItems rebuilds the order's line item set from the payload and
// recomputes the total from live catalog prices, ignoring anything the client
// may claim a price to be.
func (h *UpdateOrderCommandHandler) replaceItems(
	ctx context.Context,
	uow OrderUoW,
	aggregate *order.Order,
	changes []ItemChange,
) error {
	total := decimal.Zero
	items := make([]order.Item, 0, len(changes))
	for _, change := range changes {
		menuItem, err := uow.MenuItemRepository().Get(ctx, change.MenuItemID)
		if err != nil {
			return err
		}

		item, err := order.NewItem(aggregate.CustomerID(), change.MenuItemID, change.Quantity)
		if err != nil {
			return err
		}

		items = append(items, item)
		total = total.Add(menuItem.Price().Mul(decimal.NewFromInt(int64(change.Quantity))))
	}

	_, err := aggregate.ReplaceItems(items, total)
	return err
}
