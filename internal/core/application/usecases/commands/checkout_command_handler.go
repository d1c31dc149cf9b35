package commands

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CheckoutCommandHandler converts a cart into an order atomically.
//
// The whole conversion runs in one transaction: the cart rows are read under
// row locks, so two concurrent checkouts of the same cart serialize and the
// loser finds the cart already empty. Line item upserts ride the
// (customer, menu item) uniqueness constraint, so no duplicate rows can be
// created by concurrent writers. A storage conflict is retried once before
// being surfaced.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory

	// now is the clock; replaceable in tests
	now func() time.Time
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle runs checkout, retrying once when the transaction loses a storage
// race. An empty cart fails with a PreconditionFailedError and performs no
// writes.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (uint, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	id, err := h.checkout(ctx, cmd)
	if err != nil && errors.Is(err, errs.ErrConflict) {
		id, err = h.checkout(ctx, cmd)
	}
	return id, err
}

func (h *CheckoutCommandHandler) checkout(ctx context.Context, cmd CheckoutCommand) (uint, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rows, err := uow.CartRepository().GetByCustomerForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, errs.NewPreconditionFailedError("cart is empty")
	}

	total := decimal.Zero
	items := make([]order.Item, 0, len(rows))
	menuItemIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		item, itemErr := order.NewItem(cmd.CustomerID(), row.MenuItemID(), row.Quantity())
		if itemErr != nil {
			return 0, itemErr
		}
		items = append(items, item)
		menuItemIDs = append(menuItemIDs, row.MenuItemID())
		total = total.Add(row.Price())
	}

	aggregate, err := order.NewOrder(cmd.CustomerID(), items, total, h.now())
	if err != nil {
		return 0, err
	}

	id, err := uow.OrderRepository().Add(ctx, aggregate)
	if err != nil {
		return 0, err
	}

	// Delete only the rows the locked read returned. A row another request
	// inserted after that read is not part of this order and must survive.
	if err = uow.CartRepository().RemoveItems(ctx, cmd.CustomerID(), menuItemIDs); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
