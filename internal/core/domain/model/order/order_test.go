package order_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderDate = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func mustItem(t *testing.T, customerID, menuItemID uint, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(customerID, menuItemID, quantity)
	require.NoError(t, err)
	return item
}

func TestNewOrder_StartsPending(t *testing.T) {
	items := []order.Item{mustItem(t, 7, 1, 2), mustItem(t, 7, 5, 1)}

	o, err := order.NewOrder(7, items, decimal.RequireFromString("23.25"), orderDate)
	require.NoError(t, err)

	assert.Zero(t, o.ID())
	assert.Equal(t, uint(7), o.CustomerID())
	assert.Nil(t, o.DeliveryCrewID())
	assert.True(t, o.Status().IsPending())
	assert.True(t, o.Total().Equal(decimal.RequireFromString("23.25")))
	assert.Equal(t, orderDate, o.Date())
	assert.False(t, o.ItemsReplaced())
}

func TestNewOrder_Validation(t *testing.T) {
	t.Run("zero customer", func(t *testing.T) {
		_, err := order.NewOrder(0, []order.Item{mustItem(t, 7, 1, 1)}, decimal.Zero, orderDate)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("no items", func(t *testing.T) {
		_, err := order.NewOrder(7, nil, decimal.Zero, orderDate)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("item owned by another customer", func(t *testing.T) {
		_, err := order.NewOrder(7, []order.Item{mustItem(t, 8, 1, 1)}, decimal.Zero, orderDate)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative total", func(t *testing.T) {
		_, err := order.NewOrder(7, []order.Item{mustItem(t, 7, 1, 1)},
			decimal.RequireFromString("-1.00"), orderDate)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	crew := uint(3)
	o, err := order.RestoreOrder(12, 7, &crew,
		[]order.Item{mustItem(t, 7, 1, 2)},
		decimal.RequireFromString("19.00"), orderDate, order.Status(2))
	require.NoError(t, err)

	assert.Equal(t, uint(12), o.ID())
	require.NotNil(t, o.DeliveryCrewID())
	assert.Equal(t, uint(3), *o.DeliveryCrewID())
	assert.Equal(t, order.Status(2), o.Status())
	assert.False(t, o.Status().IsPending())
}

func TestRestoreOrder_EmptyItemSet(t *testing.T) {
	// all of the order's line item rows may have moved to a newer order
	o, err := order.RestoreOrder(12, 7, nil, nil,
		decimal.RequireFromString("19.00"), orderDate, order.StatusPending)
	require.NoError(t, err)
	assert.Empty(t, o.Items())
}

func TestOrder_AssignDeliveryCrew(t *testing.T) {
	o, err := order.NewOrder(7, []order.Item{mustItem(t, 7, 1, 1)}, decimal.Zero, orderDate)
	require.NoError(t, err)

	require.NoError(t, o.AssignDeliveryCrew(3))
	require.NotNil(t, o.DeliveryCrewID())
	assert.Equal(t, uint(3), *o.DeliveryCrewID())

	assert.ErrorIs(t, o.AssignDeliveryCrew(0), errs.ErrValueIsRequired)
}

func TestOrder_ReplaceItems(t *testing.T) {
	o, err := order.NewOrder(7,
		[]order.Item{mustItem(t, 7, 1, 2), mustItem(t, 7, 5, 1)},
		decimal.RequireFromString("23.25"), orderDate)
	require.NoError(t, err)

	removed, err := o.ReplaceItems(
		[]order.Item{mustItem(t, 7, 5, 3)},
		decimal.RequireFromString("12.75"))
	require.NoError(t, err)

	assert.Equal(t, []uint{1}, removed)
	assert.Equal(t, []uint{1}, o.RemovedItemIDs())
	assert.True(t, o.ItemsReplaced())
	assert.Len(t, o.Items(), 1)
	assert.Equal(t, 3, o.Items()[0].Quantity())
	assert.True(t, o.Total().Equal(decimal.RequireFromString("12.75")))
}

func TestOrder_ReplaceItems_Validation(t *testing.T) {
	o, err := order.NewOrder(7, []order.Item{mustItem(t, 7, 1, 1)}, decimal.Zero, orderDate)
	require.NoError(t, err)

	t.Run("empty set", func(t *testing.T) {
		_, err := o.ReplaceItems(nil, decimal.Zero)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("foreign item", func(t *testing.T) {
		_, err := o.ReplaceItems([]order.Item{mustItem(t, 8, 5, 1)}, decimal.Zero)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative total", func(t *testing.T) {
		_, err := o.ReplaceItems([]order.Item{mustItem(t, 7, 5, 1)},
			decimal.RequireFromString("-0.01"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	// failed replacements leave the order untouched
	assert.False(t, o.ItemsReplaced())
	assert.Len(t, o.Items(), 1)
}

func TestOrder_ChangeStatusAndDate(t *testing.T) {
	o, err := order.NewOrder(7, []order.Item{mustItem(t, 7, 1, 1)}, decimal.Zero, orderDate)
	require.NoError(t, err)

	o.ChangeStatus(order.Status(1))
	assert.Equal(t, order.Status(1), o.Status())
	assert.False(t, o.Status().IsPending())

	moved := orderDate.AddDate(0, 0, 1)
	o.ChangeDate(moved)
	assert.Equal(t, moved, o.Date())
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o order.Order
	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	assert.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "0", order.StatusPending.String())
	assert.Equal(t, "2", order.Status(2).String())
}
