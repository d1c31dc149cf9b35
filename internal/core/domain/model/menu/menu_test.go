package menu_test

import (
	"testing"

	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	item, err := menu.NewMenuItem("Bruschetta", decimal.RequireFromString("4.25"), 1, true)
	require.NoError(t, err)

	assert.Zero(t, item.ID())
	assert.Equal(t, "Bruschetta", item.Title())
	assert.True(t, item.Price().Equal(decimal.RequireFromString("4.25")))
	assert.Equal(t, uint(1), item.CategoryID())
	assert.True(t, item.Featured())
}

func TestNewMenuItem_Validation(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		_, err := menu.NewMenuItem("", decimal.Zero, 1, false)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := menu.NewMenuItem("Bruschetta", decimal.RequireFromString("-1"), 1, false)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero category", func(t *testing.T) {
		_, err := menu.NewMenuItem("Bruschetta", decimal.Zero, 0, false)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreMenuItem(t *testing.T) {
	item, err := menu.RestoreMenuItem(5, "Bruschetta", decimal.RequireFromString("4.25"), 1, false)
	require.NoError(t, err)
	assert.Equal(t, uint(5), item.ID())
}

func TestCategory(t *testing.T) {
	c, err := menu.NewCategory("Appetizers")
	require.NoError(t, err)
	assert.Zero(t, c.ID())
	assert.Equal(t, "Appetizers", c.Name())

	restored, err := menu.RestoreCategory(2, "Mains")
	require.NoError(t, err)
	assert.Equal(t, uint(2), restored.ID())

	_, err = menu.NewCategory("")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestMenu_Validate_ZeroValues(t *testing.T) {
	var item menu.MenuItem
	assert.ErrorIs(t, item.Validate(), menu.ErrMenuItemIsNotConstructed)

	var category menu.Category
	assert.ErrorIs(t, category.Validate(), menu.ErrCategoryIsNotConstructed)
}
