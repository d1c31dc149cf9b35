package queries

import (
	"testing"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery(t *testing.T) {
	status := 1
	q, err := NewGetOrdersQuery(2, kernel.RoleManager, "alice", "bob", &status, "-total")
	require.NoError(t, err)

	assert.Equal(t, uint(2), q.CallerID())
	assert.Equal(t, kernel.RoleManager, q.Role())
	assert.Equal(t, "alice", q.CustomerUsername())
	assert.Equal(t, "bob", q.CrewUsername())
	require.NotNil(t, q.Status())
	assert.Equal(t, 1, *q.Status())
	assert.NoError(t, q.Validate())
}

func TestNewGetOrdersQuery_Validation(t *testing.T) {
	t.Run("zero caller", func(t *testing.T) {
		_, err := NewGetOrdersQuery(0, kernel.RoleCustomer, "", "", nil, "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := NewGetOrdersQuery(7, kernel.RoleUnknown, "", "", nil, "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown ordering field", func(t *testing.T) {
		_, err := NewGetOrdersQuery(7, kernel.RoleManager, "", "", nil, "username")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "ordering", invalid.ParamName)
	})

	t.Run("injection attempt is rejected", func(t *testing.T) {
		_, err := NewGetOrdersQuery(7, kernel.RoleManager, "", "", nil, "id; DROP TABLE orders")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value query fails validate", func(t *testing.T) {
		var q GetOrdersQuery
		assert.ErrorIs(t, q.Validate(), ErrGetOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrdersQuery_NonManagerDropsFiltersAndOrdering(t *testing.T) {
	status := 1

	for name, role := range map[string]kernel.Role{
		"customer":      kernel.RoleCustomer,
		"delivery crew": kernel.RoleDeliveryCrew,
	} {
		t.Run(name, func(t *testing.T) {
			// even a bogus ordering field cannot fail the request
			q, err := NewGetOrdersQuery(7, role, "alice", "bob", &status, "username")
			require.NoError(t, err)

			assert.Empty(t, q.CustomerUsername())
			assert.Empty(t, q.CrewUsername())
			assert.Nil(t, q.Status())
			assert.Empty(t, q.Ordering())
			assert.Equal(t, "o.id", q.orderBy())
		})
	}
}

func TestGetOrdersQuery_OrderBy(t *testing.T) {
	tests := map[string]struct {
		ordering string
		want     string
	}{
		"default":           {"", "o.id"},
		"ascending":         {"date", "o.date"},
		"descending":        {"-total", "o.total DESC"},
		"status descending": {"-status", "o.status DESC"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			q, err := NewGetOrdersQuery(2, kernel.RoleManager, "", "", nil, tt.ordering)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.orderBy())
		})
	}
}
