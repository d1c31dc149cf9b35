package guard_test

import (
	"errors"
	"testing"

	"littlelemon/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("not constructed")

	t.Run("constructed passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		assert.NoError(t, g.Validate(errNotConstructed))
	})

	t.Run("zero value fails with given error", func(t *testing.T) {
		var g guard.ConstructorGuard
		assert.ErrorIs(t, g.Validate(errNotConstructed), errNotConstructed)
	})

	t.Run("zero value with nil error falls back to default", func(t *testing.T) {
		var g guard.ConstructorGuard
		assert.ErrorIs(t, g.Validate(nil), guard.ErrDefaultConstructorGuard)
	})

	t.Run("constructed ignores nil error", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		assert.NoError(t, g.Validate(nil))
	})
}
