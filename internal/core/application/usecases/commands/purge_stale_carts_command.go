package commands

import (
	"errors"
	"fmt"
	"time"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrPurgeStaleCartsCommandIsNotConstructed = errors.New(
		"PurgeStaleCartsCommand must be created via NewPurgeStaleCartsCommand constructor",
	)
)

// PurgeStaleCartsCommand deletes cart rows that sat unconverted for longer
// than the TTL. Run on a schedule by the jobs package.
type PurgeStaleCartsCommand struct {
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeStaleCartsCommand validates the TTL is positive.
func NewPurgeStaleCartsCommand(ttl time.Duration) (PurgeStaleCartsCommand, error) {
	if ttl <= 0 {
		return PurgeStaleCartsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"ttl", fmt.Errorf("%s is not positive", ttl))
	}

	return PurgeStaleCartsCommand{ttl: ttl, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleCartsCommandIsNotConstructed)
}

// TTL returns how long a cart row may live before purging.
func (c PurgeStaleCartsCommand) TTL() time.Duration {
	return c.ttl
}
