package commands

import (
	"errors"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

// CheckoutCommand converts the caller's cart into a pending order and clears
// the cart.
type CheckoutCommand struct {
	customerID uint

	guard guard.ConstructorGuard
}

// NewCheckoutCommand validates the customer id is set.
func NewCheckoutCommand(customerID uint) (CheckoutCommand, error) {
	if customerID == 0 {
		return CheckoutCommand{}, errs.NewValueIsRequiredError("customerID")
	}

	return CheckoutCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the checking-out customer.
func (c CheckoutCommand) CustomerID() uint {
	return c.customerID
}
