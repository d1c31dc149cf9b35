package commands

import (
	"errors"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
)

// ClearCartCommand empties the caller's cart. Clearing an already empty cart
// succeeds.
type ClearCartCommand struct {
	customerID uint

	guard guard.ConstructorGuard
}

// NewClearCartCommand validates the customer id is set.
func NewClearCartCommand(customerID uint) (ClearCartCommand, error) {
	if customerID == 0 {
		return ClearCartCommand{}, errs.NewValueIsRequiredError("customerID")
	}

	return ClearCartCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner.
func (c ClearCartCommand) CustomerID() uint {
	return c.customerID
}
