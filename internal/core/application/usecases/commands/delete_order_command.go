package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand removes an order. Managers only.
type DeleteOrderCommand struct {
	orderID uint
	role    kernel.Role

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand validates the order id and role.
func NewDeleteOrderCommand(orderID uint, role kernel.Role) (DeleteOrderCommand, error) {
	if orderID == 0 {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if err := role.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{orderID: orderID, role: role, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order being deleted.
func (c DeleteOrderCommand) OrderID() uint {
	return c.orderID
}

// Role returns the caller's resolved role.
func (c DeleteOrderCommand) Role() kernel.Role {
	return c.role
}
