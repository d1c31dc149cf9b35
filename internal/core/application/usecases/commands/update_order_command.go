package commands

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// ItemChange is one entry of a PATCH items payload: a menu item and the
// quantity to set. Prices are never taken from the client; the handler reads
// them from the catalog.
type ItemChange struct {
	MenuItemID uint
	Quantity   int
}

// UpdatePayload carries the parsed PATCH body plus its raw shape. FieldCount
// is the number of top-level JSON fields in the request; the role gates are
// defined over that count, so unknown fields still count against it.
type UpdatePayload struct {
	FieldCount int

	HasStatus bool
	Status    order.Status

	HasDeliveryCrew bool
	DeliveryCrewID  uint

	HasDate bool
	Date    time.Time

	HasItems bool
	Items    []ItemChange
}

// UpdateOrderCommand applies a role-gated transition to an order. Which fields
// may change is decided by the caller's role:
//
//	Delivery Crew  status only; payload capped at 2 fields and must carry status
//	Manager        with items: full re-derivation (items, recomputed total,
//	               plus optional status/deliver_crew/date); without items:
//	               partial update of status/deliver_crew/date
//	Customer       exactly one field, items; total recomputed server-side
type UpdateOrderCommand struct {
	orderID  uint
	callerID uint
	role     kernel.Role
	payload  UpdatePayload

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates identities and the role; payload shape is
// judged by the handler per role.
func NewUpdateOrderCommand(orderID, callerID uint, role kernel.Role, payload UpdatePayload) (UpdateOrderCommand, error) {
	if orderID == 0 {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if callerID == 0 {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("callerID")
	}
	if err := role.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID:  orderID,
		callerID: callerID,
		role:     role,
		payload:  payload,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c UpdateOrderCommand) OrderID() uint {
	return c.orderID
}

// CallerID returns the acting user.
func (c UpdateOrderCommand) CallerID() uint {
	return c.callerID
}

// Role returns the caller's resolved role.
func (c UpdateOrderCommand) Role() kernel.Role {
	return c.role
}

// Payload returns the parsed PATCH body.
func (c UpdateOrderCommand) Payload() UpdatePayload {
	return c.payload
}
