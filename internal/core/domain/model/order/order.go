package order

import (
	"errors"
	"fmt"
	"time"

	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate produced by checkout. It carries an immutable
// creation date, a total fixed at checkout (or recomputed server-side on an
// item replacement), the line item set and the delivery assignment.
//
// Order follows these invariants:
//   - Must reference a customer
//   - Must contain at least one line item, all owned by the same customer
//   - Total is an exact fixed-point amount, never negative
//   - Mutations happen only through the role-gated transition commands
type Order struct {
	id             uint
	customerID     uint
	deliveryCrewID *uint
	items          []Item
	total          decimal.Decimal
	date           time.Time
	status         Status

	// itemsReplaced marks that the line item set was rewritten; the repository
	// only touches line item rows when it is set
	itemsReplaced bool

	// removedItemIDs are menu item ids whose line items were detached by the
	// last ReplaceItems call; deletion is scoped to this order's customer
	removedItemIDs []uint

	isConstructed bool
}

// NewOrder creates a pending order from checkout results. The id is zero until
// the repository persists the order.
func NewOrder(customerID uint, items []Item, total decimal.Decimal, date time.Time) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		date:          date,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts an empty line item set: a later order of the same customer may have
// taken over all of this order's rows.
func RestoreOrder(
	id uint,
	customerID uint,
	deliveryCrewID *uint,
	items []Item,
	total decimal.Decimal,
	date time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		id:             id,
		deliveryCrewID: deliveryCrewID,
		date:           date,
		status:         status,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	if err := o.validateItemsOwned(items); err != nil {
		return nil, err
	}
	o.items = items

	return o, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identifier, zero for an unpersisted order.
func (o *Order) ID() uint {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() uint {
	return o.customerID
}

// DeliveryCrewID returns the assigned delivery crew member.
// Returns nil while unassigned.
func (o *Order) DeliveryCrewID() *uint {
	return o.deliveryCrewID
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	return o.items
}

// Total returns the order total.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Date returns the creation timestamp.
func (o *Order) Date() time.Time {
	return o.date
}

// Status returns the current status code.
func (o *Order) Status() Status {
	return o.status
}

// ItemsReplaced reports whether the line item set was rewritten since the
// order was loaded.
func (o *Order) ItemsReplaced() bool {
	return o.itemsReplaced
}

// RemovedItemIDs returns the menu item ids detached by the last ReplaceItems.
func (o *Order) RemovedItemIDs() []uint {
	return o.removedItemIDs
}

// ChangeStatus sets the status code. Codes are opaque beyond pending, so any
// value is accepted.
func (o *Order) ChangeStatus(status Status) {
	o.status = status
}

// AssignDeliveryCrew assigns a crew member to deliver the order.
func (o *Order) AssignDeliveryCrew(crewID uint) error {
	if crewID == 0 {
		return errs.NewValueIsRequiredError("deliveryCrewID")
	}
	o.deliveryCrewID = &crewID
	return nil
}

// ChangeDate overrides the order date. Only the manager transition reaches
// this.
func (o *Order) ChangeDate(date time.Time) {
	o.date = date
}

// ReplaceItems swaps the line item set for a new one and fixes the freshly
// computed total. Line items whose menu item id is absent from the new set are
// recorded as removed so the repository can detach them, scoped to this
// order's customer. Returns the removed menu item ids.
func (o *Order) ReplaceItems(items []Item, total decimal.Decimal) ([]uint, error) {
	if err := o.validateItems(items); err != nil {
		return nil, err
	}
	if total.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is negative", total))
	}

	kept := make(map[uint]bool, len(items))
	for _, it := range items {
		kept[it.MenuItemID()] = true
	}

	removed := make([]uint, 0)
	for _, it := range o.items {
		if !kept[it.MenuItemID()] {
			removed = append(removed, it.MenuItemID())
		}
	}

	o.items = items
	o.total = total
	o.itemsReplaced = true
	o.removedItemIDs = removed
	return removed, nil
}

func (o *Order) setCustomerID(customerID uint) error {
	if customerID == 0 {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if err := o.validateItems(items); err != nil {
		return err
	}
	o.items = items
	return nil
}

func (o *Order) setTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is negative", total))
	}
	o.total = total
	return nil
}

func (o *Order) validateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	return o.validateItemsOwned(items)
}

func (o *Order) validateItemsOwned(items []Item) error {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
		if it.CustomerID() != o.customerID {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("line item customer %d does not match order customer %d", it.CustomerID(), o.customerID),
			)
		}
	}
	return nil
}
