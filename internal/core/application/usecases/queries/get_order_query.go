package queries

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order visible to the caller. Managers see
// any order, customers their own, delivery crew the orders assigned to them.
// An order outside the caller's scope is reported as not found rather than
// revealing that it exists.
type GetOrderQuery struct {
	orderID  uint
	callerID uint
	role     kernel.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order as seen by the caller.
func NewGetOrderQuery(orderID, callerID uint, role kernel.Role) (GetOrderQuery, error) {
	if orderID == 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	if callerID == 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("callerID")
	}

	if err := role.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:  orderID,
		callerID: callerID,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() uint     { return q.orderID }
func (q GetOrderQuery) CallerID() uint    { return q.callerID }
func (q GetOrderQuery) Role() kernel.Role { return q.role }

// OrderUserView is the short user representation embedded in order responses.
type OrderUserView struct {
	FirstName string
	Email     string
}

// OrderItemView is one order line: the live catalog item plus the ordered
// quantity.
type OrderItemView struct {
	Title    string
	Price    decimal.Decimal
	Quantity int
}

// GetOrderQueryResponse is the full order read model. DeliveryCrew is nil
// until a manager assigns one.
type GetOrderQueryResponse struct {
	ID           uint
	CustomerID   uint
	Customer     OrderUserView
	DeliveryCrew *OrderUserView
	Items        []OrderItemView
	Total        decimal.Decimal
	Date         time.Time
	Status       int
}
