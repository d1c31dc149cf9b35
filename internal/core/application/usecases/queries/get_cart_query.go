// Package queries contains read operations for retrieving system state.
// Queries bypass the domain model and read optimized projections straight
// from the database, keeping the CQRS split with the commands package.
package queries

import (
	"errors"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves a customer's cart ledger.
//
// Example:
//
//	query, err := NewGetCartQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cart: %w", err)
//	}
//
//	for _, row := range rows {
//	    fmt.Printf("%s x%d = %s\n", row.Title, row.Quantity, row.Price)
//	}
type GetCartQuery struct {
	customerID uint

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query scoped to one customer.
func NewGetCartQuery(customerID uint) (GetCartQuery, error) {
	if customerID == 0 {
		return GetCartQuery{}, errs.NewValueIsRequiredError("customerID")
	}

	return GetCartQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) CustomerID() uint { return q.customerID }

// GetCartQueryResponse is one cart row. Title comes from the live catalog;
// UnitPrice and Price are the values captured when the row was added.
type GetCartQueryResponse struct {
	MenuItemID uint
	Title      string
	Quantity   int
	UnitPrice  decimal.Decimal
	Price      decimal.Decimal
}
