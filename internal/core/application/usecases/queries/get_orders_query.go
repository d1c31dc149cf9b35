package queries

import (
	"errors"
	"fmt"
	"strings"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// orderSortColumns is the whitelist of sortable order columns. Ordering is
// interpolated into SQL, so anything outside this map is rejected up front.
func orderSortColumns() map[string]struct{} {
	return map[string]struct{}{
		"id":               {},
		"customer_id":      {},
		"delivery_crew_id": {},
		"total":            {},
		"date":             {},
		"status":           {},
	}
}

// GetOrdersQuery lists orders inside the caller's scope. Managers see every
// order and may filter by customer username, delivery crew username and
// status, and sort by a single whitelisted column (prefix "-" for
// descending). For customers and delivery crew the filters and ordering are
// ignored and the list is scoped to them.
type GetOrdersQuery struct {
	callerID uint
	role     kernel.Role

	customerUsername string
	crewUsername     string
	status           *int
	ordering         string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order list query. For managers an ordering
// field outside the whitelist fails with ValueIsInvalid instead of being
// silently dropped; for other roles the filter and ordering parameters are
// discarded.
func NewGetOrdersQuery(
	callerID uint,
	role kernel.Role,
	customerUsername string,
	crewUsername string,
	status *int,
	ordering string,
) (GetOrdersQuery, error) {
	if callerID == 0 {
		return GetOrdersQuery{}, errs.NewValueIsRequiredError("callerID")
	}

	if err := role.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	// Filters and ordering are a manager-only surface. For other callers the
	// parameters are dropped, not validated: a customer sending ?ordering=bogus
	// still gets their list.
	if role != kernel.RoleManager {
		customerUsername, crewUsername, status, ordering = "", "", nil, ""
	}

	if ordering != "" {
		column := strings.TrimPrefix(ordering, "-")
		if _, ok := orderSortColumns()[column]; !ok {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
				"ordering", fmt.Errorf("%q is not a sortable field", ordering))
		}
	}

	return GetOrdersQuery{
		callerID:         callerID,
		role:             role,
		customerUsername: customerUsername,
		crewUsername:     crewUsername,
		status:           status,
		ordering:         ordering,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) CallerID() uint           { return q.callerID }
func (q GetOrdersQuery) Role() kernel.Role        { return q.role }
func (q GetOrdersQuery) CustomerUsername() string { return q.customerUsername }
func (q GetOrdersQuery) CrewUsername() string     { return q.crewUsername }
func (q GetOrdersQuery) Status() *int             { return q.status }
func (q GetOrdersQuery) Ordering() string         { return q.ordering }

// orderBy renders the validated ordering as a SQL fragment. Defaults to id
// ascending.
func (q GetOrdersQuery) orderBy() string {
	if q.ordering == "" {
		return "o.id"
	}

	if column, found := strings.CutPrefix(q.ordering, "-"); found {
		return "o." + column + " DESC"
	}

	return "o." + q.ordering
}
