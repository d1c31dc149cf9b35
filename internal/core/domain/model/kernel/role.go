package kernel

import (
	"fmt"

	"littlelemon/internal/pkg/errs"
)

// Role identifies the caller's position in the ordering workflow and decides
// which orders are visible and which order fields may be mutated.
//
// The role is resolved once per request from the caller's group membership and
// passed explicitly into command and query handlers. Dispatch precedence for
// order transitions is DeliveryCrew, then Manager, then Customer.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer is the default role: owns a cart, checks out orders and
	// sees only their own orders.
	RoleCustomer

	// RoleManager administers the catalog and sees and mutates any order.
	RoleManager

	// RoleDeliveryCrew delivers orders: sees orders assigned to them and may
	// only update an order's status.
	RoleDeliveryCrew
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:      "Unknown",
		RoleCustomer:     "Customer",
		RoleManager:      "Manager",
		RoleDeliveryCrew: "Delivery Crew",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:     "Customer",
		RoleManager:      "Manager",
		RoleDeliveryCrew: "Delivery Crew",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are Customer, Manager and DeliveryCrew; RoleUnknown fails.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromGroups derives a role from the caller's group memberships.
// Delivery Crew membership wins over Manager, matching the transition
// dispatch precedence; callers in neither group are customers. Group names
// match the identity provider's records.
func RoleFromGroups(groups []string) Role {
	role := RoleCustomer
	for _, g := range groups {
		switch g {
		case "Delivery Crew":
			return RoleDeliveryCrew
		case "Manager":
			role = RoleManager
		}
	}
	return role
}
