package order

import "strconv"

// Status is the order's lifecycle state. Zero is pending; any other code is
// carried through opaquely and interpreted by the clients (the delivery crew
// sets it through the status-only transition). Role gating only distinguishes
// pending from non-pending, so no state machine is enforced here.
type Status int

// StatusPending is the initial status assigned at checkout.
const StatusPending Status = 0

// IsPending reports whether the order is still awaiting processing.
func (s Status) IsPending() bool {
	return s == StatusPending
}

// String returns the numeric code as text.
func (s Status) String() string {
	return strconv.Itoa(int(s))
}
