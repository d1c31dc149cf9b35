// Package identity is the read model for the external identity provider.
// Authentication itself happens upstream; this system only resolves who the
// caller is and which role they act under.
package identity

// User is the caller (or an order's customer / crew member) as the identity
// provider records them.
type User struct {
	ID        uint
	Username  string
	FirstName string
	Email     string
}
