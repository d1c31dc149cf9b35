package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate() when a
// nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, commands and queries are only created
// through their designated constructor functions. A zero-value struct fails
// validation, so half-initialized objects cannot slip into handlers.
//
// Example usage:
//
//	type CheckoutCommand struct {
//	    customerID uint
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCheckoutCommand(customerID uint) (CheckoutCommand, error) {
//	    if customerID == 0 {
//	        return CheckoutCommand{}, errs.NewValueIsRequiredError("customerID")
//	    }
//	    return CheckoutCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CheckoutCommand) Validate() error {
//	    return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard marking an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns validationError (or ErrDefaultConstructorGuard when
// validationError is nil) for zero-value objects, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
