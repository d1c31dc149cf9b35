// Package errs defines the error taxonomy shared by the domain, application
// and adapter layers.
//
// Every typed error wraps exactly one sentinel:
//
//   - ErrObjectNotFound: the entity does not exist or is hidden from the caller
//   - ErrValueIsInvalid: a supplied value violates a validation rule
//   - ErrValueIsRequired: a required value is missing
//   - ErrConflict: the operation collided with existing state
//   - ErrUnauthorized: the caller's role forbids the operation
//   - ErrPreconditionFailed: the operation's entry condition does not hold
//
// Callers classify with errors.Is against the sentinels and, when they need
// the offending parameter, unwrap the concrete type with errors.As. The HTTP
// adapter relies on this to translate any error chain into a status code
// without knowing which layer produced it.
package errs
