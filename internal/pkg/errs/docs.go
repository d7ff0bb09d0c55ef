// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters.
//
// Every type pairs a struct carrying details (ParamName, Cause, ...) with a
// sentinel it unwraps to, so callers classify with errors.Is:
//
//	errors.Is(err, errs.ErrObjectNotFound) // 404
//	errors.Is(err, errs.ErrForbidden)      // 403
//	errors.Is(err, errs.ErrConflict)       // 409
//
// Unwrap returns only the sentinel; the Cause is reported in Error() but is
// not part of the chain. Validation failures are aggregated with errors.Join.
package errs
