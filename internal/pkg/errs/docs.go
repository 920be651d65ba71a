// Package errs provides the typed errors shared by the domain, the use cases
// and the adapters.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrConflict) with a struct that
// carries the details and an optional Cause. Unwrap returns the sentinel, so
// callers classify errors with errors.Is and the HTTP adapter maps each
// sentinel to a status code in a single place.
package errs
