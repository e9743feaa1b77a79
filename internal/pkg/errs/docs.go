// Package errs provides the typed errors shared by the domain, application and
// adapter layers.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying the offending
// parameter and an optional cause. Unwrap returns the sentinel, so callers
// classify with errors.Is and inspect details with errors.As.
package errs
