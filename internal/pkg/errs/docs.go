// Package errs provides the standard error types shared by the wreaths service.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) matched with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// Domain packages keep their own sentinels (order.ErrIllegalTransition, for one) next to
// these; the HTTP layer matches both with errors.Is.
package errs
