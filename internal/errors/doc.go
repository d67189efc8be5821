// Package apperrors defines structured application error types and exit
// codes, separating configuration failures from report failures while
// carrying the underlying cause.
//
// All error types that wrap a cause implement Unwrap() to support errors.Is()
// and errors.As(). Domain errors of the rational arithmetic live in package
// rational, not here.
package apperrors
