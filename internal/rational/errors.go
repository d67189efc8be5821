package rational

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the two failure kinds of this package. Use
// errors.Is to test for them; the concrete types carry the details.
var (
	ErrDivisionByZero = errors.New("rational: division by zero")
	ErrInvalidOperand = errors.New("rational: invalid operand")
)

// DefaultDivisionByZeroMessage is the message used when a DivisionByZeroError
// is created without one.
const DefaultDivisionByZeroMessage = "denominator of a rational number cannot be zero"

// Messages reported by the arithmetic operators when an operand cannot be
// coerced.
const (
	msgInvalidAdd = "can only add rational numbers or integers"
	msgInvalidMul = "can only multiply rational numbers or integers"
)

// DivisionByZeroError is returned when a Rational is constructed with a zero
// denominator.
type DivisionByZeroError struct {
	// Message is the human-readable description. Empty means
	// DefaultDivisionByZeroMessage.
	Message string
}

// NewDivisionByZeroError creates a DivisionByZeroError with a caller-supplied
// message, falling back to DefaultDivisionByZeroMessage when message is empty.
//
// Parameters:
//   - message: The message to report.
//
// Returns:
//   - error: A DivisionByZeroError.
func NewDivisionByZeroError(message string) error {
	if message == "" {
		message = DefaultDivisionByZeroMessage
	}
	return DivisionByZeroError{Message: message}
}

// Error returns the error message.
func (e DivisionByZeroError) Error() string {
	if e.Message == "" {
		return DefaultDivisionByZeroMessage
	}
	return e.Message
}

// Is reports whether target is ErrDivisionByZero.
func (e DivisionByZeroError) Is(target error) bool { return target == ErrDivisionByZero }

// InvalidOperandError is returned when an operation receives an operand that
// is neither a Rational nor convertible to one.
type InvalidOperandError struct {
	// Op names the operation that rejected the operand ("add", "multiply",
	// "append").
	Op string
	// Operand is the rejected value.
	Operand any
	// Message is the human-readable description.
	Message string
	// Cause is the construction error hit during coercion, if any.
	Cause error
}

// NewInvalidOperandError creates an InvalidOperandError for the given
// operation and operand.
//
// Parameters:
//   - op: The operation name.
//   - operand: The offending value.
//   - message: The message to report.
//   - cause: The construction error hit during coercion, or nil.
//
// Returns:
//   - error: An InvalidOperandError.
func NewInvalidOperandError(op string, operand any, message string, cause error) error {
	return InvalidOperandError{Op: op, Operand: operand, Message: message, Cause: cause}
}

// Error returns the error message.
func (e InvalidOperandError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("invalid operand %v for %s", e.Operand, e.Op)
}

// Is reports whether target is ErrInvalidOperand.
func (e InvalidOperandError) Is(target error) bool { return target == ErrInvalidOperand }

// Unwrap returns the construction error that caused the coercion failure.
func (e InvalidOperandError) Unwrap() error { return e.Cause }
