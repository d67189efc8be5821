// Package rational implements an exact rational number type.
//
// A Rational is a numerator/denominator pair backed by math/big integers. Every
// value produced by this package is kept in canonical form:
//
//   - the denominator is never zero,
//   - numerator and denominator share no common factor other than 1,
//   - the denominator is positive, so the sign lives on the numerator.
//
// Values are immutable once built. Add and Mul return new values and accept
// either another Rational or anything Coerce can turn into one (plain Go
// integers, *big.Int, *big.Rat, integral floats). Operands that cannot be
// coerced produce an InvalidOperandError; a zero denominator at construction
// produces a DivisionByZeroError.
package rational
