package rational

import (
	"errors"
	"math"
	"math/big"
	"reflect"
)

// Coerce converts v to a Rational. It accepts:
//
//   - Rational and non-nil *Rational, returned as is,
//   - every signed and unsigned Go integer type, including named ones,
//   - non-nil *big.Int and *big.Rat,
//   - float32 and float64 values that are finite and integral.
//
// Everything else (strings, nil, NaN, fractional floats, ...) reports false.
func Coerce(v any) (Rational, bool) {
	r, err := coerce(v)
	return r, err == nil
}

// CoerceFor is Coerce for operations: on failure it returns an
// InvalidOperandError naming op and carrying message.
//
// Parameters:
//   - op: The operation name recorded in the error.
//   - message: The error message.
//   - v: The value to coerce.
//
// Returns:
//   - Rational: The coerced value.
//   - error: An InvalidOperandError if v cannot be coerced.
func CoerceFor(op, message string, v any) (Rational, error) {
	r, err := coerce(v)
	if err != nil {
		if errors.Is(err, errUnsupported) {
			err = nil
		}
		return Rational{}, NewInvalidOperandError(op, v, message, err)
	}
	return r, nil
}

var errUnsupported = errors.New("unsupported operand")

// coerce returns errUnsupported when v has no rational interpretation and the
// construction error when building the value failed.
func coerce(v any) (Rational, error) {
	switch x := v.(type) {
	case Rational:
		return Rational{num: x.numerator(), den: x.denominator()}, nil
	case *Rational:
		if x == nil {
			return Rational{}, errUnsupported
		}
		return Rational{num: x.numerator(), den: x.denominator()}, nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case *big.Int:
		if x == nil {
			return Rational{}, errUnsupported
		}
		return NewBig(x, bigOne)
	case *big.Rat:
		if x == nil {
			return Rational{}, errUnsupported
		}
		return NewBig(x.Num(), x.Denom())
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case nil:
		return Rational{}, errUnsupported
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return fromFloat(rv.Float())
	}
	return Rational{}, errUnsupported
}

func fromUint(u uint64) Rational {
	return Rational{num: new(big.Int).SetUint64(u), den: big.NewInt(1)}
}

// fromFloat accepts only finite integral floats.
func fromFloat(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return Rational{}, errUnsupported
	}
	n, _ := big.NewFloat(f).Int(nil)
	return newOwned(n, big.NewInt(1))
}
