package rational

import (
	"math/big"
	"strings"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Rational is an exact fraction kept in lowest terms with a positive
// denominator. The zero value is 0/1 and ready to use.
//
// A Rational never mutates the integers it holds, so values may be copied and
// shared freely, including across goroutines.
type Rational struct {
	num *big.Int
	den *big.Int
}

// New returns num/den in canonical form.
//
// Parameters:
//   - num: The numerator.
//   - den: The denominator.
//
// Returns:
//   - Rational: The normalized value.
//   - error: A DivisionByZeroError if den is zero.
func New(num, den int64) (Rational, error) {
	return newOwned(big.NewInt(num), big.NewInt(den))
}

// NewBig is New for arbitrary-precision operands. The arguments are copied; a
// nil pointer counts as zero.
func NewBig(num, den *big.Int) (Rational, error) {
	n, d := new(big.Int), new(big.Int)
	if num != nil {
		n.Set(num)
	}
	if den != nil {
		d.Set(den)
	}
	return newOwned(n, d)
}

// MustNew is like New but panics on a zero denominator. It is meant for
// constants and tests.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// newOwned builds a Rational from n and d, taking ownership of both.
func newOwned(n, d *big.Int) (Rational, error) {
	if d.Sign() == 0 {
		return Rational{}, NewDivisionByZeroError("")
	}
	normalize(n, d)
	return Rational{num: n, den: d}, nil
}

// normalize reduces n/d to lowest terms in place and moves the sign onto n.
// d must be non-zero.
func normalize(n, d *big.Int) {
	g := gcd(new(big.Int).Abs(n), new(big.Int).Abs(d))
	n.Quo(n, g)
	d.Quo(d, g)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
}

// gcd computes the greatest common divisor of two non-negative integers with
// the Euclidean algorithm. Both arguments are consumed. gcd(0, 0) is 0.
func gcd(a, b *big.Int) *big.Int {
	t := new(big.Int)
	for b.Sign() != 0 {
		t.Rem(a, b)
		a, b, t = b, t, a
	}
	return a
}

func (r Rational) numerator() *big.Int {
	if r.num == nil {
		return bigZero
	}
	return r.num
}

func (r Rational) denominator() *big.Int {
	if r.den == nil {
		return bigOne
	}
	return r.den
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.numerator()) }

// Denom returns a copy of the denominator. It is always positive.
func (r Rational) Denom() *big.Int { return new(big.Int).Set(r.denominator()) }

// IsZero reports whether r is 0/1.
func (r Rational) IsZero() bool { return r.numerator().Sign() == 0 }

// IsInt reports whether r has denominator 1.
func (r Rational) IsInt() bool { return r.denominator().Cmp(bigOne) == 0 }

// Add returns r + other. other may be a Rational or any value accepted by
// Coerce; anything else yields an InvalidOperandError.
//
// Parameters:
//   - other: The addend.
//
// Returns:
//   - Rational: The normalized sum.
//   - error: An InvalidOperandError if other cannot be coerced.
func (r Rational) Add(other any) (Rational, error) {
	o, err := CoerceFor("add", msgInvalidAdd, other)
	if err != nil {
		return Rational{}, err
	}

	// a/b + c/d = (a*d + c*b) / (b*d)
	n := new(big.Int).Mul(r.numerator(), o.denominator())
	n.Add(n, new(big.Int).Mul(o.numerator(), r.denominator()))
	d := new(big.Int).Mul(r.denominator(), o.denominator())
	return newOwned(n, d)
}

// Mul returns r * other. other may be a Rational or any value accepted by
// Coerce; anything else yields an InvalidOperandError.
func (r Rational) Mul(other any) (Rational, error) {
	o, err := CoerceFor("multiply", msgInvalidMul, other)
	if err != nil {
		return Rational{}, err
	}

	n := new(big.Int).Mul(r.numerator(), o.numerator())
	d := new(big.Int).Mul(r.denominator(), o.denominator())
	return newOwned(n, d)
}

// String renders r as "num/den", e.g. "-3/4" or "2/1".
func (r Rational) String() string {
	var sb strings.Builder
	sb.WriteString(r.numerator().String())
	sb.WriteByte('/')
	sb.WriteString(r.denominator().String())
	return sb.String()
}
