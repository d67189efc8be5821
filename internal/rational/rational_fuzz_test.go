package rational

import (
	"math/big"
	"testing"
)

// FuzzNew checks that every construction with a non-zero denominator lands in
// canonical form and preserves the value, and that a zero denominator fails.
func FuzzNew(f *testing.F) {
	f.Add(int64(1), int64(2))
	f.Add(int64(6), int64(-8))
	f.Add(int64(0), int64(-3))
	f.Add(int64(5), int64(0))
	f.Add(int64(-9223372036854775808), int64(-1))
	f.Add(int64(-9223372036854775808), int64(-9223372036854775808))

	f.Fuzz(func(t *testing.T, n, d int64) {
		r, err := New(n, d)
		if d == 0 {
			if err == nil {
				t.Fatalf("New(%d, 0) should fail", n)
			}
			return
		}
		if err != nil {
			t.Fatalf("New(%d, %d) unexpected error: %v", n, d, err)
		}
		if !isCanonical(r) {
			t.Errorf("New(%d, %d) = %s is not canonical", n, d, r)
		}
		if new(big.Rat).SetFrac(r.Num(), r.Denom()).Cmp(big.NewRat(n, d)) != 0 {
			t.Errorf("New(%d, %d) = %s changed the value", n, d, r)
		}
	})
}

// FuzzAddMul cross-checks Add and Mul against math/big.Rat.
func FuzzAddMul(f *testing.F) {
	f.Add(int64(1), int64(2), int64(1), int64(3))
	f.Add(int64(2), int64(3), int64(3), int64(4))
	f.Add(int64(-1), int64(2), int64(1), int64(-2))

	f.Fuzz(func(t *testing.T, an, ad, bn, bd int64) {
		if ad == 0 || bd == 0 {
			return
		}
		a, b := MustNew(an, ad), MustNew(bn, bd)
		ra, rb := big.NewRat(an, ad), big.NewRat(bn, bd)

		sum, err := a.Add(b)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if new(big.Rat).SetFrac(sum.Num(), sum.Denom()).Cmp(new(big.Rat).Add(ra, rb)) != 0 {
			t.Errorf("%s + %s = %s, inconsistent with big.Rat", a, b, sum)
		}

		prod, err := a.Mul(b)
		if err != nil {
			t.Fatalf("Mul failed: %v", err)
		}
		if new(big.Rat).SetFrac(prod.Num(), prod.Denom()).Cmp(new(big.Rat).Mul(ra, rb)) != 0 {
			t.Errorf("%s * %s = %s, inconsistent with big.Rat", a, b, prod)
		}
		if !isCanonical(sum) || !isCanonical(prod) {
			t.Errorf("non-canonical result: sum=%s prod=%s", sum, prod)
		}
	})
}
