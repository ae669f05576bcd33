package expr

import (
	"fmt"
	"math/big"
)

// Num is an exact rational constant. The zero value is not usable; construct
// instances with Number or Rational.
type Num struct {
	val *big.Rat
}

// Number creates an integer constant.
func Number(n int64) *Num {
	return &Num{val: new(big.Rat).SetInt64(n)}
}

// Rational creates an exact fraction p/q. A zero denominator is a programmer
// error and panics.
func Rational(p, q int64) *Num {
	if q == 0 {
		panic("expr: rational with zero denominator")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// FromRat wraps a big.Rat as a constant. The argument is copied.
func FromRat(r *big.Rat) *Num {
	return &Num{val: new(big.Rat).Set(r)}
}

func (n *Num) Simplify() Expr               { return n }
func (n *Num) Substitute(string, Expr) Expr { return n }
func (n *Num) Derive(string) Expr           { return Number(0) }
func (n *Num) Eval() (*Num, bool)           { return n, true }

func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)
	return ok && n.val.Cmp(o.val) == 0
}

// Rat returns a copy of the underlying rational value.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.val) }

// Sign reports -1, 0 or +1.
func (n *Num) Sign() int { return n.val.Sign() }

// IsOne reports whether the constant equals 1.
func (n *Num) IsOne() bool { return n.val.Cmp(ratOne) == 0 }

// IsNegOne reports whether the constant equals -1.
func (n *Num) IsNegOne() bool { return n.val.Cmp(ratNegOne) == 0 }

// IsInt reports whether the constant is an integer.
func (n *Num) IsInt() bool { return n.val.IsInt() }

// Int64 returns the constant as an int64. Only valid for integer constants
// that fit; the second return value reports validity.
func (n *Num) Int64() (int64, bool) {
	if !n.val.IsInt() || !n.val.Num().IsInt64() {
		return 0, false
	}
	return n.val.Num().Int64(), true
}

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

var (
	ratOne    = new(big.Rat).SetInt64(1)
	ratNegOne = new(big.Rat).SetInt64(-1)
)

// --- Exact arithmetic on constants -----------------------------------------

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numSub(a, b *Num) *Num { return &Num{val: new(big.Rat).Sub(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }

func numRecip(a *Num) *Num {
	if a.Sign() == 0 {
		panic("expr: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

func numDiv(a, b *Num) *Num { return numMul(a, numRecip(b)) }

func numCmp(a, b *Num) int { return a.val.Cmp(b.val) }

// numPowInt raises a constant to an integer power. Negative exponents of zero
// are the caller's responsibility.
func numPowInt(a *Num, e int64) *Num {
	if e < 0 {
		return numRecip(numPowInt(a, -e))
	}
	result := Number(1)
	for i := int64(0); i < e; i++ {
		result = numMul(result, a)
	}
	return result
}

// sqrtExact returns the exact square root of a non-negative rational, if the
// numerator and denominator are both perfect squares.
func sqrtExact(a *Num) (*Num, bool) {
	if a.Sign() < 0 {
		return nil, false
	}
	num, ok1 := intSqrt(a.val.Num())
	den, ok2 := intSqrt(a.val.Denom())
	if !ok1 || !ok2 {
		return nil, false
	}
	return &Num{val: new(big.Rat).SetFrac(num, den)}, true
}

func intSqrt(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	root := new(big.Int).Sqrt(n)
	check := new(big.Int).Mul(root, root)
	return root, check.Cmp(n) == 0
}
