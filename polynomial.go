package solveq

import (
	"math/big"
	"sort"
	"strings"

	"github.com/symgo/solveq/expr"
)

// polynomialSolver finds rational roots of cubic and quartic equations with
// numeric coefficients, using the rational root theorem: every rational root
// p/q of a_n x^n + ... + a_0 = 0 with integer coefficients has p dividing a_0
// and q dividing a_n. Roots are divided out by synthetic division; whatever
// nonconstant factor remains is reported, not guessed at.
type polynomialSolver struct{}

// candidateLimit bounds the constant/leading coefficient magnitude for which
// divisor enumeration is attempted.
var candidateLimit = big.NewInt(1 << 40)

func (ps polynomialSolver) solve(coeffs map[int]expr.Expr, degree int, target *expr.Sym, tr *Trace) Solution {
	poly, ok := ps.numericCoeffs(coeffs, degree)
	if !ok {
		tr.Append("limitation", "cubic/quartic solving needs numeric coefficients; symbolic coefficients are not handled")
		return None()
	}

	// clear denominators: multiply through by the lcm of all coefficient
	// denominators, leaving integer coefficients with the same roots
	ints := ps.integerize(poly)
	tr.Appendf("normalize", "integer coefficient form: %s", ps.polyString(ints, target))

	roots, remaining, bounded := ps.rationalRoots(ints, tr)
	if len(remaining) > 1 {
		// nonconstant factor of degree >= 1 left over
		if len(roots) == 0 {
			if bounded {
				tr.Appendf("limitation", "coefficients of %s are too large for rational root enumeration; the search was abandoned",
					ps.polyString(remaining, target))
			} else {
				tr.Appendf("limitation", "no rational roots; the degree-%d factor %s has only irrational or complex roots",
					len(remaining)-1, ps.polyString(remaining, target))
			}
			return None()
		}
		tr.Appendf("partial", "%d rational root(s) found; the remaining degree-%d factor %s is unresolved",
			len(roots), len(remaining)-1, ps.polyString(remaining, target))
		return Partial(ps.rootExprs(roots)...)
	}

	tr.Appendf("complete", "all roots are rational; %d distinct root(s)", len(roots))
	return Multiple(ps.rootExprs(roots)...)
}

// numericCoeffs evaluates the coefficient map to dense rational coefficients
// c[0..degree]. Fails if any coefficient is not a closed number.
func (polynomialSolver) numericCoeffs(coeffs map[int]expr.Expr, degree int) ([]*big.Rat, bool) {
	poly := make([]*big.Rat, degree+1)
	for d := 0; d <= degree; d++ {
		c, ok := coeffs[d]
		if !ok {
			poly[d] = new(big.Rat)
			continue
		}
		n, ok := c.Simplify().Eval()
		if !ok {
			return nil, false
		}
		poly[d] = n.Rat()
	}
	return poly, true
}

// integerize scales rational coefficients to integers by the lcm of their
// denominators. Returned slice holds integers stored as big.Rat.
func (polynomialSolver) integerize(poly []*big.Rat) []*big.Rat {
	lcm := big.NewInt(1)
	for _, c := range poly {
		d := c.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Div(new(big.Int).Mul(lcm, d), g)
	}
	scale := new(big.Rat).SetInt(lcm)
	out := make([]*big.Rat, len(poly))
	for i, c := range poly {
		out[i] = new(big.Rat).Mul(c, scale)
	}
	return out
}

// rationalRoots repeatedly extracts rational roots from the integer
// coefficient polynomial, deflating by synthetic division after each hit so
// multiplicities are found too. Returns the distinct roots in ascending
// order, the undivided remainder polynomial, and whether the search was
// abandoned because candidateLimit was exceeded. A remainder of length > 1 is
// a nonconstant factor the search did not resolve, whatever the reason.
func (ps polynomialSolver) rationalRoots(poly []*big.Rat, tr *Trace) ([]*big.Rat, []*big.Rat, bool) {
	var roots []*big.Rat
	zero := new(big.Rat)
	bounded := false

	// x = 0 roots first: divide out x while the constant term vanishes
	for len(poly) > 1 && poly[0].Sign() == 0 {
		ps.recordRoot(&roots, zero, tr)
		poly = poly[1:]
	}

	for len(poly) > 1 {
		a0 := new(big.Int).Abs(poly[0].Num())
		an := new(big.Int).Abs(poly[len(poly)-1].Num())
		if a0.Cmp(candidateLimit) > 0 || an.Cmp(candidateLimit) > 0 {
			bounded = true
			break
		}
		root, ok := ps.findRoot(poly)
		if !ok {
			break
		}
		ps.recordRoot(&roots, root, tr)
		poly = ps.deflate(poly, root)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Cmp(roots[j]) < 0 })
	return roots, poly, bounded
}

func (polynomialSolver) recordRoot(roots *[]*big.Rat, r *big.Rat, tr *Trace) {
	for _, have := range *roots {
		if have.Cmp(r) == 0 {
			tr.Appendf("root", "%s again (higher multiplicity)", r.RatString())
			return
		}
	}
	*roots = append(*roots, new(big.Rat).Set(r))
	tr.Appendf("root", "rational root %s found, dividing it out", r.RatString())
}

// findRoot enumerates candidates ±p/q with p | a0 and q | an and returns the
// first one that evaluates to zero. The caller has checked the coefficients
// against candidateLimit.
func (ps polynomialSolver) findRoot(poly []*big.Rat) (*big.Rat, bool) {
	a0 := new(big.Int).Abs(poly[0].Num())
	an := new(big.Int).Abs(poly[len(poly)-1].Num())
	nums := divisors(a0)
	dens := divisors(an)
	for _, p := range nums {
		for _, q := range dens {
			cand := new(big.Rat).SetFrac(p, q)
			if ps.evalAt(poly, cand).Sign() == 0 {
				return cand, true
			}
			cand.Neg(cand)
			if ps.evalAt(poly, cand).Sign() == 0 {
				return cand, true
			}
		}
	}
	return nil, false
}

// evalAt evaluates the polynomial at x by Horner's scheme.
func (polynomialSolver) evalAt(poly []*big.Rat, x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(poly) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, poly[i])
	}
	return acc
}

// deflate divides the polynomial by (x - root) via synthetic division. The
// caller guarantees root is an exact root, so the remainder is zero.
func (polynomialSolver) deflate(poly []*big.Rat, root *big.Rat) []*big.Rat {
	n := len(poly) - 1
	out := make([]*big.Rat, n)
	carry := new(big.Rat).Set(poly[n])
	for i := n - 1; i >= 0; i-- {
		out[i] = new(big.Rat).Set(carry)
		carry.Mul(carry, root)
		carry.Add(carry, poly[i])
	}
	return out
}

func (polynomialSolver) rootExprs(roots []*big.Rat) []expr.Expr {
	out := make([]expr.Expr, len(roots))
	for i, r := range roots {
		out[i] = expr.FromRat(r)
	}
	return out
}

func (polynomialSolver) polyString(poly []*big.Rat, target *expr.Sym) string {
	var b strings.Builder
	first := true
	for d := len(poly) - 1; d >= 0; d-- {
		if poly[d].Sign() == 0 {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		b.WriteString(poly[d].RatString())
		if d == 1 {
			b.WriteString("*" + target.Name())
		} else if d > 1 {
			b.WriteString("*" + target.Name() + "^")
			b.WriteString(big.NewInt(int64(d)).String())
		}
	}
	if first {
		return "0"
	}
	return b.String()
}

// divisors returns the positive divisors of |n| in ascending order. n must be
// non-zero and below candidateLimit.
func divisors(n *big.Int) []*big.Int {
	var out []*big.Int
	one := big.NewInt(1)
	i := new(big.Int).Set(one)
	sq := new(big.Int)
	rem := new(big.Int)
	var upper []*big.Int
	for sq.Mul(i, i); sq.Cmp(n) <= 0; sq.Mul(i, i) {
		q, r := new(big.Int).QuoRem(n, i, rem)
		if r.Sign() == 0 {
			out = append(out, new(big.Int).Set(i))
			if q.Cmp(i) != 0 {
				upper = append(upper, q)
			}
		}
		i.Add(i, one)
	}
	for j := len(upper) - 1; j >= 0; j-- {
		out = append(out, upper[j])
	}
	return out
}
