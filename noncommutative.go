package solveq

import "github.com/symgo/solveq/expr"

// noncommutativeSolver isolates a matrix-, operator- or quaternion-kinded
// target by one-sided division. For K*X = C the answer is K^-1 * C (left
// division), for X*K = C it is C * K^-1 (right division), and the two are not
// interchangeable. Factors divided out are assumed invertible unless they are
// provably zero.
type noncommutativeSolver struct{}

func (ns noncommutativeSolver) solve(residual expr.Expr, target *expr.Sym, tr *Trace) Solution {
	residual = residual.Simplify()

	var terms []expr.Expr
	if a, ok := residual.(*expr.Add); ok {
		terms = a.Terms()
	} else {
		terms = []expr.Expr{residual}
	}

	var targetTerms, rest []expr.Expr
	for _, t := range terms {
		if expr.ContainsSym(t, target) {
			targetTerms = append(targetTerms, t)
		} else {
			rest = append(rest, t)
		}
	}

	if len(targetTerms) == 0 {
		if expr.IsZero(expr.Sum(rest...)) {
			tr.Appendf("identity", "%s is unconstrained", target.Name())
			return Infinite()
		}
		tr.Appendf("contradiction", "%s does not occur but the residual is nonzero", target.Name())
		return None()
	}
	if len(targetTerms) > 1 {
		tr.Appendf("limitation", "%s occurs in %d separate terms; collecting it would need factorization that respects factor order",
			target.Name(), len(targetTerms))
		return None()
	}

	left, right, scalars, ok := ns.decompose(targetTerms[0], target)
	if !ok {
		tr.Appendf("limitation", "%s occurs inside a power or function application; only plain products are handled",
			target.Name())
		return None()
	}

	for _, f := range append(append([]expr.Expr{}, left...), right...) {
		if expr.IsZero(f.Simplify()) {
			tr.Appendf("singular", "factor %s is zero and cannot be divided out", f.String())
			return None()
		}
	}

	rhs := expr.Negate(expr.Sum(rest...)).Simplify()
	tr.Appendf("rearrange", "move all terms without %s to the right-hand side: %s", target.Name(), rhs.String())

	// X = s^-1 * Lk^-1 ... L1^-1 * C * Rm^-1 ... R1^-1
	factors := make([]expr.Expr, 0, len(scalars)+len(left)+len(right)+1)
	for _, s := range scalars {
		factors = append(factors, expr.Inverse(s))
	}
	for i := len(left) - 1; i >= 0; i-- {
		factors = append(factors, expr.Inverse(left[i]))
	}
	factors = append(factors, rhs)
	for i := len(right) - 1; i >= 0; i-- {
		factors = append(factors, expr.Inverse(right[i]))
	}

	if len(left) > 0 {
		tr.Appendf("left division", "multiply by the inverse(s) of %s from the left", ns.factorList(left))
	}
	if len(right) > 0 {
		tr.Appendf("right division", "multiply by the inverse(s) of %s from the right", ns.factorList(right))
	}

	root := expr.Product(factors...)
	tr.Appendf("isolate", "%s = %s", target.Name(), root.String())
	T().Debugf("noncommutative solve: %s = %s", target.Name(), root.String())
	return Single(root)
}

// decompose splits a product term around a single plain occurrence of the
// target: commuting factors (numbers, scalars), noncommutative factors to the
// left of the target, and those to its right. Fails when the target sits
// inside a power, a function application, or occurs more than once.
func (noncommutativeSolver) decompose(term expr.Expr, target *expr.Sym) (left, right, scalars []expr.Expr, ok bool) {
	var factors []expr.Expr
	if m, isMul := term.(*expr.Mul); isMul {
		factors = m.Factors()
	} else {
		factors = []expr.Expr{term}
	}

	seen := false
	for _, f := range factors {
		if !expr.ContainsSym(f, target) {
			if expr.Commutes(f) {
				if !expr.IsOne(f) {
					scalars = append(scalars, f)
				}
			} else if seen {
				right = append(right, f)
			} else {
				left = append(left, f)
			}
			continue
		}
		s, isSym := f.(*expr.Sym)
		if !isSym || !s.Equal(target) || seen {
			return nil, nil, nil, false
		}
		seen = true
	}
	if !seen {
		return nil, nil, nil, false
	}
	return left, right, scalars, true
}

func (noncommutativeSolver) factorList(fs []expr.Expr) string {
	out := ""
	for i, f := range fs {
		if i > 0 {
			out += ", "
		}
		out += f.String()
	}
	return out
}
