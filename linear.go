package solveq

import "github.com/symgo/solveq/expr"

// linearSolver solves a*x + b = 0 for a commuting target x.
type linearSolver struct{}

func (linearSolver) solve(a, b expr.Expr, target *expr.Sym, tr *Trace) Solution {
	a = a.Simplify()
	b = b.Simplify()
	if expr.IsZero(a) {
		if expr.IsZero(b) {
			tr.Appendf("identity", "0 = 0 holds for every value of %s", target.Name())
			return Infinite()
		}
		tr.Appendf("contradiction", "the coefficient of %s vanishes but %s does not; no value satisfies the equation",
			target.Name(), b.String())
		return None()
	}
	root := expr.Product(expr.Number(-1), b, expr.Inverse(a))
	tr.Appendf("isolate", "%s = -(%s)/(%s) = %s", target.Name(), b.String(), a.String(), root.String())
	T().Debugf("linear solve: %s = %s", target.Name(), root.String())
	return Single(root)
}
