package solveq

import (
	"math/big"

	"github.com/symgo/solveq/expr"
)

// quadraticSolver solves a*x^2 + b*x + c = 0 for a commuting target x.
//
// The solution domain is complex: a negative discriminant yields the
// conjugate root pair written with the imaginary unit i, never "no solution".
type quadraticSolver struct {
	linear linearSolver
}

// imaginaryUnit is the symbol i used for complex root pairs.
func imaginaryUnit() *expr.Sym { return expr.NewSym("i") }

func (qs quadraticSolver) solve(a, b, c expr.Expr, target *expr.Sym, tr *Trace) Solution {
	an, aok := a.Eval()
	bn, bok := b.Eval()
	cn, cok := c.Eval()
	if !(aok && bok && cok) {
		return qs.solveSymbolic(a, b, c, target, tr)
	}
	if an.Sign() == 0 {
		tr.Append("degenerate", "leading coefficient is zero; falling back to the linear solver")
		return qs.linear.solve(b, c, target, tr)
	}

	// discriminant b^2 - 4ac, exactly
	disc := new(big.Rat).Mul(bn.Rat(), bn.Rat())
	four := new(big.Rat).SetInt64(4)
	disc.Sub(disc, new(big.Rat).Mul(four, new(big.Rat).Mul(an.Rat(), cn.Rat())))
	tr.Appendf("discriminant", "Δ = b² - 4ac = %s", disc.RatString())

	twoA := expr.FromRat(new(big.Rat).Mul(new(big.Rat).SetInt64(2), an.Rat()))
	negB := expr.FromRat(new(big.Rat).Neg(bn.Rat()))

	switch disc.Sign() {
	case 0:
		root := expr.Product(negB, expr.Inverse(twoA))
		tr.Appendf("repeated root", "Δ = 0: one root of multiplicity 2, %s = %s", target.Name(), root.String())
		return Single(root)
	case 1:
		sq := expr.ApplySqrt(expr.FromRat(disc))
		r1 := expr.Product(expr.Sum(negB, sq), expr.Inverse(twoA))
		r2 := expr.Product(expr.Sum(negB, expr.Negate(sq)), expr.Inverse(twoA))
		tr.Appendf("real roots", "Δ > 0: two distinct real roots %s and %s", r1.String(), r2.String())
		return Multiple(r1, r2)
	}
	// Δ < 0: conjugate complex pair
	negDisc := new(big.Rat).Neg(disc)
	sq := expr.ApplySqrt(expr.FromRat(negDisc))
	re := expr.Product(negB, expr.Inverse(twoA))
	im := expr.Product(sq, expr.Inverse(twoA))
	i := imaginaryUnit()
	r1 := expr.Sum(re, expr.Product(im, i))
	r2 := expr.Sum(re, expr.Negate(expr.Product(im, i)))
	tr.Appendf("complex roots", "Δ < 0: conjugate pair %s and %s", r1.String(), r2.String())
	return Multiple(r1, r2)
}

// solveSymbolic applies the quadratic formula to non-numeric coefficients.
func (quadraticSolver) solveSymbolic(a, b, c expr.Expr, target *expr.Sym, tr *Trace) Solution {
	disc := expr.Sum(expr.Power(b, expr.Number(2)), expr.Product(expr.Number(-4), a, c))
	twoA := expr.Product(expr.Number(2), a)
	sq := expr.ApplySqrt(disc)
	r1 := expr.Product(expr.Sum(expr.Negate(b), sq), expr.Inverse(twoA))
	r2 := expr.Product(expr.Sum(expr.Negate(b), expr.Negate(sq)), expr.Inverse(twoA))
	tr.Appendf("quadratic formula", "symbolic coefficients; roots (-b ± sqrt(%s))/(%s)",
		disc.String(), twoA.String())
	return Multiple(r1, r2)
}
