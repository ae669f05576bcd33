package solveq

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/symgo/solveq/expr"
)

// systemSolver solves simultaneous linear equations by Gaussian elimination
// over exact rationals. Coefficients are extracted via differentiation: for a
// residual r linear in the unknowns, the coefficient of u is dr/du. A
// reconstruction check guards against nonlinear or cross terms sneaking in.
type systemSolver struct{}

// linearForm is one residual row: numeric coefficients per unknown plus the
// constant term, all equal to zero.
type linearForm struct {
	coeffs []*big.Rat
	cnst   *big.Rat
}

func (ss systemSolver) solve(residuals []expr.Expr, unknowns []*expr.Sym, target *expr.Sym, tr *Trace) Solution {
	rows := make([]linearForm, 0, len(residuals))
	for i, r := range residuals {
		row, ok := ss.extractRow(r, unknowns)
		if !ok {
			tr.Appendf("limitation", "equation %d is not linear in the unknowns; only linear systems are handled", i+1)
			return None()
		}
		rows = append(rows, row)
	}
	tr.Appendf("matrix", "augmented %dx%d system assembled", len(rows), len(unknowns)+1)

	rank, pivotCol := ss.eliminate(rows)

	// a zero row with nonzero constant is a contradiction
	for _, row := range rows[rank:] {
		if row.cnst.Sign() != 0 {
			tr.Appendf("contradiction", "elimination derived 0 = %s; the system is inconsistent", row.cnst.RatString())
			return None()
		}
	}

	n := len(unknowns)
	if rank == 0 {
		tr.Append("identity", "every equation reduces to 0 = 0; the unknowns are unconstrained")
		return Infinite()
	}

	if rank == n {
		values := ss.backSubstitute(rows, pivotCol, n)
		ss.traceAssignment(unknowns, values, tr)
		for i, u := range unknowns {
			if u.Equal(target) {
				return Single(expr.FromRat(values[i]))
			}
		}
		tr.Appendf("limitation", "target %s does not occur among the unknowns", target.Name())
		return None()
	}

	// rank < n: free columns become parameters t1, t2, ...
	family := ss.parametricFamily(rows, pivotCol, rank, unknowns, tr)
	for i, u := range unknowns {
		if u.Equal(target) {
			tr.Appendf("parametric", "rank %d < %d unknowns; %s = %s with free parameters",
				rank, n, target.Name(), family[i].String())
			return Parametric(family[i])
		}
	}
	tr.Appendf("limitation", "target %s does not occur among the unknowns", target.Name())
	return None()
}

// extractRow turns one residual into numeric coefficients per unknown and a
// constant. Fails when any coefficient still contains an unknown, when it is
// not a closed number, or when the linear reconstruction does not reproduce
// the residual.
func (systemSolver) extractRow(r expr.Expr, unknowns []*expr.Sym) (linearForm, bool) {
	r = expr.Expand(r.Simplify()).Simplify()
	row := linearForm{coeffs: make([]*big.Rat, len(unknowns))}

	recon := make([]expr.Expr, 0, len(unknowns)+1)
	for i, u := range unknowns {
		c := r.Derive(u.Name()).Simplify()
		for _, v := range unknowns {
			if expr.ContainsSym(c, v) {
				return linearForm{}, false
			}
		}
		n, ok := c.Eval()
		if !ok {
			return linearForm{}, false
		}
		row.coeffs[i] = n.Rat()
		recon = append(recon, expr.Product(c, u))
	}

	cnst := r
	for _, u := range unknowns {
		cnst = cnst.Substitute(u.Name(), expr.Number(0))
	}
	cn, ok := cnst.Simplify().Eval()
	if !ok {
		return linearForm{}, false
	}
	row.cnst = cn.Rat()
	recon = append(recon, cnst)

	diff := expr.Sum(r, expr.Negate(expr.Sum(recon...))).Simplify()
	if !expr.IsZero(diff) {
		return linearForm{}, false
	}
	return row, true
}

// eliminate runs forward elimination in place. Returns the rank and, per
// pivot row, the pivot column.
func (systemSolver) eliminate(rows []linearForm) (int, []int) {
	if len(rows) == 0 {
		return 0, nil
	}
	cols := len(rows[0].coeffs)
	var pivotCol []int
	rank := 0
	for col := 0; col < cols && rank < len(rows); col++ {
		pivot := -1
		for i := rank; i < len(rows); i++ {
			if rows[i].coeffs[col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		p := rows[rank].coeffs[col]
		for i := rank + 1; i < len(rows); i++ {
			f := rows[i].coeffs[col]
			if f.Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Quo(f, p)
			for j := col; j < cols; j++ {
				rows[i].coeffs[j] = new(big.Rat).Sub(rows[i].coeffs[j],
					new(big.Rat).Mul(factor, rows[rank].coeffs[j]))
			}
			rows[i].cnst = new(big.Rat).Sub(rows[i].cnst,
				new(big.Rat).Mul(factor, rows[rank].cnst))
		}
		pivotCol = append(pivotCol, col)
		rank++
	}
	return rank, pivotCol
}

// backSubstitute resolves a full-rank triangular system to one value per
// unknown. Residual rows equal zero, so the solved value of column c is
// (-cnst - sum of later terms) / pivot.
func (systemSolver) backSubstitute(rows []linearForm, pivotCol []int, n int) []*big.Rat {
	values := make([]*big.Rat, n)
	for r := len(pivotCol) - 1; r >= 0; r-- {
		col := pivotCol[r]
		acc := new(big.Rat).Neg(rows[r].cnst)
		for j := col + 1; j < n; j++ {
			acc.Sub(acc, new(big.Rat).Mul(rows[r].coeffs[j], values[j]))
		}
		values[col] = acc.Quo(acc, rows[r].coeffs[col])
	}
	return values
}

// parametricFamily expresses every unknown of an underdetermined system in
// terms of fresh parameter symbols t1, t2, ... bound to the free columns.
func (systemSolver) parametricFamily(rows []linearForm, pivotCol []int, rank int, unknowns []*expr.Sym, tr *Trace) []expr.Expr {
	n := len(unknowns)
	isPivot := make([]bool, n)
	for _, c := range pivotCol {
		isPivot[c] = true
	}
	family := make([]expr.Expr, n)
	param := 0
	for col := 0; col < n; col++ {
		if !isPivot[col] {
			param++
			family[col] = expr.NewSym(fmt.Sprintf("t%d", param))
		}
	}
	for r := rank - 1; r >= 0; r-- {
		col := pivotCol[r]
		terms := []expr.Expr{expr.FromRat(new(big.Rat).Neg(rows[r].cnst))}
		for j := col + 1; j < n; j++ {
			if rows[r].coeffs[j].Sign() == 0 {
				continue
			}
			c := expr.FromRat(new(big.Rat).Neg(rows[r].coeffs[j]))
			terms = append(terms, expr.Product(c, family[j]))
		}
		piv := expr.FromRat(rows[r].coeffs[col])
		family[col] = expr.Product(expr.Sum(terms...), expr.Inverse(piv)).Simplify()
	}
	parts := make([]string, n)
	for i, u := range unknowns {
		parts[i] = u.Name() + " = " + family[i].String()
	}
	tr.Appendf("free variables", "%d free parameter(s): %s", param, strings.Join(parts, ", "))
	return family
}

func (systemSolver) traceAssignment(unknowns []*expr.Sym, values []*big.Rat, tr *Trace) {
	parts := make([]string, len(unknowns))
	for i, u := range unknowns {
		parts[i] = u.Name() + " = " + values[i].RatString()
	}
	tr.Appendf("back substitution", "unique solution: %s", strings.Join(parts, ", "))
}
