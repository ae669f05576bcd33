package solveq

import "github.com/symgo/solveq/expr"

// Solver routes equations to specialized solving strategies based on
// classification. A Solver is stateless and safe for concurrent use.
type Solver struct {
	linear    linearSolver
	quadratic quadraticSolver
	poly      polynomialSolver
	system    systemSolver
	noncomm   noncommutativeSolver
}

// New creates a Solver.
func New() *Solver {
	return &Solver{}
}

// Solve solves a single equation for the target symbol. It returns the
// solution, the full derivation trace, and an error only for invalid input;
// unsolvable equations are expressed through the solution kind, never through
// the error.
func (s *Solver) Solve(eq *expr.Equation, target *expr.Sym) (Solution, *Trace, error) {
	tr := &Trace{}
	if eq == nil {
		return None(), tr, ErrNilEquation
	}
	if target == nil {
		return None(), tr, ErrNilTarget
	}

	residual := eq.Residual().Simplify()
	tr.Appendf("normalize", "%s becomes %s = 0", eq.String(), residual.String())

	if !Commutativity(target) {
		tr.Appendf("commutativity", "%s is of kind %s and does not commute; using one-sided division",
			target.Name(), target.SymKind().String())
		return s.noncomm.solve(residual, target, tr), tr, nil
	}

	typ := Classify(residual, target)
	tr.Appendf("classify", "the equation is %s in %s", typ.String(), target.Name())
	T().Debugf("solve: classified %q as %s", eq.String(), typ.String())

	switch typ {
	case Constant:
		if expr.IsZero(residual) {
			tr.Appendf("identity", "0 = 0 holds for every value of %s", target.Name())
			return Infinite(), tr, nil
		}
		tr.Appendf("contradiction", "%s = 0 is false independently of %s", residual.String(), target.Name())
		return None(), tr, nil
	case Linear:
		coeffs := expr.CoeffsIn(expr.Expand(residual), target)
		return s.linear.solve(coeffAt(coeffs, 1), coeffAt(coeffs, 0), target, tr), tr, nil
	case Quadratic:
		coeffs := expr.CoeffsIn(expr.Expand(residual), target)
		return s.quadratic.solve(coeffAt(coeffs, 2), coeffAt(coeffs, 1), coeffAt(coeffs, 0), target, tr), tr, nil
	case Cubic, Quartic:
		degree := 3
		if typ == Quartic {
			degree = 4
		}
		coeffs := expr.CoeffsIn(expr.Expand(residual), target)
		return s.poly.solve(coeffs, degree, target, tr), tr, nil
	}

	// Transcendental and Unknown
	tr.Appendf("unsupported", "no strategy for %s equations yet; nothing was attempted", typ.String())
	return None(), tr, nil
}

// SolveSystem solves simultaneous equations for the unknowns and reports the
// value of the target, which must be one of the unknowns. A single equation
// in a single unknown is routed to the single-equation path.
func (s *Solver) SolveSystem(eqs []*expr.Equation, unknowns []*expr.Sym, target *expr.Sym) (Solution, *Trace, error) {
	tr := &Trace{}
	if len(eqs) == 0 {
		return None(), tr, ErrNoEquations
	}
	if len(unknowns) == 0 {
		return None(), tr, ErrNoUnknowns
	}
	if target == nil {
		return None(), tr, ErrNilTarget
	}
	for _, eq := range eqs {
		if eq == nil {
			return None(), tr, ErrNilEquation
		}
	}

	residuals := make([]expr.Expr, len(eqs))
	for i, eq := range eqs {
		residuals[i] = eq.Residual().Simplify()
	}

	if ClassifySet(residuals, unknowns) != System {
		tr.Append("route", "single equation in a single unknown; using the single-equation path")
		sol, sub, err := s.Solve(eqs[0], target)
		tr.steps = append(tr.steps, sub.steps...)
		return sol, tr, err
	}

	tr.Appendf("classify", "system of %d equation(s) in %d unknown(s)", len(residuals), len(unknowns))
	T().Debugf("solve: system of %d equations, %d unknowns", len(residuals), len(unknowns))
	return s.system.solve(residuals, unknowns, target, tr), tr, nil
}

// coeffAt reads a coefficient map defensively: a missing degree is zero.
func coeffAt(coeffs map[int]expr.Expr, degree int) expr.Expr {
	if c, ok := coeffs[degree]; ok {
		return c
	}
	return expr.Number(0)
}
