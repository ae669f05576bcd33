package expr

// Equation pairs a left-hand and a right-hand side. The solving core works on
// the residual form LHS - RHS = 0; an equation value itself is never mutated.
type Equation struct {
	LHS, RHS Expr
}

// NewEquation creates the equation lhs = rhs.
func NewEquation(lhs, rhs Expr) *Equation {
	return &Equation{LHS: lhs, RHS: rhs}
}

// Residual returns the simplified difference LHS - RHS, the canonical
// "expression equals zero" form.
func (eq *Equation) Residual() Expr {
	return Sum(eq.LHS, Negate(eq.RHS))
}

func (eq *Equation) String() string {
	return eq.LHS.String() + " = " + eq.RHS.String()
}

// LaTeX renders the equation as LaTeX math.
func (eq *Equation) LaTeX() string {
	return eq.LHS.LaTeX() + " = " + eq.RHS.LaTeX()
}
