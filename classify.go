package solveq

import "github.com/symgo/solveq/expr"

// EquationType is the closed classification of an equation with respect to a
// target symbol. Degree-based variants are mutually exclusive; Unknown is the
// explicit fallback for anything the classifier cannot place and is never
// silently treated as "no solution".
type EquationType int8

const (
	// Constant: degree 0 in the target.
	Constant EquationType = iota
	// Linear: degree 1.
	Linear
	// Quadratic: degree 2.
	Quadratic
	// Cubic: degree 3.
	Cubic
	// Quartic: degree 4.
	Quartic
	// System: several simultaneous equations in several unknowns.
	System
	// Transcendental: the target appears inside a non-algebraic function and
	// no finite polynomial degree applies.
	Transcendental
	// Unknown: the classifier cannot place the equation.
	Unknown
)

func (t EquationType) String() string {
	switch t {
	case Constant:
		return "constant"
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	case Quartic:
		return "quartic"
	case System:
		return "system"
	case Transcendental:
		return "transcendental"
	case Unknown:
		return "unknown"
	}
	return "equation-type(?)"
}

// Commutativity reports whether multiplicative factors involving the symbol
// may be reordered. It is a pure function of the symbol's kind.
func Commutativity(sym *expr.Sym) bool {
	return sym.SymKind().Commutes()
}

// Classify inspects a residual (an expression understood to equal zero) with
// respect to a target symbol. Classification is total: it never errors, worst
// case it reports Unknown.
func Classify(residual expr.Expr, target *expr.Sym) EquationType {
	residual = residual.Simplify()
	if deg, ok := expr.DegreeIn(residual, target); ok {
		switch deg {
		case 0:
			return Constant
		case 1:
			return Linear
		case 2:
			return Quadratic
		case 3:
			return Cubic
		case 4:
			return Quartic
		}
		return Unknown
	}
	if expr.HasTranscendental(residual) {
		return Transcendental
	}
	return Unknown
}

// ClassifySet classifies a set of simultaneous equations. System is reserved
// for genuinely simultaneous solving: several equations, or several unknowns
// to determine at once. A single equation in a single unknown falls back to
// the single-equation classification: a cubic with three roots is still
// Cubic, not System.
func ClassifySet(residuals []expr.Expr, unknowns []*expr.Sym) EquationType {
	if len(residuals) == 0 {
		return Unknown
	}
	if len(residuals) > 1 || len(unknowns) > 1 {
		return System
	}
	return Classify(residuals[0], unknowns[0])
}

// CountUnknowns counts the distinct free symbols of the residuals that occur
// in the unknown set.
func CountUnknowns(residuals []expr.Expr, unknowns []*expr.Sym) int {
	cnt := 0
	for _, u := range unknowns {
		for _, r := range residuals {
			if expr.ContainsSym(r, u) {
				cnt++
				break
			}
		}
	}
	return cnt
}
