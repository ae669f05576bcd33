package solveq

import (
	"strings"

	"github.com/symgo/solveq/expr"
)

// SolutionKind is the closed set of solution shapes. Each kind carries
// distinct information; in particular ParametricSolutions and
// PartialSolutions must never be collapsed into MultipleSolutions, which
// would silently destroy what is known about genericity and completeness.
type SolutionKind int8

const (
	// SingleSolution is exactly one root.
	SingleSolution SolutionKind = iota
	// MultipleSolutions is a finite, fully enumerated root set.
	MultipleSolutions
	// NoSolutionKind means provably no value satisfies the equation.
	NoSolutionKind
	// InfiniteSolutionsKind means every value satisfies the equation.
	InfiniteSolutionsKind
	// ParametricSolutions is a family expressed with free parameters.
	ParametricSolutions
	// PartialSolutions is a known-incomplete subset of the true root set.
	PartialSolutions
)

func (k SolutionKind) String() string {
	switch k {
	case SingleSolution:
		return "single"
	case MultipleSolutions:
		return "multiple"
	case NoSolutionKind:
		return "no solution"
	case InfiniteSolutionsKind:
		return "infinite solutions"
	case ParametricSolutions:
		return "parametric"
	case PartialSolutions:
		return "partial"
	}
	return "solution(?)"
}

// Solution is the result of a solve call: a kind plus the root expressions
// the kind carries. Solutions are immutable values; Values returns a copy.
type Solution struct {
	kind   SolutionKind
	values []expr.Expr
}

// Single wraps exactly one root.
func Single(root expr.Expr) Solution {
	return Solution{kind: SingleSolution, values: []expr.Expr{root}}
}

// Multiple wraps a finite, complete root set.
func Multiple(roots ...expr.Expr) Solution {
	return Solution{kind: MultipleSolutions, values: append([]expr.Expr{}, roots...)}
}

// None reports that no value satisfies the equation.
func None() Solution {
	return Solution{kind: NoSolutionKind}
}

// Infinite reports that every value satisfies the equation.
func Infinite() Solution {
	return Solution{kind: InfiniteSolutionsKind}
}

// Parametric wraps a solution family containing free parameter symbols.
func Parametric(family ...expr.Expr) Solution {
	return Solution{kind: ParametricSolutions, values: append([]expr.Expr{}, family...)}
}

// Partial wraps a known-incomplete set of roots.
func Partial(roots ...expr.Expr) Solution {
	return Solution{kind: PartialSolutions, values: append([]expr.Expr{}, roots...)}
}

// Kind returns the solution's shape.
func (s Solution) Kind() SolutionKind { return s.kind }

// Values returns the carried root expressions in order. The slice is a copy.
func (s Solution) Values() []expr.Expr {
	vs := make([]expr.Expr, len(s.values))
	copy(vs, s.values)
	return vs
}

func (s Solution) String() string {
	switch s.kind {
	case NoSolutionKind, InfiniteSolutionsKind:
		return s.kind.String()
	}
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = v.String()
	}
	return s.kind.String() + ": {" + strings.Join(parts, ", ") + "}"
}
