/*
Package solveq is the equation-solving core of a symbolic algebra library.

Given an equation and a target unknown, the solver classifies the equation,
routes it to the narrowest applicable solving algorithm, and returns a
solution that keeps the mathematical shape of the answer: a single root, a
finite enumerated root set, a parametrized family, a known-incomplete root
set, no solution, or infinitely many solutions. Alongside the solution it
produces an ordered step-by-step trace that a rendering layer can turn into a
human-readable derivation.

# Routing

Control flow is a single synchronous pass with no retries:

	(equation, target) → classifier → EquationType → router → one solver

A target symbol of noncommutative kind (matrix, operator, quaternion) bypasses
degree-based classification entirely and routes to the noncommutative solver,
where multiplying both sides by an inverse is only legal on the side the known
factor occupies: A·X = B solves to A⁻¹·B, while X·A = B solves to B·A⁻¹.

# Results

Solution is a closed six-variant value. The variants Parametric and Partial
carry information that Multiple does not: whether roots are generic families,
and whether the root set is known to be incomplete. No layer of this module
ever folds them into Multiple, and bindings built on top of it must not
either.

# Concurrency

Everything here is a pure function over immutable values. Solver instances
hold no state between calls; concurrent Solve calls need no locking.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, the solveq authors

Please refer to the License file in the repository root.
*/
package solveq

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
