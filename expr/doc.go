/*
Package expr implements immutable symbolic expression trees.

Expressions are persistent values: every operation (simplification,
substitution, differentiation, expansion) returns a new tree and leaves its
input untouched. This makes expressions safe to share between goroutines
without locking and lets the solving core hand out sub-expressions of its
input without defensive copies.

# Node kinds

An expression is one of

	Num   an exact rational constant (math/big.Rat, no floats)
	Sym   a named unknown or constant, tagged with an algebraic Kind
	Add   an n-ary sum of terms
	Mul   an n-ary ordered product of factors
	Pow   base^exponent
	Fn    a named unary function application (sin, cos, tan, exp, ln, sqrt)

Constructors simplify on the fly, so client code rarely sees un-normalized
trees: Sum(x, x) is already 2*x, Product(Number(0), y) is 0.

# Commutativity

Each Sym carries a Kind (Scalar, Matrix, Operator, Quaternion). Scalar symbols
commute; the other kinds do not. The simplifier consults commutativity before
any reordering: numeric and scalar factors of a product float to the front and
sort canonically, while the relative order of noncommutative factors is kept
exactly as written. A*B and B*A are different expressions when A and B are
matrix symbols, and stay that way.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, the solveq authors

Please refer to the License file in the repository root.
*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'solveq'.
func tracer() tracing.Trace {
	return tracing.Select("solveq")
}
