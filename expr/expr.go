package expr

/*
BSD 3-Clause License

Copyright (c) 2026, the solveq authors

Please refer to the License file in the repository root.
*/

// Expr is a node of an immutable symbolic expression tree.
//
// All implementations are value-like: none of the methods mutates the
// receiver, and results may share structure with their inputs.
type Expr interface {
	// Simplify returns a normalized version of the expression. Simplification
	// is deterministic: equal inputs normalize to structurally equal outputs.
	Simplify() Expr

	// Substitute replaces every occurrence of the symbol with the given name
	// by value and simplifies the result.
	Substitute(name string, value Expr) Expr

	// Derive returns the derivative with respect to the named symbol.
	Derive(name string) Expr

	// Eval reduces the expression to an exact rational constant, if possible.
	Eval() (*Num, bool)

	// Equal reports structural equality after normalization.
	Equal(other Expr) bool

	// String renders the expression in plain infix notation.
	String() string

	// LaTeX renders the expression as LaTeX math.
	LaTeX() string
}

// Commutes reports whether every symbol inside e is of a commuting kind.
// Products of commuting expressions may be reordered freely; products
// containing a noncommutative symbol are order-locked.
func Commutes(e Expr) bool {
	switch v := e.(type) {
	case *Num:
		return true
	case *Sym:
		return v.kind.Commutes()
	case *Add:
		for _, t := range v.terms {
			if !Commutes(t) {
				return false
			}
		}
		return true
	case *Mul:
		for _, f := range v.factors {
			if !Commutes(f) {
				return false
			}
		}
		return true
	case *Pow:
		return Commutes(v.base) && Commutes(v.exp)
	case *Fn:
		return Commutes(v.arg)
	}
	return true
}

// IsZero reports whether e simplifies to the constant 0.
func IsZero(e Expr) bool {
	n, ok := e.Simplify().(*Num)
	return ok && n.Sign() == 0
}

// IsOne reports whether e simplifies to the constant 1.
func IsOne(e Expr) bool {
	n, ok := e.Simplify().(*Num)
	return ok && n.IsOne()
}

// splitCoeff splits an expression into a numeric coefficient and the
// remaining factor. Expressions without a leading numeric factor report a
// coefficient of 1 and themselves as the rest.
func splitCoeff(e Expr) (*Num, Expr) {
	if n, ok := e.(*Num); ok {
		return n, Number(1)
	}
	m, ok := e.(*Mul)
	if !ok || len(m.factors) < 2 {
		return Number(1), e
	}
	coeff, ok := m.factors[0].(*Num)
	if !ok {
		return Number(1), e
	}
	rest := m.factors[1:]
	if len(rest) == 1 {
		return coeff, rest[0]
	}
	return coeff, &Mul{factors: rest}
}

// Negate returns -e simplified.
func Negate(e Expr) Expr {
	return Product(Number(-1), e)
}

// Inverse returns the multiplicative inverse of e, denoted e^-1.
// For noncommutative expressions this is the symbolic inverse; whether it
// exists is the caller's concern.
func Inverse(e Expr) Expr {
	return Power(e, Number(-1))
}
