package expr

import (
	"sort"
	"strings"
)

// Add is an n-ary sum of terms.
type Add struct {
	terms []Expr
}

// Sum creates the simplified sum of the given terms.
func Sum(terms ...Expr) Expr {
	return (&Add{terms: terms}).Simplify()
}

// Terms returns the summands. The slice is a copy.
func (a *Add) Terms() []Expr {
	ts := make([]Expr, len(a.terms))
	copy(ts, a.terms)
	return ts
}

// Simplify flattens nested sums and collects like terms. Terms are grouped by
// their non-numeric part with exact rational coefficients, so A*X - A*X
// cancels without any reordering of noncommutative factors.
func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}
	constant := Number(0)
	type group struct {
		coeff *Num
		rest  Expr
	}
	groups := map[string]*group{}
	keys := []string{}
	for _, t := range flat {
		if n, ok := t.(*Num); ok {
			constant = numAdd(constant, n)
			continue
		}
		coeff, rest := splitCoeff(t)
		key := rest.String()
		g, seen := groups[key]
		if !seen {
			g = &group{coeff: Number(0), rest: rest}
			groups[key] = g
			keys = append(keys, key)
		}
		g.coeff = numAdd(g.coeff, coeff)
	}
	sort.Strings(keys)
	result := make([]Expr, 0, len(keys)+1)
	for _, key := range keys {
		g := groups[key]
		if g.coeff.Sign() == 0 {
			continue
		}
		if g.coeff.IsOne() {
			result = append(result, g.rest)
		} else {
			result = append(result, withCoeff(g.coeff, g.rest))
		}
	}
	if constant.Sign() != 0 {
		result = append(result, constant)
	}
	switch len(result) {
	case 0:
		return Number(0)
	case 1:
		return result[0]
	}
	return &Add{terms: result}
}

// withCoeff prefixes an already simplified expression with a numeric
// coefficient without running a full product simplification.
func withCoeff(coeff *Num, rest Expr) Expr {
	if m, ok := rest.(*Mul); ok {
		return &Mul{factors: append([]Expr{coeff}, m.factors...)}
	}
	return &Mul{factors: []Expr{coeff, rest}}
}

func (a *Add) Substitute(name string, value Expr) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Substitute(name, value)
	}
	return Sum(terms...)
}

func (a *Add) Derive(name string) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Derive(name)
	}
	return Sum(terms...)
}

func (a *Add) Eval() (*Num, bool) {
	acc := Number(0)
	for _, t := range a.terms {
		v, ok := t.Eval()
		if !ok {
			return nil, false
		}
		acc = numAdd(acc, v)
	}
	return acc, true
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) String() string {
	return a.render(func(e Expr) string { return e.String() }, "-")
}

func (a *Add) LaTeX() string {
	return a.render(func(e Expr) string { return e.LaTeX() }, "-")
}

// render joins terms with sign-aware separators: negative terms are printed
// as subtraction.
func (a *Add) render(f func(Expr) string, minus string) string {
	if len(a.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range a.terms {
		neg, abs := negativeTerm(t)
		switch {
		case i == 0 && neg:
			sb.WriteString(minus)
			sb.WriteString(f(abs))
		case i == 0:
			sb.WriteString(f(t))
		case neg:
			sb.WriteString(" " + minus + " ")
			sb.WriteString(f(abs))
		default:
			sb.WriteString(" + ")
			sb.WriteString(f(t))
		}
	}
	return sb.String()
}

// negativeTerm reports whether a term carries a negative numeric coefficient
// and returns the term with the sign stripped.
func negativeTerm(e Expr) (bool, Expr) {
	if n, ok := e.(*Num); ok {
		if n.Sign() < 0 {
			return true, numNeg(n)
		}
		return false, e
	}
	coeff, rest := splitCoeff(e)
	if coeff.Sign() >= 0 {
		return false, e
	}
	neg := numNeg(coeff)
	if neg.IsOne() {
		return true, rest
	}
	return true, withCoeff(neg, rest)
}
