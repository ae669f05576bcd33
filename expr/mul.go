package expr

import (
	"sort"
	"strings"
)

// Mul is an n-ary product. Factor order is significant as soon as
// noncommutative symbols are involved.
type Mul struct {
	factors []Expr
}

// Product creates the simplified product of the given factors.
func Product(factors ...Expr) Expr {
	return (&Mul{factors: factors}).Simplify()
}

// Factors returns the factors in order. The slice is a copy.
func (m *Mul) Factors() []Expr {
	fs := make([]Expr, len(m.factors))
	copy(fs, m.factors)
	return fs
}

// Simplify flattens nested products and normalizes factors.
//
// Numeric and commutative factors float to the front of the product and sort
// canonically; equal commutative bases merge into powers. Noncommutative
// factors keep their relative order; only directly adjacent equal bases are
// merged. This is the single place where the commutativity model and the
// simplifier meet.
func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}
	coeff := Number(1)
	var comm, noncomm []Expr
	for _, f := range flat {
		switch {
		case isNum(f):
			coeff = numMul(coeff, f.(*Num))
		case Commutes(f):
			comm = append(comm, f)
		default:
			noncomm = append(noncomm, f)
		}
	}
	if coeff.Sign() == 0 {
		return Number(0)
	}
	comm = mergeCommutative(comm)
	noncomm = mergeAdjacent(noncomm)

	factors := make([]Expr, 0, len(comm)+len(noncomm)+1)
	factors = append(factors, comm...)
	factors = append(factors, noncomm...)
	if len(factors) == 0 {
		return coeff
	}
	if !coeff.IsOne() {
		factors = append([]Expr{coeff}, factors...)
	}
	if len(factors) == 1 {
		return factors[0]
	}
	return &Mul{factors: factors}
}

func isNum(e Expr) bool {
	_, ok := e.(*Num)
	return ok
}

// baseExp views a factor as base^exponent.
func baseExp(f Expr) (Expr, Expr) {
	if p, ok := f.(*Pow); ok {
		return p.base, p.exp
	}
	return f, Number(1)
}

// mergeCommutative groups commuting factors by base, sums exponents, and
// sorts the result canonically. x * x^2 becomes x^3, x * x^-1 vanishes.
func mergeCommutative(factors []Expr) []Expr {
	type entry struct {
		base Expr
		exp  Expr
	}
	byBase := map[string]*entry{}
	keys := []string{}
	for _, f := range factors {
		base, exp := baseExp(f)
		key := base.String()
		e, seen := byBase[key]
		if !seen {
			byBase[key] = &entry{base: base, exp: exp}
			keys = append(keys, key)
			continue
		}
		e.exp = Sum(e.exp, exp)
	}
	sort.Strings(keys)
	merged := make([]Expr, 0, len(keys))
	for _, key := range keys {
		e := byBase[key]
		f := Power(e.base, e.exp)
		if n, ok := f.(*Num); ok && n.IsOne() {
			continue
		}
		merged = append(merged, f)
	}
	return merged
}

// mergeAdjacent merges runs of directly adjacent equal bases in an
// order-locked factor sequence: A*A becomes A^2, A^-1*A vanishes. Factors
// separated by a different base are never brought together.
func mergeAdjacent(factors []Expr) []Expr {
	merged := make([]Expr, 0, len(factors))
	i := 0
	for i < len(factors) {
		base, exp := baseExp(factors[i])
		j := i + 1
		for j < len(factors) {
			b, e := baseExp(factors[j])
			if !b.Equal(base) {
				break
			}
			exp = Sum(exp, e)
			j++
		}
		f := Power(base, exp)
		if n, ok := f.(*Num); !ok || !n.IsOne() {
			merged = append(merged, f)
		}
		i = j
	}
	return merged
}

func (m *Mul) Substitute(name string, value Expr) Expr {
	factors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		factors[i] = f.Substitute(name, value)
	}
	return Product(factors...)
}

// Derive applies the product rule. The factor order of each summand is kept,
// which makes the rule valid for noncommutative factors as well.
func (m *Mul) Derive(name string) Expr {
	terms := make([]Expr, len(m.factors))
	for i := range m.factors {
		parts := make([]Expr, len(m.factors))
		for j, f := range m.factors {
			if j == i {
				parts[j] = f.Derive(name)
			} else {
				parts[j] = f
			}
		}
		terms[i] = Product(parts...)
	}
	return Sum(terms...)
}

func (m *Mul) Eval() (*Num, bool) {
	acc := Number(1)
	for _, f := range m.factors {
		v, ok := f.Eval()
		if !ok {
			return nil, false
		}
		acc = numMul(acc, v)
	}
	return acc, true
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (m *Mul) LaTeX() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "\\left(" + f.LaTeX() + "\\right)"
		} else {
			parts[i] = f.LaTeX()
		}
	}
	return strings.Join(parts, " ")
}
