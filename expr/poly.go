package expr

import "sort"

// This file holds the polynomial view of an expression: degree, coefficient
// extraction, expansion, and free-symbol collection. The classifier and the
// polynomial solvers are built on top of these.

// ContainsSym reports whether the symbol occurs anywhere in e.
func ContainsSym(e Expr, sym *Sym) bool {
	switch v := e.(type) {
	case *Sym:
		return v.Equal(sym)
	case *Add:
		for _, t := range v.terms {
			if ContainsSym(t, sym) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if ContainsSym(f, sym) {
				return true
			}
		}
	case *Pow:
		return ContainsSym(v.base, sym) || ContainsSym(v.exp, sym)
	case *Fn:
		return ContainsSym(v.arg, sym)
	}
	return false
}

// DegreeIn returns the degree of e viewed as a polynomial in sym. The second
// return value is false when e is not a polynomial in sym, e.g. when sym
// appears inside a function argument, in an exponent, or with a negative
// power.
func DegreeIn(e Expr, sym *Sym) (int, bool) {
	switch v := e.(type) {
	case *Num:
		return 0, true
	case *Sym:
		if v.Equal(sym) {
			return 1, true
		}
		return 0, true
	case *Add:
		maxDeg := 0
		for _, t := range v.terms {
			d, ok := DegreeIn(t, sym)
			if !ok {
				return 0, false
			}
			if d > maxDeg {
				maxDeg = d
			}
		}
		return maxDeg, true
	case *Mul:
		total := 0
		for _, f := range v.factors {
			d, ok := DegreeIn(f, sym)
			if !ok {
				return 0, false
			}
			total += d
		}
		return total, true
	case *Pow:
		if ContainsSym(v.exp, sym) {
			return 0, false
		}
		base, ok := DegreeIn(v.base, sym)
		if !ok {
			return 0, false
		}
		if base == 0 {
			return 0, true
		}
		n, isNum := v.exp.(*Num)
		if !isNum || !n.IsInt() {
			return 0, false
		}
		exp, fits := n.Int64()
		if !fits || exp < 0 {
			return 0, false
		}
		return base * int(exp), true
	case *Fn:
		if ContainsSym(v.arg, sym) {
			return 0, false
		}
		return 0, true
	}
	return 0, false
}

// CoeffsIn extracts the coefficients of e as a polynomial in sym, keyed by
// degree. The caller is expected to pass an expanded expression; unexpanded
// powers of sums keep their degree but report as a single high-degree term.
func CoeffsIn(e Expr, sym *Sym) map[int]Expr {
	out := map[int]Expr{}
	collectCoeffs(e.Simplify(), sym, out)
	return out
}

func collectCoeffs(e Expr, sym *Sym, out map[int]Expr) {
	switch v := e.(type) {
	case *Add:
		for _, t := range v.terms {
			collectCoeffs(t, sym, out)
		}
		return
	}
	deg, coeff := termDegree(e, sym)
	addCoeff(out, deg, coeff)
}

// termDegree splits a single (non-Add) term into its degree in sym and the
// remaining coefficient expression.
func termDegree(e Expr, sym *Sym) (int, Expr) {
	switch v := e.(type) {
	case *Sym:
		if v.Equal(sym) {
			return 1, Number(1)
		}
		return 0, v
	case *Pow:
		if base, ok := v.base.(*Sym); ok && base.Equal(sym) {
			if n, ok2 := v.exp.(*Num); ok2 && n.IsInt() {
				if d, fits := n.Int64(); fits && d >= 0 {
					return int(d), Number(1)
				}
			}
		}
		return 0, v
	case *Mul:
		deg := 0
		coeffFactors := []Expr{}
		for _, f := range v.factors {
			d, _ := termDegree(f, sym)
			if d > 0 {
				deg += d
			} else {
				coeffFactors = append(coeffFactors, f)
			}
		}
		switch len(coeffFactors) {
		case 0:
			return deg, Number(1)
		case 1:
			return deg, coeffFactors[0]
		}
		return deg, Product(coeffFactors...)
	}
	return 0, e
}

func addCoeff(out map[int]Expr, deg int, val Expr) {
	if existing, ok := out[deg]; ok {
		out[deg] = Sum(existing, val)
	} else {
		out[deg] = val.Simplify()
	}
}

// Expand distributes products over sums and unrolls small integer powers of
// sums, producing the flat polynomial form CoeffsIn wants.
func Expand(e Expr) Expr {
	x := expand(e).Simplify()
	tracer().Debugf("expand: %s -> %s", e.String(), x.String())
	return x
}

func expand(e Expr) Expr {
	switch v := e.(type) {
	case *Mul:
		// Fold the factors left to right, so noncommutative factor order
		// survives the distribution.
		result := Expr(Number(1))
		for _, f := range v.factors {
			result = mulExpand(result, expand(f))
		}
		return result
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = expand(t)
		}
		return Sum(terms...)
	case *Pow:
		if n, ok := v.exp.(*Num); ok && n.IsInt() {
			if e64, fits := n.Int64(); fits && e64 >= 0 && e64 <= 16 {
				result := Expr(Number(1))
				base := expand(v.base)
				for i := int64(0); i < e64; i++ {
					result = mulExpand(result, base)
				}
				return result
			}
		}
		return Power(expand(v.base), expand(v.exp))
	}
	return e
}

// mulExpand multiplies two already-expanded expressions by term-list
// convolution. The pairwise products are formed once and never expanded
// again; the simplifier folding x*x back into x^2 stays folded, so the
// expansion terminates.
func mulExpand(a, b Expr) Expr {
	at := addTerms(a)
	bt := addTerms(b)
	terms := make([]Expr, 0, len(at)*len(bt))
	for _, ta := range at {
		for _, tb := range bt {
			terms = append(terms, Product(ta, tb))
		}
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return Sum(terms...)
}

func addTerms(e Expr) []Expr {
	if a, ok := e.(*Add); ok {
		return a.terms
	}
	return []Expr{e}
}

// HasTranscendental reports whether a transcendental function application
// (trig, exp, log) occurs anywhere in the tree.
func HasTranscendental(e Expr) bool {
	switch v := e.(type) {
	case *Fn:
		return v.Transcendental() || HasTranscendental(v.arg)
	case *Add:
		for _, t := range v.terms {
			if HasTranscendental(t) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if HasTranscendental(f) {
				return true
			}
		}
	case *Pow:
		return HasTranscendental(v.base) || HasTranscendental(v.exp)
	}
	return false
}

// FreeSymbols returns the distinct symbols of e, sorted by name. Symbols with
// equal names but different kinds count as distinct.
func FreeSymbols(e Expr) []*Sym {
	seen := map[Sym]*Sym{}
	collectSyms(e, seen)
	syms := make([]*Sym, 0, len(seen))
	for _, s := range seen {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		if syms[i].name != syms[j].name {
			return syms[i].name < syms[j].name
		}
		return syms[i].kind < syms[j].kind
	})
	return syms
}

func collectSyms(e Expr, out map[Sym]*Sym) {
	switch v := e.(type) {
	case *Sym:
		out[*v] = v
	case *Add:
		for _, t := range v.terms {
			collectSyms(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSyms(f, out)
		}
	case *Pow:
		collectSyms(v.base, out)
		collectSyms(v.exp, out)
	case *Fn:
		collectSyms(v.arg, out)
	}
}
