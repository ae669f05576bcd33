package expr

// Pow is base raised to an exponent.
type Pow struct {
	base, exp Expr
}

// Power creates the simplified power base^exp.
func Power(base, exp Expr) Expr {
	return (&Pow{base: base, exp: exp}).Simplify()
}

// Base returns the base expression.
func (p *Pow) Base() Expr { return p.base }

// Exp returns the exponent expression.
func (p *Pow) Exp() Expr { return p.exp }

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*Num); ok {
		if en.Sign() == 0 {
			// 0^0 stays unevaluated.
			if bn, ok2 := base.(*Num); ok2 && bn.Sign() == 0 {
				return &Pow{base: base, exp: exp}
			}
			return Number(1)
		}
		if en.IsOne() {
			return base
		}
	}
	if bn, ok := base.(*Num); ok {
		if bn.Sign() == 0 {
			if en, ok2 := exp.(*Num); ok2 && en.Sign() < 0 {
				return &Pow{base: base, exp: exp} // division by zero stays symbolic
			}
			return Number(0)
		}
		if bn.IsOne() {
			return Number(1)
		}
		if en, ok2 := exp.(*Num); ok2 && en.IsInt() {
			if e, fits := en.Int64(); fits && e >= -32 && e <= 32 {
				return numPowInt(bn, e)
			}
		}
	}
	if inner, ok := base.(*Pow); ok && Commutes(inner.base) {
		return Power(inner.base, Product(inner.exp, exp))
	}
	if inner, ok := base.(*Pow); ok {
		// (A^m)^n merges only for integer exponents; order is not involved.
		if im, ok1 := inner.exp.(*Num); ok1 && im.IsInt() {
			if en, ok2 := exp.(*Num); ok2 && en.IsInt() {
				return Power(inner.base, numMul(im, en))
			}
		}
	}
	return &Pow{base: base, exp: exp}
}

func (p *Pow) Substitute(name string, value Expr) Expr {
	return Power(p.base.Substitute(name, value), p.exp.Substitute(name, value))
}

func (p *Pow) Derive(name string) Expr {
	if en, ok := p.exp.(*Num); ok {
		// d(u^n) = n*u^(n-1)*u'
		return Product(en, Power(p.base, numSub(en, Number(1))), p.base.Derive(name))
	}
	// General case: u^v * (v'*ln(u) + v*u'/u)
	logTerm := Product(p.exp.Derive(name), ApplyLn(p.base))
	quotTerm := Product(p.exp, p.base.Derive(name), Power(p.base, Number(-1)))
	return Product(Power(p.base, p.exp), Sum(logTerm, quotTerm))
}

func (p *Pow) Eval() (*Num, bool) {
	b, ok1 := p.base.Eval()
	e, ok2 := p.exp.Eval()
	if !ok1 || !ok2 || !e.IsInt() {
		return nil, false
	}
	n, fits := e.Int64()
	if !fits || n < -64 || n > 64 {
		return nil, false
	}
	if b.Sign() == 0 && n < 0 {
		return nil, false
	}
	return numPowInt(b, n), true
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) String() string {
	baseStr := p.base.String()
	expStr := p.exp.String()
	if needsParens(p.base) {
		baseStr = "(" + baseStr + ")"
	}
	if needsParens(p.exp) {
		expStr = "(" + expStr + ")"
	}
	if n, ok := p.exp.(*Num); ok && (n.Sign() < 0 || !n.IsInt()) {
		expStr = "(" + n.String() + ")"
	}
	return baseStr + "^" + expStr
}

func (p *Pow) LaTeX() string {
	baseStr := p.base.LaTeX()
	if needsParens(p.base) {
		baseStr = "\\left(" + baseStr + "\\right)"
	}
	return baseStr + "^{" + p.exp.LaTeX() + "}"
}

func needsParens(e Expr) bool {
	switch e.(type) {
	case *Add, *Mul:
		return true
	}
	return false
}
