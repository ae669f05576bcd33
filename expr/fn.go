package expr

// Fn is a named unary function application.
type Fn struct {
	name string
	arg  Expr
}

// Known function names.
const (
	fnSin  = "sin"
	fnCos  = "cos"
	fnTan  = "tan"
	fnExp  = "exp"
	fnLn   = "ln"
	fnSqrt = "sqrt"
)

func apply(name string, arg Expr) Expr {
	return (&Fn{name: name, arg: arg}).Simplify()
}

// ApplySin creates sin(arg).
func ApplySin(arg Expr) Expr { return apply(fnSin, arg) }

// ApplyCos creates cos(arg).
func ApplyCos(arg Expr) Expr { return apply(fnCos, arg) }

// ApplyTan creates tan(arg).
func ApplyTan(arg Expr) Expr { return apply(fnTan, arg) }

// ApplyExp creates exp(arg).
func ApplyExp(arg Expr) Expr { return apply(fnExp, arg) }

// ApplyLn creates ln(arg).
func ApplyLn(arg Expr) Expr { return apply(fnLn, arg) }

// ApplySqrt creates sqrt(arg). Exact square roots of perfect-square rationals
// reduce to a constant.
func ApplySqrt(arg Expr) Expr { return apply(fnSqrt, arg) }

// FnByName applies a function by name. Unknown names stay symbolic.
func FnByName(name string, arg Expr) Expr { return apply(name, arg) }

// Name returns the function name.
func (f *Fn) Name() string { return f.name }

// Arg returns the function argument.
func (f *Fn) Arg() Expr { return f.arg }

// Transcendental reports whether the function is non-algebraic (trig, exp,
// log). sqrt is algebraic and not transcendental.
func (f *Fn) Transcendental() bool {
	switch f.name {
	case fnSin, fnCos, fnTan, fnExp, fnLn:
		return true
	}
	return f.name != fnSqrt
}

func (f *Fn) Simplify() Expr {
	arg := f.arg.Simplify()
	if n, ok := arg.(*Num); ok {
		switch f.name {
		case fnSin, fnTan:
			if n.Sign() == 0 {
				return Number(0)
			}
		case fnCos:
			if n.Sign() == 0 {
				return Number(1)
			}
		case fnExp:
			if n.Sign() == 0 {
				return Number(1)
			}
		case fnLn:
			if n.IsOne() {
				return Number(0)
			}
		case fnSqrt:
			if root, exact := sqrtExact(n); exact {
				return root
			}
		}
	}
	// exp(ln(x)) = x, ln(exp(x)) = x
	if inner, ok := arg.(*Fn); ok {
		if f.name == fnExp && inner.name == fnLn {
			return inner.arg
		}
		if f.name == fnLn && inner.name == fnExp {
			return inner.arg
		}
	}
	return &Fn{name: f.name, arg: arg}
}

func (f *Fn) Substitute(name string, value Expr) Expr {
	return apply(f.name, f.arg.Substitute(name, value))
}

func (f *Fn) Derive(name string) Expr {
	du := f.arg.Derive(name)
	var outer Expr
	switch f.name {
	case fnSin:
		outer = ApplyCos(f.arg)
	case fnCos:
		outer = Negate(ApplySin(f.arg))
	case fnTan:
		outer = Sum(Number(1), Power(ApplyTan(f.arg), Number(2)))
	case fnExp:
		outer = ApplyExp(f.arg)
	case fnLn:
		outer = Power(f.arg, Number(-1))
	case fnSqrt:
		outer = Product(Rational(1, 2), Power(ApplySqrt(f.arg), Number(-1)))
	default:
		outer = apply("D["+f.name+"]", f.arg)
	}
	return Product(outer, du)
}

// Eval stays symbolic: transcendental values have no exact rational form, and
// this package never falls back to floating point.
func (f *Fn) Eval() (*Num, bool) { return nil, false }

func (f *Fn) Equal(other Expr) bool {
	o, ok := other.(*Fn)
	return ok && f.name == o.name && f.arg.Equal(o.arg)
}

func (f *Fn) String() string {
	return f.name + "(" + f.arg.String() + ")"
}

func (f *Fn) LaTeX() string {
	switch f.name {
	case fnSin, fnCos, fnTan, fnExp, fnLn:
		return "\\" + f.name + "\\left(" + f.arg.LaTeX() + "\\right)"
	case fnSqrt:
		return "\\sqrt{" + f.arg.LaTeX() + "}"
	}
	return "\\operatorname{" + f.name + "}\\left(" + f.arg.LaTeX() + "\\right)"
}
