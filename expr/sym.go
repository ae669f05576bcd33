package expr

// Kind is the algebraic type of a symbol. It determines commutativity: scalar
// symbols commute under multiplication, all other kinds do not.
type Kind int8

// The closed set of symbol kinds.
const (
	Scalar Kind = iota
	Matrix
	Operator
	Quaternion
)

// Commutes reports whether symbols of this kind commute under multiplication.
// This is a total, pure function of the kind and is never re-derived from
// context.
func (k Kind) Commutes() bool {
	return k == Scalar
}

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Matrix:
		return "matrix"
	case Operator:
		return "operator"
	case Quaternion:
		return "quaternion"
	}
	return "kind(?)"
}

// Sym is a named symbol: an unknown or a symbolic constant. Symbols are
// immutable; identity is the pair (name, kind).
type Sym struct {
	name string
	kind Kind
}

// NewSym creates a scalar symbol.
func NewSym(name string) *Sym {
	return &Sym{name: name, kind: Scalar}
}

// TypedSym creates a symbol of an explicit kind.
func TypedSym(name string, kind Kind) *Sym {
	return &Sym{name: name, kind: kind}
}

// Name returns the symbol's name.
func (s *Sym) Name() string { return s.name }

// SymKind returns the symbol's algebraic kind.
func (s *Sym) SymKind() Kind { return s.kind }

func (s *Sym) Simplify() Expr { return s }

func (s *Sym) Substitute(name string, value Expr) Expr {
	if s.name == name {
		return value
	}
	return s
}

func (s *Sym) Derive(name string) Expr {
	if s.name == name {
		return Number(1)
	}
	return Number(0)
}

func (s *Sym) Eval() (*Num, bool) { return nil, false }

func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name && s.kind == o.kind
}

func (s *Sym) String() string { return s.name }
func (s *Sym) LaTeX() string  { return s.name }
