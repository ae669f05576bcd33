package probset

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/symgo/solveq/expr"
)

// Problem is one parsed line of a problem set: an equation plus the symbol
// to solve it for.
type Problem struct {
	Equation *expr.Equation
	Target   *expr.Sym
	Line     int    // 1-based line number within the set, 0 for ad-hoc parses
	Source   string // the raw input line
}

// Parse parses one problem line of the form "lhs = rhs ; target".
func Parse(line string) (*Problem, error) {
	p, err := newParser(line)
	if err != nil {
		return nil, err
	}
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect("="); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	target, err := p.parseSymbol()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return &Problem{
		Equation: expr.NewEquation(lhs, rhs),
		Target:   target,
		Source:   line,
	}, nil
}

// ParseExpr parses a bare expression in infix notation.
func ParseExpr(s string) (expr.Expr, error) {
	p, err := newParser(s)
	if err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return e, nil
}

// --- Lexer -----------------------------------------------------------------

type tokKind int8

const (
	tokEOF tokKind = iota
	tokNumber
	tokIdent
	tokMarker // @matrix, @quat, @op
	tokOp     // one of + - * / ^ ( ) = ;
)

type token struct {
	kind tokKind
	text string
	pos  int
}

func lex(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case strings.ContainsRune("+-*/^()=;", r):
			toks = append(toks, token{kind: tokOp, text: string(r), pos: i})
			i++
		case r == '@':
			start := i
			i++
			for i < len(runes) && unicode.IsLetter(runes[i]) {
				i++
			}
			toks = append(toks, token{kind: tokMarker, text: string(runes[start:i]), pos: start})
		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			toks = append(toks, token{kind: tokNumber, text: string(runes[start:i]), pos: start})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(runes[start:i]), pos: start})
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", r, i)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(runes)}), nil
}

// --- Parser ----------------------------------------------------------------

// parser is a recursive-descent parser over a lexed line. Symbol kinds are
// remembered per name, so '@matrix A' declares A once and plain 'A' refers to
// the matrix symbol afterwards.
type parser struct {
	toks  []token
	pos   int
	kinds map[string]expr.Kind
}

func newParser(input string) (*parser, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	return &parser{toks: toks, kinds: map[string]expr.Kind{}}, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(op string) error {
	t := p.next()
	if t.kind != tokOp || t.text != op {
		return fmt.Errorf("expected %q at position %d, found %q", op, t.pos, t.text)
	}
	return nil
}

func (p *parser) expectEOF() error {
	if t := p.peek(); t.kind != tokEOF {
		return fmt.Errorf("trailing input at position %d: %q", t.pos, t.text)
	}
	return nil
}

func (p *parser) isOp(op string) bool {
	t := p.peek()
	return t.kind == tokOp && t.text == op
}

// parseExpr handles sums: term (('+'|'-') term)*
func (p *parser) parseExpr() (expr.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []expr.Expr{left}
	for p.isOp("+") || p.isOp("-") {
		op := p.next().text
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == "-" {
			right = expr.Negate(right)
		}
		terms = append(terms, right)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return expr.Sum(terms...), nil
}

// parseTerm handles products: unary (('*'|'/') unary)*
func (p *parser) parseTerm() (expr.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	factors := []expr.Expr{left}
	for p.isOp("*") || p.isOp("/") {
		op := p.next().text
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == "/" {
			right = expr.Inverse(right)
		}
		factors = append(factors, right)
	}
	if len(factors) == 1 {
		return factors[0], nil
	}
	return expr.Product(factors...), nil
}

// parseUnary handles a leading sign.
func (p *parser) parseUnary() (expr.Expr, error) {
	if p.isOp("-") {
		p.next()
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expr.Negate(e), nil
	}
	if p.isOp("+") {
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower handles exponentiation, right-associative: atom ('^' unary)?
func (p *parser) parsePower() (expr.Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return expr.Power(base, exp), nil
}

func (p *parser) parseAtom() (expr.Expr, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.next()
		r, ok := new(big.Rat).SetString(t.text)
		if !ok {
			return nil, fmt.Errorf("malformed number %q at position %d", t.text, t.pos)
		}
		return expr.FromRat(r), nil
	case tokMarker, tokIdent:
		return p.parseIdent()
	case tokOp:
		if t.text == "(" {
			p.next()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, fmt.Errorf("unexpected %q at position %d", t.text, t.pos)
}

// parseIdent parses a possibly kind-annotated identifier, which is either a
// symbol or, when followed by an opening parenthesis, a function call.
func (p *parser) parseIdent() (expr.Expr, error) {
	kind := expr.Scalar
	annotated := false
	if p.peek().kind == tokMarker {
		m := p.next()
		k, ok := markerKind(m.text)
		if !ok {
			return nil, fmt.Errorf("unknown kind marker %q at position %d", m.text, m.pos)
		}
		kind = k
		annotated = true
	}
	t := p.next()
	if t.kind != tokIdent {
		return nil, fmt.Errorf("expected identifier at position %d, found %q", t.pos, t.text)
	}
	if !annotated && p.isOp("(") {
		p.next()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return expr.FnByName(t.text, arg), nil
	}
	if annotated {
		if prev, seen := p.kinds[t.text]; seen && prev != kind {
			return nil, fmt.Errorf("symbol %q redeclared with kind %s", t.text, kind.String())
		}
		p.kinds[t.text] = kind
	}
	return expr.TypedSym(t.text, p.kinds[t.text]), nil
}

// parseSymbol parses the solve-for target after the semicolon.
func (p *parser) parseSymbol() (*expr.Sym, error) {
	e, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	s, ok := e.(*expr.Sym)
	if !ok {
		return nil, fmt.Errorf("solve target must be a symbol, found %q", e.String())
	}
	return s, nil
}

func markerKind(marker string) (expr.Kind, bool) {
	switch marker {
	case "@matrix":
		return expr.Matrix, true
	case "@quat":
		return expr.Quaternion, true
	case "@op":
		return expr.Operator, true
	}
	return expr.Scalar, false
}
