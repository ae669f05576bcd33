package probset

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/symgo/solveq/expr"
)

func TestParseLinearProblem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq.probset")
	defer teardown()

	prob, err := Parse("2*x + 3 = 0 ; x")
	if err != nil {
		t.Fatal(err)
	}
	if prob.Target.Name() != "x" {
		t.Errorf("expected target x, have %s", prob.Target.Name())
	}
	x := expr.NewSym("x")
	want := expr.Sum(expr.Product(expr.Number(2), x), expr.Number(3))
	if !prob.Equation.Residual().Simplify().Equal(want.Simplify()) {
		t.Errorf("unexpected residual %s", prob.Equation.Residual().Simplify().String())
	}
}

func TestParseExprPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq.probset")
	defer teardown()

	e, err := ParseExpr("1 + 2*x^2")
	if err != nil {
		t.Fatal(err)
	}
	x := expr.NewSym("x")
	want := expr.Sum(expr.Number(1), expr.Product(expr.Number(2), expr.Power(x, expr.Number(2))))
	if !e.Simplify().Equal(want) {
		t.Errorf("expected 1 + 2*x^2, have %s", e.String())
	}
}

func TestParseExprParenthesesAndDivision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq.probset")
	defer teardown()

	e, err := ParseExpr("(x + 1) / 2")
	if err != nil {
		t.Fatal(err)
	}
	n := e.Substitute("x", expr.Number(3)).Simplify()
	if !n.Equal(expr.Number(2)) {
		t.Errorf("expected (3+1)/2 = 2, have %s", n.String())
	}
}

func TestParseExprUnaryMinus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq.probset")
	defer teardown()

	e, err := ParseExpr("-x + 5 - -3")
	if err != nil {
		t.Fatal(err)
	}
	n := e.Substitute("x", expr.Number(8)).Simplify()
	if !n.Equal(expr.Number(0)) {
		t.Errorf("expected -8 + 5 + 3 = 0, have %s", n.String())
	}
}

func TestParseExprFunctionCall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq.probset")
	defer teardown()

	e, err := ParseExpr("sin(x) + sqrt(9)")
	if err != nil {
		t.Fatal(err)
	}
	x := expr.NewSym("x")
	want := expr.Sum(expr.ApplySin(x), expr.Number(3))
	if !e.Simplify().Equal(want) {
		t.Errorf("expected sin(x) + 3, have %s", e.Simplify().String())
	}
}

func TestParseKindMarkers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq.probset")
	defer teardown()

	prob, err := Parse("@matrix A * @matrix X - @matrix B = 0 ; X")
	if err != nil {
		t.Fatal(err)
	}
	if prob.Target.SymKind() != expr.Matrix {
		t.Errorf("expected the target to be matrix-kinded, have %s", prob.Target.SymKind().String())
	}
	// the annotation sticks: plain X after the declaration is the matrix X
	if !expr.ContainsSym(prob.Equation.Residual(), expr.TypedSym("X", expr.Matrix)) {
		t.Errorf("expected the residual to contain the matrix symbol X")
	}
}

func TestParseMarkerSticksForLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq.probset")
	defer teardown()

	prob, err := Parse("@quat p * @quat q = r ; q")
	if err != nil {
		t.Fatal(err)
	}
	if prob.Target.SymKind() != expr.Quaternion {
		t.Errorf("expected a quaternion target, have %s", prob.Target.SymKind().String())
	}
}

func TestParseRationalNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq.probset")
	defer teardown()

	e, err := ParseExpr("1.5 + 1/2")
	if err != nil {
		t.Fatal(err)
	}
	n, ok := e.Simplify().Eval()
	if !ok {
		t.Fatalf("expected a numeric result, have %s", e.String())
	}
	if !expr.Number(2).Equal(n) {
		t.Errorf("expected 1.5 + 1/2 = 2, have %s", n.String())
	}
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq.probset")
	defer teardown()

	inputs := []string{
		"2*x + 3",
		"x^2 - 5*x + 6",
		"(x + 1)*(x - 1)",
		"sin(x) + 1/2",
		"x^2^3",
	}
	for _, input := range inputs {
		e, err := ParseExpr(input)
		if err != nil {
			t.Errorf("parse %q: %v", input, err)
			continue
		}
		rendered := e.String()
		back, err := ParseExpr(rendered)
		if err != nil {
			t.Errorf("re-parse %q (from %q): %v", rendered, input, err)
			continue
		}
		if !back.Simplify().Equal(e.Simplify()) {
			t.Errorf("round trip of %q drifted: %q re-parses to %q",
				input, rendered, back.String())
		}
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq.probset")
	defer teardown()

	bad := []string{
		"",
		"2*x + 3",          // no '='
		"2*x + 3 = 0",      // no target
		"2*x + = 0 ; x",    // malformed expression
		"x = 0 ; x + 1",    // target is not a symbol
		"x = 0 ; 1",        // target is not a symbol
		"@foo A = 0 ; A",   // unknown kind marker
		"x = 0 ; x trail",  // trailing input
		"x $ y = 0 ; x",    // illegal character
		"(x = 0 ; x",       // unbalanced parenthesis
		"@matrix 2 = 0; x", // marker without identifier
	}
	for _, input := range bad {
		if _, err := Parse(input); err == nil {
			t.Errorf("expected a parse error for %q", input)
		}
	}
}
