package expr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDegreeIn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	y := NewSym("y")
	cases := []struct {
		e    Expr
		deg  int
		isOK bool
	}{
		{Number(5), 0, true},
		{Sum(Product(Number(2), x), Number(3)), 1, true},
		{Sum(Power(x, Number(2)), x), 2, true},
		{Product(Power(x, Number(3)), y), 3, true},
		{ApplySin(x), 0, false},
		{Power(x, Number(-1)), 0, false},
		{Power(Number(2), x), 0, false},
	}
	for i, c := range cases {
		deg, ok := DegreeIn(c.e, x)
		if ok != c.isOK {
			t.Errorf("case %d (%s): expected ok = %v", i, c.e.String(), c.isOK)
			continue
		}
		if ok && deg != c.deg {
			t.Errorf("case %d (%s): expected degree %d, have %d", i, c.e.String(), c.deg, deg)
		}
	}
}

func TestCoeffsIn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	e := Sum(Power(x, Number(2)), Product(Number(-5), x), Number(6))
	coeffs := CoeffsIn(e, x)
	expectCoeff(t, coeffs, 2, Number(1))
	expectCoeff(t, coeffs, 1, Number(-5))
	expectCoeff(t, coeffs, 0, Number(6))
}

func expectCoeff(t *testing.T, coeffs map[int]Expr, deg int, want Expr) {
	t.Helper()
	c, ok := coeffs[deg]
	if !ok {
		t.Errorf("missing coefficient for degree %d", deg)
		return
	}
	if !c.Simplify().Equal(want) {
		t.Errorf("coefficient of degree %d: expected %s, have %s", deg, want.String(), c.String())
	}
}

func TestExpand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	e := Product(Sum(x, Number(1)), Sum(x, Number(-1)))
	expanded := Expand(e).Simplify()
	want := Sum(Power(x, Number(2)), Number(-1))
	if !expanded.Equal(want) {
		t.Errorf("expected (x+1)(x-1) = x^2 - 1, have %s", expanded.String())
	}
}

func TestExpandKeepsFactorOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	a := TypedSym("A", Matrix)
	b := TypedSym("B", Matrix)
	x := TypedSym("X", Matrix)
	e := Product(a, Sum(x, b))
	expanded := Expand(e).Simplify()
	want := Sum(Product(a, x), Product(a, b))
	if !expanded.Equal(want) {
		t.Errorf("expected A*(X+B) = A*X + A*B, have %s", expanded.String())
	}
}

func TestExpandPowerOfSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	// x^n is already flat; the simplifier folds the unrolled product straight
	// back into the power, and expansion must not chase that fold forever
	x := NewSym("x")
	for n := int64(2); n <= 5; n++ {
		expanded := Expand(Power(x, Number(n)))
		if !expanded.Equal(Power(x, Number(n))) {
			t.Errorf("expected x^%d to expand to itself, have %s", n, expanded.String())
		}
	}
	e := Product(Number(2), Power(x, Number(2)))
	if !Expand(e).Equal(e) {
		t.Errorf("expected 2*x^2 to expand to itself, have %s", Expand(e).String())
	}
}

func TestExpandPowerOfSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	e := Power(Sum(x, Number(1)), Number(2))
	expanded := Expand(e).Simplify()
	want := Sum(Power(x, Number(2)), Product(Number(2), x), Number(1))
	if !expanded.Equal(want) {
		t.Errorf("expected (x+1)^2 = x^2 + 2*x + 1, have %s", expanded.String())
	}

	e = Power(Sum(x, Number(2)), Number(3))
	expanded = Expand(e).Simplify()
	want = Sum(
		Power(x, Number(3)),
		Product(Number(6), Power(x, Number(2))),
		Product(Number(12), x),
		Number(8),
	)
	if !expanded.Equal(want) {
		t.Errorf("expected (x+2)^3 = x^3 + 6*x^2 + 12*x + 8, have %s", expanded.String())
	}
}

func TestContainsSym(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	y := NewSym("y")
	e := Sum(Power(x, Number(2)), ApplySin(x))
	if !ContainsSym(e, x) {
		t.Errorf("expected e to contain x")
	}
	if ContainsSym(e, y) {
		t.Errorf("expected e not to contain y")
	}
}

func TestHasTranscendental(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	if !HasTranscendental(Sum(ApplySin(x), Number(1))) {
		t.Errorf("expected sin(x) + 1 to be transcendental")
	}
	if HasTranscendental(ApplySqrt(Sum(x, Number(1)))) {
		t.Errorf("sqrt is algebraic, not transcendental")
	}
}

func TestFreeSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	y := NewSym("y")
	a := TypedSym("A", Matrix)
	e := Sum(Product(a, x), Product(y, x))
	syms := FreeSymbols(e)
	if len(syms) != 3 {
		t.Fatalf("expected 3 free symbols, have %d", len(syms))
	}
	names := []string{syms[0].Name(), syms[1].Name(), syms[2].Name()}
	if names[0] != "A" || names[1] != "x" || names[2] != "y" {
		t.Errorf("expected sorted symbols [A x y], have %v", names)
	}
}
