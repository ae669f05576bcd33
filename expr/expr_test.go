package expr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	half := Rational(1, 2)
	if half.String() != "1/2" {
		t.Errorf("expected 1/2, have %s", half.String())
	}
	sum := Sum(half, Rational(1, 3))
	n, ok := sum.Eval()
	if !ok {
		t.Fatalf("expected numeric sum, have %v", sum)
	}
	if n.String() != "5/6" {
		t.Errorf("expected 1/2 + 1/3 = 5/6, have %s", n.String())
	}
}

func TestAddCollectsLikeTerms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	e := Sum(Product(Number(2), x), Product(Number(3), x), Number(1))
	t.Logf("e = %s", e.String())
	want := Sum(Product(Number(5), x), Number(1))
	if !e.Equal(want) {
		t.Errorf("expected 2x + 3x + 1 = 5x + 1, have %s", e.String())
	}
}

func TestAddCancelsNoncommutativeTerms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	a := TypedSym("A", Matrix)
	x := TypedSym("X", Matrix)
	e := Sum(Product(a, x), Negate(Product(a, x)))
	if !IsZero(e) {
		t.Errorf("expected A*X - A*X to vanish, have %s", e.String())
	}
}

func TestMulCommutativeFactorsSort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	y := NewSym("y")
	e1 := Product(y, x)
	e2 := Product(x, y)
	if !e1.Equal(e2) {
		t.Errorf("expected y*x and x*y to normalize equally, have %s and %s",
			e1.String(), e2.String())
	}
}

func TestMulPreservesNoncommutativeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	a := TypedSym("A", Matrix)
	b := TypedSym("B", Matrix)
	ab := Product(a, b)
	ba := Product(b, a)
	if ab.Equal(ba) {
		t.Errorf("A*B and B*A must not be identified, both are %s", ab.String())
	}
	if ab.String() != "A*B" {
		t.Errorf("expected A*B, have %s", ab.String())
	}
	if ba.String() != "B*A" {
		t.Errorf("expected B*A, have %s", ba.String())
	}
}

func TestMulMergesAdjacentEqualBases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	a := TypedSym("A", Matrix)
	e := Product(a, a)
	if !e.Equal(Power(a, Number(2))) {
		t.Errorf("expected A*A = A^2, have %s", e.String())
	}
	e = Product(Inverse(a), a)
	if !IsOne(e) {
		t.Errorf("expected A^-1 * A = 1, have %s", e.String())
	}
}

func TestMulScalarsCommuteOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	a := TypedSym("A", Matrix)
	x := TypedSym("X", Matrix)
	e := Product(a, Number(3), x)
	want := Product(Number(3), a, x)
	if !e.Equal(want) {
		t.Errorf("expected the scalar to float to the front, have %s", e.String())
	}
}

func TestCommutesWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	a := TypedSym("A", Operator)
	if !Commutes(Sum(x, Number(1))) {
		t.Errorf("expected x + 1 to commute")
	}
	if Commutes(Product(x, a)) {
		t.Errorf("expected x*A not to commute")
	}
}

func TestPowSimplify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	if !Power(x, Number(0)).Equal(Number(1)) {
		t.Errorf("expected x^0 = 1")
	}
	if !Power(x, Number(1)).Equal(x) {
		t.Errorf("expected x^1 = x")
	}
	if !Power(Number(2), Number(10)).Equal(Number(1024)) {
		t.Errorf("expected 2^10 = 1024")
	}
	nested := Power(Power(x, Number(2)), Number(3))
	if !nested.Equal(Power(x, Number(6))) {
		t.Errorf("expected (x^2)^3 = x^6, have %s", nested.String())
	}
}

func TestFnSimplify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	if !ApplySin(Number(0)).Equal(Number(0)) {
		t.Errorf("expected sin(0) = 0")
	}
	if !ApplyCos(Number(0)).Equal(Number(1)) {
		t.Errorf("expected cos(0) = 1")
	}
	if !ApplySqrt(Number(9)).Equal(Number(3)) {
		t.Errorf("expected sqrt(9) = 3")
	}
	x := NewSym("x")
	if !ApplyExp(ApplyLn(x)).Equal(x) {
		t.Errorf("expected exp(ln(x)) = x")
	}
	root := ApplySqrt(Number(2))
	if _, ok := root.(*Fn); !ok {
		t.Errorf("expected sqrt(2) to stay symbolic, have %s", root.String())
	}
}

func TestDerive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	e := Sum(Power(x, Number(3)), Product(Number(2), x), Number(7))
	d := e.Derive("x").Simplify()
	want := Sum(Product(Number(3), Power(x, Number(2))), Number(2))
	if !d.Equal(want) {
		t.Errorf("expected d/dx = 3x^2 + 2, have %s", d.String())
	}
}

func TestSubstitute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	e := Sum(Power(x, Number(2)), Product(Number(-5), x), Number(6))
	at2 := e.Substitute("x", Number(2)).Simplify()
	if !IsZero(at2) {
		t.Errorf("expected x^2 - 5x + 6 to vanish at x = 2, have %s", at2.String())
	}
}

func TestSymKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	if !Scalar.Commutes() {
		t.Errorf("expected scalar symbols to commute")
	}
	for _, k := range []Kind{Matrix, Operator, Quaternion} {
		if k.Commutes() {
			t.Errorf("expected kind %s not to commute", k.String())
		}
	}
	a := TypedSym("a", Scalar)
	b := TypedSym("a", Matrix)
	if a.Equal(b) {
		t.Errorf("symbols of different kind must not be equal")
	}
}

func TestEquationResidual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := NewSym("x")
	eq := NewEquation(Product(Number(2), x), Number(4))
	res := eq.Residual().Simplify()
	want := Sum(Product(Number(2), x), Number(-4))
	if !res.Equal(want) {
		t.Errorf("expected residual 2x - 4, have %s", res.String())
	}
}
