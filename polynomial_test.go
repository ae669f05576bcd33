package solveq

import (
	"math/big"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/symgo/solveq/expr"
)

func TestSolveCubicAllRationalRoots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := expr.NewSym("x")
	// x^3 - 6x^2 + 11x - 6 = (x-1)(x-2)(x-3)
	lhs := expr.Sum(
		expr.Power(x, expr.Number(3)),
		expr.Product(expr.Number(-6), expr.Power(x, expr.Number(2))),
		expr.Product(expr.Number(11), x),
		expr.Number(-6),
	)
	sol, tr, err := New().Solve(expr.NewEquation(lhs, expr.Number(0)), x)
	if err != nil {
		t.Fatal(err)
	}
	logTrace(t, tr)
	if sol.Kind() != MultipleSolutions {
		t.Fatalf("expected all three roots, have %s", sol.Kind().String())
	}
	expectRootSet(t, sol, expr.Number(1), expr.Number(2), expr.Number(3))
}

func TestSolveCubicPartialRoots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := expr.NewSym("x")
	// x^3 - 1 = (x-1)(x^2+x+1); the quadratic factor has no rational root, so
	// the result is explicitly partial, never a silently truncated "multiple"
	lhs := expr.Sum(expr.Power(x, expr.Number(3)), expr.Number(-1))
	sol, tr, err := New().Solve(expr.NewEquation(lhs, expr.Number(0)), x)
	if err != nil {
		t.Fatal(err)
	}
	logTrace(t, tr)
	if sol.Kind() != PartialSolutions {
		t.Fatalf("expected a partial solution, have %s", sol.Kind().String())
	}
	expectRootSet(t, sol, expr.Number(1))
}

func TestSolveCubicNoRationalRoots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := expr.NewSym("x")
	// x^3 - 2 = 0 has only the irrational root 2^(1/3)
	lhs := expr.Sum(expr.Power(x, expr.Number(3)), expr.Number(-2))
	sol, tr, err := New().Solve(expr.NewEquation(lhs, expr.Number(0)), x)
	if err != nil {
		t.Fatal(err)
	}
	logTrace(t, tr)
	if sol.Kind() != NoSolutionKind {
		t.Fatalf("expected the rational search to come up empty, have %s", sol.Kind().String())
	}
	steps := tr.Steps()
	if steps[len(steps)-1].Title != "limitation" {
		t.Errorf("expected the trace to name the limitation, last step is %q",
			steps[len(steps)-1].Title)
	}
}

func TestSolveQuarticWithMultiplicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := expr.NewSym("x")
	// x^4 - 2x^2 + 1 = (x-1)^2 (x+1)^2; distinct roots are 1 and -1
	lhs := expr.Sum(
		expr.Power(x, expr.Number(4)),
		expr.Product(expr.Number(-2), expr.Power(x, expr.Number(2))),
		expr.Number(1),
	)
	sol, tr, err := New().Solve(expr.NewEquation(lhs, expr.Number(0)), x)
	if err != nil {
		t.Fatal(err)
	}
	logTrace(t, tr)
	if sol.Kind() != MultipleSolutions {
		t.Fatalf("expected multiple solutions, have %s", sol.Kind().String())
	}
	expectRootSet(t, sol, expr.Number(1), expr.Number(-1))
}

func TestSolveCubicFractionalRoots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := expr.NewSym("x")
	// 2x^3 - 3x^2 + x = x(2x-1)(x-1), roots 0, 1/2, 1
	lhs := expr.Sum(
		expr.Product(expr.Number(2), expr.Power(x, expr.Number(3))),
		expr.Product(expr.Number(-3), expr.Power(x, expr.Number(2))),
		x,
	)
	sol, tr, err := New().Solve(expr.NewEquation(lhs, expr.Number(0)), x)
	if err != nil {
		t.Fatal(err)
	}
	logTrace(t, tr)
	if sol.Kind() != MultipleSolutions {
		t.Fatalf("expected three rational roots, have %s", sol.Kind().String())
	}
	expectRootSet(t, sol, expr.Number(0), expr.Rational(1, 2), expr.Number(1))
}

func TestSolveCubicCandidateBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := expr.NewSym("x")
	// x^3 - 2^41*x^2 = x^2*(x - 2^41); the huge root is beyond the divisor
	// enumeration bound, so only x = 0 is found and the root set must be
	// reported as incomplete, not as a finished "multiple"
	lhs := expr.Sum(
		expr.Power(x, expr.Number(3)),
		expr.Product(expr.Number(-(1<<41)), expr.Power(x, expr.Number(2))),
	)
	sol, tr, err := New().Solve(expr.NewEquation(lhs, expr.Number(0)), x)
	if err != nil {
		t.Fatal(err)
	}
	logTrace(t, tr)
	if sol.Kind() != PartialSolutions {
		t.Fatalf("expected a partial solution, have %s", sol.Kind().String())
	}
	expectRootSet(t, sol, expr.Number(0))
}

func TestSolveCubicCoefficientTooLarge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	x := expr.NewSym("x")
	coeffs := map[int]expr.Expr{
		3: expr.Number(1),
		0: expr.Number(1<<41 + 1),
	}
	tr := &Trace{}
	sol := polynomialSolver{}.solve(coeffs, 3, x, tr)
	logTrace(t, tr)
	if sol.Kind() != NoSolutionKind {
		t.Fatalf("expected no solution, have %s", sol.Kind().String())
	}
	steps := tr.Steps()
	last := steps[len(steps)-1]
	if last.Title != "limitation" {
		t.Errorf("expected the trace to name the limitation, last step is %q", last.Title)
	}
	if !strings.Contains(last.Detail, "too large") {
		t.Errorf("expected the limitation to name the coefficient bound, have %q", last.Detail)
	}
}

func TestDivisors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "solveq")
	defer teardown()

	ds := divisors(big.NewInt(12))
	want := []int64{1, 2, 3, 4, 6, 12}
	if len(ds) != len(want) {
		t.Fatalf("expected %d divisors of 12, have %d", len(want), len(ds))
	}
	for i, w := range want {
		if ds[i].Int64() != w {
			t.Errorf("divisor %d: expected %d, have %d", i, w, ds[i].Int64())
		}
	}
}
