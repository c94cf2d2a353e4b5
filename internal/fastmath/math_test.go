package fastmath

import (
	"math"
	"testing"
)

func TestKernels(t *testing.T) {
	tol := 1e-15
	if !Accurate {
		tol = 1e-2
	}

	for _, x := range []float64{0.5, 1, 2, 10, 1000} {
		if got, want := Log(x), math.Log(x); math.Abs(got-want) > tol*math.Max(1, math.Abs(want)) {
			t.Fatalf("Log(%v) = %v, want %v", x, got, want)
		}
	}

	for _, x := range []float64{-5, -1, 0, 1, 3} {
		if got, want := Exp(x), math.Exp(x); math.Abs(got-want) > tol*math.Max(1, want) {
			t.Fatalf("Exp(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, x := range []float64{0.1, 7.25, 123.5} {
		e1, e2 := Exp(-x), Exp(-x)
		l1, l2 := Log(x), Log(x)
		if e1 != e2 || l1 != l2 {
			t.Fatalf("kernels not deterministic at %v", x)
		}
	}
}
