package rational

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
	"github.com/cwbudde/algo-arcsieve/internal/testutil"
)

func TestDistanceIntegersAreZero(t *testing.T) {
	for _, k := range []float64{0, 1, -4, 17, 1e6, 1e300} {
		d, err := Distance(k, 10)
		if err != nil {
			t.Fatalf("Distance(%v): %v", k, err)
		}
		if d != 0 {
			t.Fatalf("Distance(%v) = %v, want 0", k, d)
		}
	}
}

func TestDistanceNonNegative(t *testing.T) {
	for _, x := range testutil.DeterministicNoise(7, 50, 200) {
		d, err := Distance(x, 25)
		if err != nil {
			t.Fatalf("Distance(%v): %v", x, err)
		}
		if d < 0 || d > 0.5 {
			t.Fatalf("Distance(%v) = %v, want in [0, 0.5]", x, d)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		qMax int
		want float64
	}{
		{name: "half q1", x: 0.5, qMax: 1, want: 0.5},
		{name: "half q2", x: 0.5, qMax: 2, want: 0},
		{name: "third q2", x: 1.0 / 3, qMax: 2, want: 1.0 / 6},
		{name: "third q3", x: 1.0 / 3, qMax: 3, want: 0},
		{name: "negative", x: -0.25, qMax: 4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distance(tt.x, tt.qMax)
			if err != nil {
				t.Fatalf("Distance: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-15 {
				t.Fatalf("Distance(%v, %d) = %v, want %v", tt.x, tt.qMax, got, tt.want)
			}
		})
	}
}

func TestDistanceMonotoneInBound(t *testing.T) {
	x := math.Sqrt2
	prev := math.Inf(1)
	for q := 1; q <= 64; q++ {
		d, _ := Distance(x, q)
		if d > prev {
			t.Fatalf("Distance(sqrt2, %d) = %v grew from %v", q, d, prev)
		}
		prev = d
	}
}

func TestInvalidArguments(t *testing.T) {
	if _, err := Distance(1.5, 0); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("qMax=0: err = %v, want ErrInvalidArgument", err)
	}
	if _, err := Nearest(math.NaN(), 10); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("NaN: err = %v, want ErrInvalidArgument", err)
	}
	if _, err := Convergents(math.Inf(-1), 10); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("-Inf: err = %v, want ErrInvalidArgument", err)
	}
}

func TestNearestSmallestDenominator(t *testing.T) {
	a, err := Nearest(0.75, 100)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if a.P != 3 || a.Q != 4 || a.Distance != 0 {
		t.Fatalf("Nearest(0.75) = %+v, want 3/4", a)
	}
}

func TestConvergentsPi(t *testing.T) {
	cs, err := Convergents(math.Pi, 1000)
	if err != nil {
		t.Fatalf("Convergents: %v", err)
	}

	want := [][2]float64{{3, 1}, {22, 7}, {333, 106}, {355, 113}}
	if len(cs) != len(want) {
		t.Fatalf("len = %d, want %d: %+v", len(cs), len(want), cs)
	}
	for i, w := range want {
		if cs[i].P != w[0] || float64(cs[i].Q) != w[1] {
			t.Fatalf("convergent %d = %v/%d, want %v/%v", i, cs[i].P, cs[i].Q, w[0], w[1])
		}
	}

	for i := 1; i < len(cs); i++ {
		if cs[i].Distance >= cs[i-1].Distance {
			t.Fatalf("convergent %d did not improve: %v >= %v", i, cs[i].Distance, cs[i-1].Distance)
		}
	}
}

func TestConvergentsAgreeWithNearest(t *testing.T) {
	for _, x := range []float64{math.E, math.Sqrt2, 0.1234} {
		cs, err := Convergents(x, 500)
		if err != nil {
			t.Fatalf("Convergents(%v): %v", x, err)
		}
		d, _ := Distance(x, 500)
		last := cs[len(cs)-1]
		if d > last.Distance+1e-15 {
			t.Fatalf("Distance(%v) = %v exceeds last convergent distance %v", x, d, last.Distance)
		}
	}
}

func TestConvergentsRational(t *testing.T) {
	cs, err := Convergents(0.25, 100)
	if err != nil {
		t.Fatalf("Convergents: %v", err)
	}
	last := cs[len(cs)-1]
	if last.P != 1 || last.Q != 4 || last.Distance != 0 {
		t.Fatalf("last convergent = %+v, want 1/4", last)
	}
}
