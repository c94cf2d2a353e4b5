package core

import (
	"errors"
	"math"
	"testing"
)

func TestRequirePositive(t *testing.T) {
	if err := RequirePositive("x", "bound", 1); err != nil {
		t.Fatalf("RequirePositive(1) = %v, want nil", err)
	}

	for _, v := range []int{0, -3} {
		err := RequirePositive("x", "bound", v)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("RequirePositive(%d) = %v, want ErrInvalidArgument", v, err)
		}
	}
}

func TestRequirePositiveFloat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		ok    bool
	}{
		{name: "positive", value: 0.1, ok: true},
		{name: "zero", value: 0},
		{name: "negative", value: -1},
		{name: "nan", value: math.NaN()},
		{name: "inf", value: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequirePositiveFloat("x", "radius", tt.value)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestRequireFiniteSlice(t *testing.T) {
	if err := RequireFiniteSlice("x", []float64{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := RequireFiniteSlice("x", []float64{1, math.NaN()})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if err.Error() != "x: value at index 1 must be finite: NaN: invalid argument" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
