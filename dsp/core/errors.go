package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument reports a caller bug: a non-finite input, a
	// non-positive loop bound or an incomplete coefficient table.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNumericDegeneracy reports an evaluation too close to a pole.
	// It is only surfaced by components configured to refuse saturation.
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
)

// Invalidf returns an error wrapping [ErrInvalidArgument].
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// RequirePositive rejects bounds <= 0.
func RequirePositive(prefix, name string, v int) error {
	if v <= 0 {
		return Invalidf("%s: %s must be > 0: %d", prefix, name, v)
	}
	return nil
}

// RequirePositiveFloat rejects values that are not finite and > 0.
func RequirePositiveFloat(prefix, name string, v float64) error {
	if !IsFinite(v) || v <= 0 {
		return Invalidf("%s: %s must be finite and > 0: %v", prefix, name, v)
	}
	return nil
}

// RequireFinite rejects NaN and ±Inf.
func RequireFinite(prefix, name string, v float64) error {
	if !IsFinite(v) {
		return Invalidf("%s: %s must be finite: %v", prefix, name, v)
	}
	return nil
}

// RequireFiniteSlice rejects a slice holding any NaN or ±Inf and names the
// first offending index.
func RequireFiniteSlice(prefix string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Invalidf("%s: value at index %d must be finite: %v", prefix, i, v)
		}
	}
	return nil
}
