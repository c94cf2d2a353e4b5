package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates uniform values in [-amplitude, amplitude]
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// IntegerRamp returns start, start+1, ... as floats.
func IntegerRamp(start, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(start + i)
	}
	return out
}

// GoldenSequence returns the fractional parts of k*phi for k = 1..length.
// phi is badly approximable, so these values sit away from low-denominator
// rationals.
func GoldenSequence(length int) []float64 {
	phi := (1 + math.Sqrt(5)) / 2
	out := make([]float64, length)
	for i := range out {
		_, frac := math.Modf(float64(i+1) * phi)
		out[i] = frac
	}
	return out
}

// DC generates a constant-valued sequence.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
