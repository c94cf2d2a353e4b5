package core

import "math"

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FloorMod returns the floored remainder of x modulo m, always in [0, m)
// for m > 0. It works in floating point so that quantized inputs far
// beyond the int64 range do not overflow.
func FloorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		return 0
	}

	return r
}

// maxKey is 2^63, the first magnitude an int64 cannot hold.
const maxKey = 1 << 63

// Quantize maps x to an integer key at the given number of decimal digits.
// ok is false when the scaled value does not fit an int64; such inputs
// have no key.
func Quantize(x float64, digits int) (key int64, ok bool) {
	scaled := math.Round(x * math.Pow(10, float64(digits)))
	if !IsFinite(scaled) || math.Abs(scaled) >= maxKey {
		return 0, false
	}

	return int64(scaled), true
}
