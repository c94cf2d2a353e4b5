//go:build !fastmath

package fastmath

import "math"

// Exp computes e^x using standard library math.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Log computes ln(x) using standard library math.
func Log(x float64) float64 {
	return math.Log(x)
}

// Accurate reports whether the kernels are the exact library versions.
const Accurate = true
