//go:build fastmath

package fastmath

import "github.com/meko-christian/algo-approx"

// Exp computes e^x using fast approximation.
func Exp(x float64) float64 {
	return approx.FastExp(x)
}

// Log computes ln(x) using fast approximation.
func Log(x float64) float64 {
	return approx.FastLog(x)
}

// Accurate reports whether the kernels are the exact library versions.
const Accurate = false
