// Package zeta evaluates a pattern-weighted zeta-like series
//
//	Z(s) = Σ_{n=1}^{M} w(n) / n^s,  w(n) = 1 if n is a pattern, 1/ln(n+1) otherwise
//
// with two explicit branches. Inside a neighbourhood of the singular
// abscissa a the series is replaced by its Laurent expansion
//
//	c₋₁/(s−a) + Σ_{k≥0} c_k (s−a)^k
//
// and direct summation is used everywhere else. Results are cached by
// quantized s.
//
// # Saturation policy
//
// When |s−a| < [PoleGuard] the principal term is evaluated at
// δ = ±PoleGuard (the sign of s−a, positive when s == a exactly), which
// clamps it to c₋₁·1e10 in magnitude. The outcome is finite, deterministic
// and flagged as saturated. Evaluators built with [WithStrictPole] return
// [core.ErrNumericDegeneracy] instead.
package zeta
