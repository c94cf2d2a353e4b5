// Package sieve filters real sequences with sieve-style weights.
//
// A [Sieve] is built once for a sieve level L. Construction runs the sieve
// of Eratosthenes to find the patterns (primes) in [2, L] and precomputes
// Selberg weights λ(d) = μ(d)·ln(L/d) for every square-free d in [1, L].
// The sieve is read-only afterwards and may be shared between goroutines.
//
// The predicates used here are quantized heuristics, not number-theoretic
// ones. A real value v is matched against d through its residue
//
//	match(v, d) = 1 - (⌊v·resolution⌋ mod d) / d
//
// so that 1 means "v sits on a multiple of d at this resolution".
//
// Four operations are provided:
//
//   - [Sieve.SelbergFilter] keeps values whose weighted match score exceeds
//     a threshold. It always returns an order-preserving subsequence of its
//     input; applying it twice is not guaranteed to be idempotent.
//   - [Sieve.BrunTwinPairs] reports closely spaced adjacent pairs that are
//     not both strongly matched by the same small pattern.
//   - [Sieve.LargeSieveDimension] is the sieve dimension estimate: the
//     bounded large-sieve sum Σ|S(α)|² normalised by L+N. It is an aggregate
//     statistic, not a fractal dimension.
//   - [Sieve.IntegratedProcess] chains the three.
//
// [Sieve.WeightSpectrum] evaluates |S(k/n)|² on a power-of-two grid with an
// FFT instead of direct sums.
package sieve
