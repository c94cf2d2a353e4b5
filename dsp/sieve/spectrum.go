package sieve

import (
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-arcsieve/dsp/core"
)

// WeightSpectrum returns |S(k/n)|² for k in [0, n).
//
// The pattern weights are folded onto an n-point comb (pattern p lands in
// bin p mod n) and transformed with a single FFT. n must be a power of two.
func (s *Sieve) WeightSpectrum(n int) ([]float64, error) {
	if n < 2 || bits.OnesCount(uint(n)) != 1 {
		return nil, core.Invalidf("sieve: spectrum size must be a power of two >= 2: %d", n)
	}

	comb := make([]complex128, n)
	for i, p := range s.patterns {
		comb[p%n] += complex(s.weights[i], 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}

	bins := make([]complex128, n)
	if err := plan.Forward(bins, comb); err != nil {
		return nil, err
	}

	// S uses e^{+2πi}, the forward transform e^{-2πi}. The weights are real,
	// so the two differ by conjugation only and the powers agree.
	out := make([]float64, n)
	for k, c := range bins {
		out[k] = real(c)*real(c) + imag(c)*imag(c)
	}

	return out, nil
}

// GridDimension returns the sieve dimension estimate over the n grid
// frequencies k/n, computed through [Sieve.WeightSpectrum].
func (s *Sieve) GridDimension(n int) (float64, error) {
	power, err := s.WeightSpectrum(n)
	if err != nil {
		return 0, err
	}
	return s.dimension(power), nil
}
