package sieve

import (
	"math"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Pair is an adjacent pair of sequence values.
type Pair struct {
	First  float64 `json:"first"`
	Second float64 `json:"second"`
}

// Result is the output of [Sieve.IntegratedProcess].
type Result struct {
	Filtered          []float64
	Twins             []Pair
	DimensionEstimate float64
}

// Sieve holds the pattern table and inclusion-exclusion weights for one
// sieve level.
type Sieve struct {
	cfg   config
	level int

	patterns  []int
	isPattern []bool
	weights   []float64 // 1/p, aligned with patterns
	small     []int     // patterns <= smallPatternLimit

	divisors []int     // square-free d in [1, level]
	lambda   []float64 // μ(d)·ln(level/d), aligned with divisors
}

// New builds a Sieve for the given level. level must be >= 2.
func New(level int, opts ...Option) (*Sieve, error) {
	if level < 2 {
		return nil, core.Invalidf("sieve: level must be >= 2: %d", level)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Sieve{cfg: cfg, level: level}
	s.buildPatterns()
	s.buildWeights()

	return s, nil
}

func (s *Sieve) buildPatterns() {
	composite := make([]bool, s.level+1)
	s.isPattern = make([]bool, s.level+1)

	for i := 2; i <= s.level; i++ {
		if composite[i] {
			continue
		}
		s.patterns = append(s.patterns, i)
		s.isPattern[i] = true
		for j := i * i; j <= s.level; j += i {
			composite[j] = true
		}
	}

	s.weights = make([]float64, len(s.patterns))
	for i, p := range s.patterns {
		s.weights[i] = 1 / float64(p)
		if p <= s.cfg.smallPatternLimit {
			s.small = append(s.small, p)
		}
	}
}

func (s *Sieve) buildWeights() {
	lvl := float64(s.level)
	for d := 1; d <= s.level; d++ {
		mu := s.Mobius(d)
		if mu == 0 {
			continue
		}
		s.divisors = append(s.divisors, d)
		s.lambda = append(s.lambda, float64(mu)*math.Log(lvl/float64(d)))
	}
}

// Level returns the sieve level.
func (s *Sieve) Level() int { return s.level }

// Patterns returns a copy of the patterns in [2, Level()], ascending.
func (s *Sieve) Patterns() []int {
	out := make([]int, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// IsPattern reports whether n is a pattern. Values outside [2, Level()]
// are never patterns.
func (s *Sieve) IsPattern(n int) bool {
	return n >= 2 && n <= s.level && s.isPattern[n]
}

// Mobius returns μ(n) by trial division against the pattern table.
// It is defined for n in [1, Level()] and returns 0 elsewhere.
func (s *Sieve) Mobius(n int) int {
	if n < 1 || n > s.level {
		return 0
	}

	mu := 1
	rem := n
	for _, p := range s.patterns {
		if p > rem {
			break
		}
		if rem%p != 0 {
			continue
		}
		rem /= p
		if rem%p == 0 {
			return 0
		}
		mu = -mu
	}

	return mu
}

// Match is the quantized closeness of v to pattern d, in (0, 1].
func (s *Sieve) Match(v float64, d int) float64 {
	fd := float64(d)
	return 1 - core.FloorMod(math.Floor(v*s.cfg.resolution), fd)/fd
}

// Score returns the Selberg score Σ λ(d)·match(v, d) of v.
func (s *Sieve) Score(v float64) float64 {
	return s.score(v, make([]float64, len(s.divisors)))
}

func (s *Sieve) score(v float64, match []float64) float64 {
	q := math.Floor(v * s.cfg.resolution)
	for i, d := range s.divisors {
		fd := float64(d)
		match[i] = 1 - core.FloorMod(q, fd)/fd
	}
	return vecmath.DotProduct(s.lambda, match)
}

// SelbergFilter returns the values of seq whose score exceeds the score
// threshold, in input order.
func (s *Sieve) SelbergFilter(seq []float64) ([]float64, error) {
	if err := core.RequireFiniteSlice("sieve", seq); err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(seq))
	match := make([]float64, len(s.divisors))
	for _, v := range seq {
		if s.score(v, match) > s.cfg.scoreThreshold {
			out = append(out, v)
		}
	}

	return out, nil
}

// BrunTwinPairs scans adjacent values of seq and returns the pairs closer
// than the twin epsilon, except those where both members strongly match the
// same small pattern.
func (s *Sieve) BrunTwinPairs(seq []float64) ([]Pair, error) {
	if err := core.RequireFiniteSlice("sieve", seq); err != nil {
		return nil, err
	}

	var out []Pair
	for i := 1; i < len(seq); i++ {
		v1, v2 := seq[i-1], seq[i]
		if math.Abs(v2-v1) >= s.cfg.twinEpsilon {
			continue
		}
		if s.sharedStrongMatch(v1, v2) {
			continue
		}
		out = append(out, Pair{First: v1, Second: v2})
	}

	return out, nil
}

func (s *Sieve) sharedStrongMatch(v1, v2 float64) bool {
	for _, d := range s.small {
		if s.Match(v1, d) > s.cfg.strongMatch && s.Match(v2, d) > s.cfg.strongMatch {
			return true
		}
	}
	return false
}

// LargeSieveDimension returns the sieve dimension estimate of freqs:
//
//	min(Σ_α |S(α)|² / (L + N), √L),  S(α) = Σ_p e^{2πiαp}/p
//
// where the inner sum runs over the patterns and N = len(freqs).
func (s *Sieve) LargeSieveDimension(freqs []float64) (float64, error) {
	if err := core.RequireFiniteSlice("sieve", freqs); err != nil {
		return 0, err
	}
	if len(freqs) == 0 {
		return 0, nil
	}

	re := make([]float64, len(freqs))
	im := make([]float64, len(freqs))
	cosBuf := make([]float64, len(s.patterns))
	sinBuf := make([]float64, len(s.patterns))

	for i, alpha := range freqs {
		re[i], im[i] = s.weightSum(alpha, cosBuf, sinBuf)
	}

	power := make([]float64, len(freqs))
	vecmath.Power(power, re, im)

	return s.dimension(power), nil
}

// weightSum returns the real and imaginary parts of S(alpha).
func (s *Sieve) weightSum(alpha float64, cosBuf, sinBuf []float64) (re, im float64) {
	_, frac := math.Modf(alpha)
	step := 2 * math.Pi * frac
	for j, p := range s.patterns {
		sinBuf[j], cosBuf[j] = math.Sincos(step * float64(p))
	}
	return vecmath.DotProduct(s.weights, cosBuf), vecmath.DotProduct(s.weights, sinBuf)
}

func (s *Sieve) dimension(power []float64) float64 {
	sum := 0.0
	for _, v := range power {
		sum += v
	}
	return math.Min(sum/float64(s.level+len(power)), s.DimensionBound())
}

// DimensionBound returns √Level(), the cap of the dimension estimate.
func (s *Sieve) DimensionBound() float64 {
	return math.Sqrt(float64(s.level))
}

// IntegratedProcess filters input, detects twins on the filtered values and
// estimates the sieve dimension of the filtered values.
func (s *Sieve) IntegratedProcess(input []float64) (Result, error) {
	filtered, err := s.SelbergFilter(input)
	if err != nil {
		return Result{}, err
	}

	twins, err := s.BrunTwinPairs(filtered)
	if err != nil {
		return Result{}, err
	}

	dim, err := s.LargeSieveDimension(filtered)
	if err != nil {
		return Result{}, err
	}

	return Result{Filtered: filtered, Twins: twins, DimensionEstimate: dim}, nil
}
