package arc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
	"github.com/cwbudde/algo-arcsieve/dsp/rational"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultMaxDenominator = 100
	defaultThreshold      = 0.1
	defaultTerms          = 1000
)

// Kind tags a classification as major or minor arc.
type Kind uint8

const (
	Major Kind = iota
	Minor
)

func (k Kind) String() string {
	switch k {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Classification is the result of classifying one value.
type Classification struct {
	Kind         Kind
	Contribution float64
	Distance     float64 // rational distance that decided Kind
}

// IsMajor reports whether c is a major-arc classification.
func (c Classification) IsMajor() bool { return c.Kind == Major }

type config struct {
	maxDenominator int
	threshold      float64
	terms          int
}

// Option configures a [Decomposer].
type Option func(*config)

// WithMaxDenominator sets the largest denominator tried by the rational
// approximation.
func WithMaxDenominator(q int) Option {
	return func(cfg *config) { cfg.maxDenominator = q }
}

// WithMajorThreshold sets the rational distance below which a value is
// major-arc.
func WithMajorThreshold(v float64) Option {
	return func(cfg *config) { cfg.threshold = v }
}

// WithTerms sets the truncation length of the minor-arc exponential sum.
func WithTerms(n int) Option {
	return func(cfg *config) { cfg.terms = n }
}

// Decomposer classifies values into major and minor arcs.
// It holds no mutable state and is safe for concurrent use.
type Decomposer struct {
	cfg config
}

// New returns a Decomposer. Every bound must be positive and finite.
func New(opts ...Option) (*Decomposer, error) {
	cfg := config{
		maxDenominator: defaultMaxDenominator,
		threshold:      defaultThreshold,
		terms:          defaultTerms,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := core.RequirePositive("arc", "max denominator", cfg.maxDenominator); err != nil {
		return nil, err
	}
	if err := core.RequirePositiveFloat("arc", "major threshold", cfg.threshold); err != nil {
		return nil, err
	}
	if err := core.RequirePositive("arc", "terms", cfg.terms); err != nil {
		return nil, err
	}

	return &Decomposer{cfg: cfg}, nil
}

// MaxDenominator returns the configured denominator bound.
func (d *Decomposer) MaxDenominator() int { return d.cfg.maxDenominator }

// Threshold returns the configured major-arc threshold.
func (d *Decomposer) Threshold() float64 { return d.cfg.threshold }

// Terms returns the configured exponential-sum length.
func (d *Decomposer) Terms() int { return d.cfg.terms }

// Classify returns the arc classification of x.
func (d *Decomposer) Classify(x float64) (Classification, error) {
	if err := core.RequireFinite("arc", "x", x); err != nil {
		return Classification{}, err
	}

	dist, err := rational.Distance(x, d.cfg.maxDenominator)
	if err != nil {
		return Classification{}, err
	}

	if dist < d.cfg.threshold {
		return Classification{Kind: Major, Contribution: MajorWeight(x), Distance: dist}, nil
	}

	re, im := ExponentialSum(x, d.cfg.terms)
	return Classification{Kind: Minor, Contribution: math.Hypot(re, im), Distance: dist}, nil
}

// ClassifyBatch classifies every value of xs, preserving order. Minor-arc
// magnitudes are computed in one vectorized pass.
func (d *Decomposer) ClassifyBatch(xs []float64) ([]Classification, error) {
	if err := core.RequireFiniteSlice("arc", xs); err != nil {
		return nil, err
	}

	out := make([]Classification, len(xs))
	minorIdx := make([]int, 0, len(xs))
	var re, im []float64

	for i, x := range xs {
		dist, err := rational.Distance(x, d.cfg.maxDenominator)
		if err != nil {
			return nil, err
		}

		if dist < d.cfg.threshold {
			out[i] = Classification{Kind: Major, Contribution: MajorWeight(x), Distance: dist}
			continue
		}

		r, m := ExponentialSum(x, d.cfg.terms)
		re = append(re, r)
		im = append(im, m)
		minorIdx = append(minorIdx, i)
		out[i] = Classification{Kind: Minor, Distance: dist}
	}

	if len(minorIdx) > 0 {
		mag := make([]float64, len(minorIdx))
		vecmath.Magnitude(mag, re, im)
		for j, i := range minorIdx {
			out[i].Contribution = mag[j]
		}
	}

	return out, nil
}

// MajorWeight is the smooth decay 1/(1+x²) assigned to major-arc values.
func MajorWeight(x float64) float64 {
	return 1 / (1 + x*x)
}

// ExponentialSum returns the real and imaginary parts of
// Σ_{n=1}^{terms} e^{2πixn}/n.
func ExponentialSum(x float64, terms int) (re, im float64) {
	// Reduce the phase step so that large x keeps full precision in the
	// per-term angles.
	_, frac := math.Modf(x)
	step := 2 * math.Pi * frac

	for n := 1; n <= terms; n++ {
		s, c := math.Sincos(step * float64(n))
		inv := 1 / float64(n)
		re += inv * c
		im += inv * s
	}

	return re, im
}
