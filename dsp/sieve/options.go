package sieve

import "github.com/cwbudde/algo-arcsieve/dsp/core"

const (
	defaultResolution        = 1000
	defaultScoreThreshold    = 0.5
	defaultTwinEpsilon       = 0.01
	defaultStrongMatch       = 0.8
	defaultSmallPatternLimit = 10
)

type config struct {
	resolution        float64
	scoreThreshold    float64
	twinEpsilon       float64
	strongMatch       float64
	smallPatternLimit int
}

func defaultConfig() config {
	return config{
		resolution:        defaultResolution,
		scoreThreshold:    defaultScoreThreshold,
		twinEpsilon:       defaultTwinEpsilon,
		strongMatch:       defaultStrongMatch,
		smallPatternLimit: defaultSmallPatternLimit,
	}
}

func (c config) validate() error {
	if err := core.RequirePositiveFloat("sieve", "resolution", c.resolution); err != nil {
		return err
	}
	if err := core.RequireFinite("sieve", "score threshold", c.scoreThreshold); err != nil {
		return err
	}
	if err := core.RequirePositiveFloat("sieve", "twin epsilon", c.twinEpsilon); err != nil {
		return err
	}
	if err := core.RequireFinite("sieve", "strong match", c.strongMatch); err != nil {
		return err
	}
	return core.RequirePositive("sieve", "small pattern limit", c.smallPatternLimit)
}

// Option configures a [Sieve].
type Option func(*config)

// WithResolution sets the quantization scale used by the match proxy.
func WithResolution(v float64) Option {
	return func(cfg *config) { cfg.resolution = v }
}

// WithScoreThreshold sets the Selberg score a value must exceed to be kept.
func WithScoreThreshold(v float64) Option {
	return func(cfg *config) { cfg.scoreThreshold = v }
}

// WithTwinEpsilon sets the maximum spacing of a twin pair.
func WithTwinEpsilon(v float64) Option {
	return func(cfg *config) { cfg.twinEpsilon = v }
}

// WithStrongMatch sets the match level above which a value is considered
// explained by a pattern.
func WithStrongMatch(v float64) Option {
	return func(cfg *config) { cfg.strongMatch = v }
}

// WithSmallPatternLimit sets the largest pattern checked by the twin
// exclusion rule.
func WithSmallPatternLimit(n int) Option {
	return func(cfg *config) { cfg.smallPatternLimit = n }
}
