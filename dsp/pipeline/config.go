package pipeline

import (
	"github.com/cwbudde/algo-arcsieve/dsp/core"
	"github.com/cwbudde/algo-arcsieve/dsp/zeta"
)

// Config collects the tunables of every stage. The zero value is not
// usable; start from [DefaultConfig].
type Config struct {
	SieveLevel     int     `toml:"sieve_level" json:"sieve_level"`
	Resolution     float64 `toml:"resolution" json:"resolution"`
	ScoreThreshold float64 `toml:"score_threshold" json:"score_threshold"`
	TwinEpsilon    float64 `toml:"twin_epsilon" json:"twin_epsilon"`
	StrongMatch    float64 `toml:"strong_match" json:"strong_match"`
	SmallPatterns  int     `toml:"small_pattern_limit" json:"small_pattern_limit"`

	MaxDenominator int     `toml:"max_denominator" json:"max_denominator"`
	MajorThreshold float64 `toml:"major_threshold" json:"major_threshold"`
	ArcTerms       int     `toml:"arc_terms" json:"arc_terms"`

	Abscissa     float64   `toml:"abscissa" json:"abscissa"`
	Radius       float64   `toml:"radius" json:"radius"`
	MaxTerms     int       `toml:"max_terms" json:"max_terms"`
	CacheSize    int       `toml:"cache_size" json:"cache_size"`
	Quantization int       `toml:"quantization" json:"quantization"`
	StrictPole   bool      `toml:"strict_pole" json:"strict_pole"`
	Principal    float64   `toml:"principal" json:"principal"` // order -1 coefficient
	Regular      []float64 `toml:"regular" json:"regular"`     // orders 0, 1, ...

	GapThreshold float64 `toml:"gap_threshold" json:"gap_threshold"`
}

// DefaultConfig returns the documented defaults with the zeta expansion at 1.
func DefaultConfig() Config {
	l := zeta.DefaultLaurent()
	regular := make([]float64, l.MaxOrder()+1)
	for k := range regular {
		regular[k] = l.Coefficient(k)
	}

	return Config{
		SieveLevel:     100,
		Resolution:     1000,
		ScoreThreshold: 0.5,
		TwinEpsilon:    0.01,
		StrongMatch:    0.8,
		SmallPatterns:  10,
		MaxDenominator: 100,
		MajorThreshold: 0.1,
		ArcTerms:       1000,
		Abscissa:       1,
		Radius:         0.1,
		MaxTerms:       1000,
		CacheSize:      zeta.DefaultCacheSize,
		Quantization:   4,
		Principal:      l.Coefficient(-1),
		Regular:        regular,
		GapThreshold:   0.1,
	}
}

// Laurent returns the expansion described by Principal and Regular.
func (c Config) Laurent() (zeta.Laurent, error) {
	if len(c.Regular) == 0 {
		return zeta.Laurent{}, core.Invalidf("pipeline: regular coefficients must include order 0")
	}

	coeffs := make(map[int]float64, len(c.Regular)+1)
	coeffs[-1] = c.Principal
	for k, v := range c.Regular {
		coeffs[k] = v
	}
	return zeta.NewLaurent(coeffs)
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	_, err := New(c)
	return err
}
