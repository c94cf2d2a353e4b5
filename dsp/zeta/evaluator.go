package zeta

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
	"github.com/cwbudde/algo-arcsieve/internal/fastmath"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultAbscissa     = 1.0
	defaultRadius       = 0.1
	defaultMaxTerms     = 1000
	defaultQuantization = 4
	maxQuantization     = 15
)

// PatternSet tells the direct summation which terms carry full weight.
// A sieve.Sieve satisfies it.
type PatternSet interface {
	IsPattern(n int) bool
}

// Branch names the evaluation strategy used for one input.
type Branch uint8

const (
	BranchDirect Branch = iota
	BranchLaurent
)

func (b Branch) String() string {
	switch b {
	case BranchDirect:
		return "direct"
	case BranchLaurent:
		return "laurent"
	default:
		return fmt.Sprintf("Branch(%d)", uint8(b))
	}
}

// Evaluation is one evaluated point.
type Evaluation struct {
	S         float64
	Value     float64
	Branch    Branch
	Saturated bool // the principal term hit the pole guard
	Cached    bool // served from the cache
}

type config struct {
	abscissa     float64
	radius       float64
	maxTerms     int
	cacheSize    int
	quantization int
	strictPole   bool
}

// Option configures an [Evaluator].
type Option func(*config)

// WithAbscissa sets the location of the singularity.
func WithAbscissa(a float64) Option {
	return func(cfg *config) { cfg.abscissa = a }
}

// WithRadius sets the neighbourhood in which the Laurent branch is used.
func WithRadius(r float64) Option {
	return func(cfg *config) { cfg.radius = r }
}

// WithMaxTerms sets the number of terms of the direct summation.
func WithMaxTerms(n int) Option {
	return func(cfg *config) { cfg.maxTerms = n }
}

// WithCacheSize sets the evaluation cache capacity.
func WithCacheSize(n int) Option {
	return func(cfg *config) { cfg.cacheSize = n }
}

// WithQuantization sets the number of decimal digits of s used as cache key.
func WithQuantization(digits int) Option {
	return func(cfg *config) { cfg.quantization = digits }
}

// WithStrictPole makes evaluations inside the pole guard fail with
// [core.ErrNumericDegeneracy] instead of saturating.
func WithStrictPole() Option {
	return func(cfg *config) { cfg.strictPole = true }
}

// Evaluator evaluates the series. Coefficient and weight tables are fixed
// at construction; the cache is the only mutable state and is synchronized,
// so an Evaluator is safe for concurrent use.
type Evaluator struct {
	cfg     config
	laurent Laurent
	cache   *Cache

	logs    []float64 // ln n, n = 1..maxTerms
	weights []float64 // w(n)

	scratch sync.Pool
}

// New returns an Evaluator. The expansion must come from [NewLaurent] or
// [DefaultLaurent]. patterns may be nil, in which case every term is
// down-weighted.
func New(l Laurent, patterns PatternSet, opts ...Option) (*Evaluator, error) {
	cfg := config{
		abscissa:     defaultAbscissa,
		radius:       defaultRadius,
		maxTerms:     defaultMaxTerms,
		cacheSize:    DefaultCacheSize,
		quantization: defaultQuantization,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !l.Valid() {
		return nil, core.Invalidf("zeta: laurent expansion needs orders -1 and 0")
	}
	if err := core.RequireFinite("zeta", "abscissa", cfg.abscissa); err != nil {
		return nil, err
	}
	if err := core.RequirePositiveFloat("zeta", "radius", cfg.radius); err != nil {
		return nil, err
	}
	if err := core.RequirePositive("zeta", "max terms", cfg.maxTerms); err != nil {
		return nil, err
	}
	if cfg.quantization < 0 || cfg.quantization > maxQuantization {
		return nil, core.Invalidf("zeta: quantization must be in [0,%d]: %d", maxQuantization, cfg.quantization)
	}

	cache, err := NewCache(cfg.cacheSize)
	if err != nil {
		return nil, err
	}

	e := &Evaluator{cfg: cfg, laurent: l, cache: cache}
	e.buildTables(patterns)
	e.scratch.New = func() any {
		buf := make([]float64, cfg.maxTerms)
		return &buf
	}

	return e, nil
}

func (e *Evaluator) buildTables(patterns PatternSet) {
	e.logs = make([]float64, e.cfg.maxTerms)
	e.weights = make([]float64, e.cfg.maxTerms)
	for i := range e.logs {
		n := i + 1
		e.logs[i] = fastmath.Log(float64(n))
		if patterns != nil && patterns.IsPattern(n) {
			e.weights[i] = 1
		} else {
			e.weights[i] = 1 / fastmath.Log(float64(n+1))
		}
	}
}

// Abscissa returns the singular abscissa.
func (e *Evaluator) Abscissa() float64 { return e.cfg.abscissa }

// Radius returns the Laurent neighbourhood radius.
func (e *Evaluator) Radius() float64 { return e.cfg.radius }

// Laurent returns the expansion used near the abscissa.
func (e *Evaluator) Laurent() Laurent { return e.laurent }

// Evaluate returns Z(s).
func (e *Evaluator) Evaluate(s float64) (float64, error) {
	ev, err := e.EvaluateDetailed(s)
	return ev.Value, err
}

// EvaluateDetailed returns Z(s) along with the branch taken.
func (e *Evaluator) EvaluateDetailed(s float64) (Evaluation, error) {
	if err := core.RequireFinite("zeta", "s", s); err != nil {
		return Evaluation{}, err
	}

	key, keyed := core.Quantize(s, e.cfg.quantization)
	if keyed {
		if ev, ok := e.cache.Get(key); ok {
			ev.S = s
			ev.Cached = true
			return ev, nil
		}
	}

	var ev Evaluation
	delta := s - e.cfg.abscissa
	if math.Abs(delta) < e.cfg.radius {
		v, saturated := e.laurent.Eval(delta)
		if saturated && e.cfg.strictPole {
			return Evaluation{}, fmt.Errorf("zeta: s=%v within %v of the pole at %v: %w",
				s, PoleGuard, e.cfg.abscissa, core.ErrNumericDegeneracy)
		}
		ev = Evaluation{S: s, Value: v, Branch: BranchLaurent, Saturated: saturated}
	} else {
		ev = Evaluation{S: s, Value: e.direct(s), Branch: BranchDirect}
	}

	// Inputs too large to quantize bypass the cache.
	if keyed {
		e.cache.Add(key, ev)
	}
	return ev, nil
}

// direct returns Σ w(n)·n^{-s}.
func (e *Evaluator) direct(s float64) float64 {
	bufp := e.scratch.Get().(*[]float64)
	powers := *bufp
	for i, ln := range e.logs {
		powers[i] = fastmath.Exp(-s * ln)
	}
	sum := vecmath.DotProduct(e.weights, powers)
	e.scratch.Put(bufp)
	return sum
}

// Richness returns regular/(regular+singular) for the Laurent parts at s,
// the share of the expansion carried by its smooth part. It is 1 exactly at
// the abscissa or when both parts vanish. A regular part that overflows far
// from the abscissa also yields 1.
func (e *Evaluator) Richness(s float64) (float64, error) {
	if err := core.RequireFinite("zeta", "s", s); err != nil {
		return 0, err
	}

	delta := s - e.cfg.abscissa
	if delta == 0 {
		return 1, nil
	}

	regular := math.Abs(e.laurent.Regular(delta))
	if math.IsInf(regular, 1) {
		return 1, nil
	}
	sing, _ := e.laurent.Singular(delta)
	singular := math.Abs(sing)

	total := regular + singular
	if total == 0 {
		return 1, nil
	}

	return regular / total, nil
}

// CacheStats returns a snapshot of the cache counters.
func (e *Evaluator) CacheStats() CacheStats { return e.cache.Stats() }

// ClearCache drops every cached evaluation.
func (e *Evaluator) ClearCache() { e.cache.Clear() }
