package pipeline

import (
	"github.com/cwbudde/algo-arcsieve/dsp/arc"
	"github.com/cwbudde/algo-arcsieve/dsp/core"
	"github.com/cwbudde/algo-arcsieve/dsp/sieve"
	"github.com/cwbudde/algo-arcsieve/dsp/zeta"
	"github.com/cwbudde/algo-arcsieve/stats/sequence"
	"github.com/jedisct1/dlog"
)

// Gap is a spacing between consecutive surviving values, Start < End.
type Gap struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Width returns End - Start.
func (g Gap) Width() float64 { return g.End - g.Start }

// Report is the outcome of one [Pipeline.Process] call.
type Report struct {
	Filtered []float64    `json:"filtered"`
	Twins    []sieve.Pair `json:"twins"`

	MajorCount      int     `json:"major_count"`
	MinorCount      int     `json:"minor_count"`
	MajorAvg        float64 `json:"major_avg"`
	MinorAvg        float64 `json:"minor_avg"`
	MajorMinorRatio float64 `json:"major_minor_ratio"`

	AvgInput               float64     `json:"avg_input"`
	SpecialValue           float64     `json:"special_value"`
	SpecialBranch          zeta.Branch `json:"-"`
	SpecialSaturated       bool        `json:"special_saturated"`
	LocalStructureRichness float64     `json:"local_structure_richness"`

	DimensionEstimate float64 `json:"dimension_estimate"`
	Gaps              []Gap   `json:"gaps"`

	Input sequence.Stats `json:"input"`
}

// Pipeline owns one instance of every stage. It is safe for concurrent use:
// the sieve and decomposer are read-only and the evaluator synchronizes its
// cache.
type Pipeline struct {
	cfg   Config
	sieve *sieve.Sieve
	arcs  *arc.Decomposer
	zeta  *zeta.Evaluator
}

// New builds every stage from cfg and fails on the first invalid setting.
func New(cfg Config) (*Pipeline, error) {
	s, err := sieve.New(cfg.SieveLevel,
		sieve.WithResolution(cfg.Resolution),
		sieve.WithScoreThreshold(cfg.ScoreThreshold),
		sieve.WithTwinEpsilon(cfg.TwinEpsilon),
		sieve.WithStrongMatch(cfg.StrongMatch),
		sieve.WithSmallPatternLimit(cfg.SmallPatterns),
	)
	if err != nil {
		return nil, err
	}

	a, err := arc.New(
		arc.WithMaxDenominator(cfg.MaxDenominator),
		arc.WithMajorThreshold(cfg.MajorThreshold),
		arc.WithTerms(cfg.ArcTerms),
	)
	if err != nil {
		return nil, err
	}

	l, err := cfg.Laurent()
	if err != nil {
		return nil, err
	}

	zopts := []zeta.Option{
		zeta.WithAbscissa(cfg.Abscissa),
		zeta.WithRadius(cfg.Radius),
		zeta.WithMaxTerms(cfg.MaxTerms),
		zeta.WithCacheSize(cfg.CacheSize),
		zeta.WithQuantization(cfg.Quantization),
	}
	if cfg.StrictPole {
		zopts = append(zopts, zeta.WithStrictPole())
	}

	z, err := zeta.New(l, s, zopts...)
	if err != nil {
		return nil, err
	}

	if !core.IsFinite(cfg.GapThreshold) || cfg.GapThreshold < 0 {
		return nil, core.Invalidf("pipeline: gap threshold must be finite and >= 0: %v", cfg.GapThreshold)
	}

	return &Pipeline{cfg: cfg, sieve: s, arcs: a, zeta: z}, nil
}

// Config returns the configuration the pipeline was built from.
func (p *Pipeline) Config() Config { return p.cfg }

// Sieve returns the sieve stage.
func (p *Pipeline) Sieve() *sieve.Sieve { return p.sieve }

// Arcs returns the arc classification stage.
func (p *Pipeline) Arcs() *arc.Decomposer { return p.arcs }

// Evaluator returns the special function stage.
func (p *Pipeline) Evaluator() *zeta.Evaluator { return p.zeta }

// Process runs every stage over raw. An empty batch is valid and yields a
// mean of 0.
func (p *Pipeline) Process(raw []float64) (Report, error) {
	res, err := p.sieve.IntegratedProcess(raw)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Filtered:          res.Filtered,
		Twins:             res.Twins,
		DimensionEstimate: res.DimensionEstimate,
		Input:             sequence.Calculate(raw),
	}

	if err := p.classify(&r); err != nil {
		return Report{}, err
	}

	r.AvgInput = sequence.Mean(raw)
	s := 1 + r.AvgInput

	ev, err := p.zeta.EvaluateDetailed(s)
	if err != nil {
		return Report{}, err
	}
	r.SpecialValue = ev.Value
	r.SpecialBranch = ev.Branch
	r.SpecialSaturated = ev.Saturated

	r.LocalStructureRichness, err = p.zeta.Richness(s)
	if err != nil {
		return Report{}, err
	}

	r.Gaps, err = p.gaps(r.Filtered)
	if err != nil {
		return Report{}, err
	}

	dlog.Debugf("pipeline: %d of %d values survived, %d major, %d minor, %d gaps, Z(%.4f) via %s",
		len(r.Filtered), len(raw), r.MajorCount, r.MinorCount, len(r.Gaps), s, ev.Branch)

	return r, nil
}

func (p *Pipeline) classify(r *Report) error {
	classes, err := p.arcs.ClassifyBatch(r.Filtered)
	if err != nil {
		return err
	}

	var majorSum, minorSum float64
	for _, c := range classes {
		if c.IsMajor() {
			r.MajorCount++
			majorSum += c.Contribution
		} else {
			r.MinorCount++
			minorSum += c.Contribution
		}
	}

	if r.MajorCount > 0 {
		r.MajorAvg = majorSum / float64(r.MajorCount)
	}
	if r.MinorCount > 0 {
		r.MinorAvg = minorSum / float64(r.MinorCount)
	}
	r.MajorMinorRatio = float64(r.MajorCount) / float64(max(r.MinorCount, 1))

	return nil
}

// gaps walks consecutive pairs of filtered and keeps those wider than the
// gap threshold whose midpoint is minor-arc.
func (p *Pipeline) gaps(filtered []float64) ([]Gap, error) {
	var out []Gap
	for i := 1; i < len(filtered); i++ {
		lo, hi := filtered[i-1], filtered[i]
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi-lo <= p.cfg.GapThreshold {
			continue
		}

		c, err := p.arcs.Classify(lo + (hi-lo)/2)
		if err != nil {
			return nil, err
		}
		if c.Kind == arc.Minor {
			out = append(out, Gap{Start: lo, End: hi})
		}
	}

	return out, nil
}
