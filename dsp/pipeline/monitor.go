package pipeline

import (
	"sync"

	"github.com/VividCortex/ewma"
)

// MonitorSnapshot is the smoothed view of the reports seen by a [Monitor].
type MonitorSnapshot struct {
	Batches         int     `json:"batches"`
	Values          int     `json:"values"`
	Survivors       int     `json:"survivors"`
	Gaps            int     `json:"gaps"`
	MajorMinorRatio float64 `json:"major_minor_ratio"`
	SpecialValue    float64 `json:"special_value"`
	Dimension       float64 `json:"dimension_estimate"`
}

// Monitor smooths successive reports with exponentially weighted moving
// averages. Safe for concurrent use.
//
// For the first ewma.WARMUP_SAMPLES batches the snapshot carries the
// arithmetic mean of the reports observed so far. A variable-age average
// reads 0 over that window.
type Monitor struct {
	mu sync.Mutex

	ratio     ewma.MovingAverage
	special   ewma.MovingAverage
	dimension ewma.MovingAverage

	// running sums for the warm-up window
	ratioSum     float64
	specialSum   float64
	dimensionSum float64

	batches   int
	values    int
	survivors int
	gaps      int
}

// NewMonitor returns a Monitor averaging over roughly age batches. An age
// <= 0 selects the library default.
func NewMonitor(age float64) *Monitor {
	newAvg := func() ewma.MovingAverage {
		if age > 0 {
			return ewma.NewMovingAverage(age)
		}
		return ewma.NewMovingAverage()
	}

	return &Monitor{
		ratio:     newAvg(),
		special:   newAvg(),
		dimension: newAvg(),
	}
}

// Observe folds r into the running averages.
func (m *Monitor) Observe(r Report) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ratio.Add(r.MajorMinorRatio)
	m.special.Add(r.SpecialValue)
	m.dimension.Add(r.DimensionEstimate)
	if m.batches < int(ewma.WARMUP_SAMPLES) {
		m.ratioSum += r.MajorMinorRatio
		m.specialSum += r.SpecialValue
		m.dimensionSum += r.DimensionEstimate
	}

	m.batches++
	m.values += r.Input.Length
	m.survivors += len(r.Filtered)
	m.gaps += len(r.Gaps)
}

// Snapshot returns the current averages and totals.
func (m *Monitor) Snapshot() MonitorSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := MonitorSnapshot{
		Batches:   m.batches,
		Values:    m.values,
		Survivors: m.survivors,
		Gaps:      m.gaps,
	}

	if m.batches > 0 && m.batches <= int(ewma.WARMUP_SAMPLES) {
		n := float64(m.batches)
		snap.MajorMinorRatio = m.ratioSum / n
		snap.SpecialValue = m.specialSum / n
		snap.Dimension = m.dimensionSum / n
		return snap
	}

	snap.MajorMinorRatio = m.ratio.Value()
	snap.SpecialValue = m.special.Value()
	snap.Dimension = m.dimension.Value()
	return snap
}
