// Package sequence computes single-pass statistics of real sequences.
package sequence

import "math"

// Stats holds summary statistics of a sequence. An empty sequence yields
// the zero value: callers downstream treat a mean of 0 as neutral.
type Stats struct {
	Length   int     `json:"length"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"` // population variance
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	MinPos   int     `json:"min_pos"`
	Max      float64 `json:"max"`
	MaxPos   int     `json:"max_pos"`
	Range    float64 `json:"range"`
}

// Calculate computes all statistics in a single pass using Welford's
// online algorithm.
func Calculate(seq []float64) Stats {
	var s Streaming
	s.Update(seq)
	return s.Result()
}

// Mean returns the arithmetic mean of seq, 0 for an empty sequence. The
// result is finite for every finite seq.
func Mean(seq []float64) float64 {
	if len(seq) == 0 {
		return 0
	}

	n := float64(len(seq))
	if sum := kahan(seq, 1); !math.IsInf(sum, 0) {
		return sum / n
	}
	// The plain sum overflowed; average pre-scaled terms instead.
	return kahan(seq, 1/n)
}

// kahan returns the compensated sum of scale*x over seq.
func kahan(seq []float64, scale float64) float64 {
	var sum, c float64
	for _, x := range seq {
		y := x*scale - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

// Streaming accumulates statistics over successive blocks. The zero value
// is ready to use.
type Streaming struct {
	n      int
	mean   float64
	m2     float64
	minVal float64
	minPos int
	maxVal float64
	maxPos int
}

// Update adds a block of values to the running statistics.
func (s *Streaming) Update(seq []float64) {
	for _, x := range seq {
		if s.n == 0 {
			s.minVal, s.maxVal = x, x
			s.minPos, s.maxPos = 0, 0
		} else {
			if x > s.maxVal {
				s.maxVal = x
				s.maxPos = s.n
			}
			if x < s.minVal {
				s.minVal = x
				s.minPos = s.n
			}
		}

		s.n++
		n := float64(s.n)
		delta := x - s.mean
		// x/n - mean/n stays finite where delta/n would not.
		s.mean += x/n - s.mean/n
		s.m2 += delta * (x - s.mean)
	}
}

// Len returns the number of values seen.
func (s *Streaming) Len() int { return s.n }

// Result returns the statistics of everything seen so far.
func (s *Streaming) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}

	variance := s.m2 / float64(s.n)
	return Stats{
		Length:   s.n,
		Mean:     s.mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      s.minVal,
		MinPos:   s.minPos,
		Max:      s.maxVal,
		MaxPos:   s.maxPos,
		Range:    s.maxVal - s.minVal,
	}
}

// Reset clears all accumulated data.
func (s *Streaming) Reset() {
	*s = Streaming{}
}
