package rational

import (
	"math"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
)

// exactLimit is the magnitude above which every float64 is an integer.
const exactLimit = 1 << 53

// Approximation is a rational p/q close to some real value.
//
// P is integral-valued but kept as float64 so that inputs beyond the int64
// range stay representable.
type Approximation struct {
	P        float64
	Q        int
	Distance float64
}

// Value returns P/Q.
func (a Approximation) Value() float64 {
	return a.P / float64(a.Q)
}

func validate(x float64, qMax int) error {
	if err := core.RequireFinite("rational", "x", x); err != nil {
		return err
	}
	return core.RequirePositive("rational", "max denominator", qMax)
}

// Distance returns min over q in [1, qMax] of |x - round(x*q)/q|.
func Distance(x float64, qMax int) (float64, error) {
	a, err := Nearest(x, qMax)
	if err != nil {
		return 0, err
	}
	return a.Distance, nil
}

// Nearest returns the rational with the smallest denominator in [1, qMax]
// that attains the minimal distance to x.
func Nearest(x float64, qMax int) (Approximation, error) {
	if err := validate(x, qMax); err != nil {
		return Approximation{}, err
	}

	if math.Abs(x) >= exactLimit || x == math.Trunc(x) {
		return Approximation{P: x, Q: 1}, nil
	}

	best := Approximation{Distance: math.Inf(1)}
	for q := 1; q <= qMax; q++ {
		fq := float64(q)
		p := math.Round(x * fq)

		d := math.Abs(x - p/fq)
		if d < best.Distance {
			best = Approximation{P: p, Q: q, Distance: d}
			if d == 0 {
				break
			}
		}
	}

	return best, nil
}

// Convergents returns the continued-fraction convergents of x whose
// denominators do not exceed qMax, in increasing denominator order.
// The expansion stops early once a convergent reproduces x exactly.
func Convergents(x float64, qMax int) ([]Approximation, error) {
	if err := validate(x, qMax); err != nil {
		return nil, err
	}

	a0 := math.Floor(x)
	out := []Approximation{{P: a0, Q: 1, Distance: math.Abs(x - a0)}}
	if math.Abs(x) >= exactLimit {
		return out, nil
	}

	// p[k] = a[k]*p[k-1] + p[k-2], likewise for q.
	pPrev, pCur := 1.0, a0
	qPrev, qCur := 0.0, 1.0
	frac := x - a0

	for frac > 0 {
		inv := 1 / frac
		a := math.Floor(inv)
		frac = inv - a

		pNext := a*pCur + pPrev
		qNext := a*qCur + qPrev
		if qNext > float64(qMax) {
			break
		}

		pPrev, pCur = pCur, pNext
		qPrev, qCur = qCur, qNext

		d := math.Abs(x - pCur/qCur)
		out = append(out, Approximation{P: pCur, Q: int(qCur), Distance: d})
		if d == 0 {
			break
		}
	}

	return out, nil
}
