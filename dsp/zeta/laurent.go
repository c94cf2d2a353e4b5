package zeta

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
)

// PoleGuard is the smallest |s−a| at which the principal term is divided
// directly.
const PoleGuard = 1e-10

// Euler-Mascheroni and Stieltjes constants of the Riemann zeta function.
const (
	EulerGamma = 0.5772156649015329
	Stieltjes1 = -0.0728158454836767
	Stieltjes2 = -0.0096903631928723
)

// Laurent holds the coefficients of a Laurent expansion with a simple pole.
// It is immutable; the zero value is not a valid expansion.
type Laurent struct {
	principal float64
	regular   []float64 // regular[k] is the order-k coefficient
	ok        bool
}

// NewLaurent builds an expansion from order → coefficient. Orders −1 and 0
// are mandatory; higher orders may be omitted and then count as zero.
func NewLaurent(coeffs map[int]float64) (Laurent, error) {
	if _, ok := coeffs[-1]; !ok {
		return Laurent{}, core.Invalidf("zeta: laurent expansion needs an order -1 coefficient")
	}
	if _, ok := coeffs[0]; !ok {
		return Laurent{}, core.Invalidf("zeta: laurent expansion needs an order 0 coefficient")
	}

	orders := make([]int, 0, len(coeffs))
	for k, c := range coeffs {
		if k < -1 {
			return Laurent{}, core.Invalidf("zeta: laurent order must be >= -1: %d", k)
		}
		if !core.IsFinite(c) {
			return Laurent{}, core.Invalidf("zeta: laurent coefficient of order %d must be finite: %v", k, c)
		}
		orders = append(orders, k)
	}
	sort.Ints(orders)

	l := Laurent{principal: coeffs[-1], ok: true}
	l.regular = make([]float64, orders[len(orders)-1]+1)
	for k := 0; k < len(l.regular); k++ {
		l.regular[k] = coeffs[k]
	}

	return l, nil
}

// DefaultLaurent returns the expansion of the Riemann zeta function at 1
// truncated after order 2.
func DefaultLaurent() Laurent {
	l, _ := NewLaurent(map[int]float64{
		-1: 1,
		0:  EulerGamma,
		1:  -Stieltjes1,
		2:  Stieltjes2 / 2,
	})
	return l
}

// Valid reports whether l was built by [NewLaurent].
func (l Laurent) Valid() bool { return l.ok }

// Coefficient returns the coefficient of the given order, 0 when absent.
func (l Laurent) Coefficient(order int) float64 {
	switch {
	case order == -1:
		return l.principal
	case order >= 0 && order < len(l.regular):
		return l.regular[order]
	default:
		return 0
	}
}

// MaxOrder returns the highest regular order held.
func (l Laurent) MaxOrder() int { return len(l.regular) - 1 }

// Regular returns Σ_{k≥0} c_k δ^k.
func (l Laurent) Regular(delta float64) float64 {
	sum := 0.0
	for k := len(l.regular) - 1; k >= 0; k-- {
		sum = sum*delta + l.regular[k]
	}
	return sum
}

// Singular returns c₋₁/δ under the saturation policy and reports whether
// the guard was applied.
func (l Laurent) Singular(delta float64) (float64, bool) {
	if math.Abs(delta) >= PoleGuard {
		return l.principal / delta, false
	}
	guard := PoleGuard
	if delta < 0 {
		guard = -PoleGuard
	}
	return l.principal / guard, true
}

// Eval returns the expansion at δ = s−a and whether it saturated.
func (l Laurent) Eval(delta float64) (float64, bool) {
	sing, saturated := l.Singular(delta)
	return sing + l.Regular(delta), saturated
}
