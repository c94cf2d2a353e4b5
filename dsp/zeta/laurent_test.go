package zeta

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLaurentRequiresMandatoryOrders(t *testing.T) {
	_, err := NewLaurent(map[int]float64{0: 1})
	require.ErrorIs(t, err, core.ErrInvalidArgument, "missing order -1")

	_, err = NewLaurent(map[int]float64{-1: 1})
	require.ErrorIs(t, err, core.ErrInvalidArgument, "missing order 0")

	_, err = NewLaurent(map[int]float64{-2: 1, -1: 1, 0: 0})
	require.ErrorIs(t, err, core.ErrInvalidArgument, "order below -1")

	_, err = NewLaurent(map[int]float64{-1: 1, 0: math.NaN()})
	require.ErrorIs(t, err, core.ErrInvalidArgument, "non-finite coefficient")
}

func TestLaurentCoefficients(t *testing.T) {
	l, err := NewLaurent(map[int]float64{-1: 2, 0: 0.5, 3: 4})
	require.NoError(t, err)

	assert.True(t, l.Valid())
	assert.Equal(t, 3, l.MaxOrder())
	assert.Equal(t, 2.0, l.Coefficient(-1))
	assert.Equal(t, 0.5, l.Coefficient(0))
	assert.Equal(t, 0.0, l.Coefficient(1), "gap orders count as zero")
	assert.Equal(t, 4.0, l.Coefficient(3))
	assert.Equal(t, 0.0, l.Coefficient(7))

	// 0.5 + 4·δ³ at δ = 0.5
	assert.InDelta(t, 1.0, l.Regular(0.5), 1e-15)
	assert.False(t, Laurent{}.Valid())
}

func TestDefaultLaurentMatchesZeta(t *testing.T) {
	l := DefaultLaurent()

	v, saturated := l.Eval(0.05)
	require.False(t, saturated)
	// ζ(1.05) = 20.5808...
	assert.InDelta(t, 20.58084, v, 1e-4)
}

func TestSingularSaturation(t *testing.T) {
	l := DefaultLaurent()

	tests := []struct {
		name      string
		delta     float64
		want      float64
		saturated bool
	}{
		{name: "exact", delta: 0, want: 1e10, saturated: true},
		{name: "above", delta: 1e-12, want: 1e10, saturated: true},
		{name: "below", delta: -1e-12, want: -1e10, saturated: true},
		{name: "at guard", delta: PoleGuard, want: 1e10},
		{name: "far", delta: 0.5, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, saturated := l.Singular(tt.delta)
			assert.Equal(t, tt.saturated, saturated)
			assert.InDelta(t, tt.want, got, math.Abs(tt.want)*1e-12)
			assert.False(t, math.IsInf(got, 0))
		})
	}
}
