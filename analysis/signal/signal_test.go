package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestDiff(t *testing.T) {
	assert.Equal(t, []float64{3, 5}, Diff([]float64{1, 4, 9}))
	assert.Empty(t, Diff([]float64{1}))
	assert.Empty(t, Diff(nil))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, Normalize([]float64{2, 4, 6}, 0, 1))
	assert.Equal(t, []float64{-1, 0, 1}, Normalize([]float64{10, 20, 30}, -1, 1))

	// A constant series has no range to scale.
	assert.Equal(t, []float64{5, 5}, Normalize([]float64{3, 3}, 5, 9))
	assert.Empty(t, Normalize(nil, 0, 1))
}

func TestLinearTrend_RecoversLine(t *testing.T) {
	// GIVEN samples on y = 1 + 2i
	y := []float64{1, 3, 5, 7}

	// WHEN a trend is fitted
	trend, slope, intercept := LinearTrend(y)

	// THEN the fit reproduces the line
	assert.InDelta(t, 2, slope, tol)
	assert.InDelta(t, 1, intercept, tol)
	assert.InDeltaSlice(t, y, trend, tol)
}

func TestLinearTrend_TooShort(t *testing.T) {
	trend, slope, intercept := LinearTrend([]float64{4})
	assert.Equal(t, []float64{4}, trend)
	assert.Zero(t, slope)
	assert.Equal(t, 4.0, intercept)

	trend, _, _ = LinearTrend(nil)
	assert.Empty(t, trend)
}

func TestMovingAverage_ReflectPadded(t *testing.T) {
	x := []float64{1, 2, 3, 4}

	assert.InDeltaSlice(t, []float64{4.0 / 3, 2, 3, 11.0 / 3}, MovingAverage(x, 3), tol)
	assert.InDeltaSlice(t, []float64{1, 1.5, 2.5, 3.5}, MovingAverage(x, 2), tol)
	assert.Equal(t, x, MovingAverage(x, 1))

	// AND the input is untouched
	assert.Equal(t, []float64{1, 2, 3, 4}, x)
}

func TestMovingAverage_WindowWiderThanSeries(t *testing.T) {
	// Reflection of [1 2] repeats as 2 1 | 1 2 | 2 1.
	got := MovingAverage([]float64{1, 2}, 5)

	require.Len(t, got, 2)
	assert.InDelta(t, (2+1+1+2+2)/5.0, got[0], tol)
	assert.InDelta(t, (1+1+2+2+1)/5.0, got[1], tol)
}

func TestMovingAverage_NonPositiveWindowPanics(t *testing.T) {
	assert.Panics(t, func() { MovingAverage([]float64{1}, 0) })
}

func TestBlockMean_DropsPartialBlock(t *testing.T) {
	got := BlockMean([]float64{1, 2, 3, 4, 5}, 2)

	assert.Equal(t, []float64{1.5, 1.5, 3.5, 3.5}, got)
}

func TestMovingVariance_CenteredWithNaNEdges(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	odd := MovingVariance(x, 3)
	assert.True(t, math.IsNaN(odd[0]))
	assert.InDeltaSlice(t, []float64{1, 1, 1}, odd[1:4], tol)
	assert.True(t, math.IsNaN(odd[4]))

	even := MovingVariance(x, 4)
	assert.True(t, math.IsNaN(even[0]))
	assert.True(t, math.IsNaN(even[1]))
	assert.InDelta(t, 5.0/3, even[2], tol)
	assert.InDelta(t, 5.0/3, even[3], tol)
	assert.True(t, math.IsNaN(even[4]))
}

func TestEnergyAndRMS(t *testing.T) {
	x := []float64{3, 4}

	assert.Equal(t, 25.0, Energy(x))
	assert.InDelta(t, math.Sqrt(12.5), RMS(x), tol)
	assert.Zero(t, RMS(nil))
	assert.Zero(t, Energy(nil))
}
