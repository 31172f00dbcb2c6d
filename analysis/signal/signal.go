// Package signal holds one-dimensional smoothing and feature helpers applied to
// per-move and per-transition series. Functions never modify their input.
package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Diff returns the consecutive differences x[i+1]-x[i], one shorter than x.
func Diff(x []float64) []float64 {
	if len(x) < 2 {
		return []float64{}
	}
	out := make([]float64, len(x)-1)
	floats.SubTo(out, x[1:], x[:len(x)-1])
	return out
}

// Normalize rescales x linearly onto [lo, hi]. A constant series maps to lo.
func Normalize(x []float64, lo, hi float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	mn, mx := floats.Min(x), floats.Max(x)
	if mx == mn {
		for i := range out {
			out[i] = lo
		}
		return out
	}
	scale := (hi - lo) / (mx - mn)
	for i, v := range x {
		out[i] = lo + (v-mn)*scale
	}
	return out
}

// LinearTrend fits y = intercept + slope*i by least squares over i = 0..len(y)-1
// and returns the fitted line. With fewer than two points the line is y itself
// and the slope is zero.
func LinearTrend(y []float64) (trend []float64, slope, intercept float64) {
	trend = make([]float64, len(y))
	if len(y) < 2 {
		copy(trend, y)
		if len(y) == 1 {
			intercept = y[0]
		}
		return trend, 0, intercept
	}
	xs := make([]float64, len(y))
	floats.Span(xs, 0, float64(len(y)-1))
	intercept, slope = stat.LinearRegression(xs, y, nil, false)
	for i, x := range xs {
		trend[i] = intercept + slope*x
	}
	return trend, slope, intercept
}

// reflect maps an out-of-range index back into [0, n) by mirroring about the
// edges with the edge sample repeated (d c b a | a b c d | d c b a).
func reflect(j, n int) int {
	period := 2 * n
	j %= period
	if j < 0 {
		j += period
	}
	if j >= n {
		j = period - 1 - j
	}
	return j
}

// MovingAverage replaces every sample with the mean of the window samples around
// it, padding past the ends by reflection. The output has the length of x. For an
// even window the extra sample is taken from the left. window must be positive.
func MovingAverage(x []float64, window int) []float64 {
	mustPositive(window)
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	half := window / 2
	for i := range out {
		var sum float64
		for k := 0; k < window; k++ {
			sum += x[reflect(i-half+k, n)]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// BlockMean splits x into consecutive blocks of window samples and sets every
// sample to its block mean. A trailing partial block is dropped, so the output
// length is the largest multiple of window not above len(x).
func BlockMean(x []float64, window int) []float64 {
	mustPositive(window)
	blocks := len(x) / window
	out := make([]float64, blocks*window)
	for b := 0; b < blocks; b++ {
		block := x[b*window : (b+1)*window]
		m := stat.Mean(block, nil)
		for i := range block {
			out[b*window+i] = m
		}
	}
	return out
}

// MovingVariance returns the sample variance of a centered window at every
// position. The window at i covers [i-window+1+off, i+off] with
// off = (window-1)/2; positions whose window runs past either end are NaN.
func MovingVariance(x []float64, window int) []float64 {
	mustPositive(window)
	n := len(x)
	out := make([]float64, n)
	off := (window - 1) / 2
	for i := range out {
		end := i + off + 1
		start := end - window
		if start < 0 || end > n {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.Variance(x[start:end], nil)
	}
	return out
}

// Energy is the sum of squared samples.
func Energy(x []float64) float64 {
	return floats.Dot(x, x)
}

// RMS is the root mean square of x, zero for an empty series.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(Energy(x) / float64(len(x)))
}

func mustPositive(window int) {
	if window < 1 {
		panic("signal: window must be positive")
	}
}
