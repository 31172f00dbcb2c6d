package analysis

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats/scalar"
)

// improvementDecimals is the rounding applied to improvement deltas.
const improvementDecimals = 5

// Transitions holds per-segment aggregates of process size. Element i describes
// the moves in [b[i], b[i+1]).
type Transitions struct {
	Count   []int64
	SizeSum []int64
	Mean    []float64
	Min     []int64
	Max     []int64
	Range   []int64
}

// Len returns the number of segments.
func (t *Transitions) Len() int {
	return len(t.Count)
}

func validateBoundaries(boundaries []int, n int) error {
	if len(boundaries) == 0 {
		return fmt.Errorf("%w: no boundaries", ErrInvalidBoundaries)
	}
	if boundaries[0] != 0 {
		return fmt.Errorf("%w: first boundary is %d, want 0", ErrInvalidBoundaries, boundaries[0])
	}
	if last := boundaries[len(boundaries)-1]; last != n {
		return fmt.Errorf("%w: last boundary is %d, want %d", ErrInvalidBoundaries, last, n)
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] < boundaries[i-1] {
			return fmt.Errorf("%w: boundary %d (%d) precedes boundary %d (%d)",
				ErrInvalidBoundaries, i, boundaries[i], i-1, boundaries[i-1])
		}
	}
	return nil
}

// ComputeTransitions aggregates sizes over every segment delimited by boundaries.
// Boundaries must start at 0, end at len(sizes) and never decrease; a repeated
// boundary (an empty segment) is ErrEmptySegmentDivision.
func ComputeTransitions(boundaries []int, sizes []int64) (*Transitions, error) {
	if err := validateBoundaries(boundaries, len(sizes)); err != nil {
		return nil, err
	}
	k := len(boundaries) - 1
	t := &Transitions{
		Count:   make([]int64, k),
		SizeSum: make([]int64, k),
		Mean:    make([]float64, k),
		Min:     make([]int64, k),
		Max:     make([]int64, k),
		Range:   make([]int64, k),
	}
	for i := 0; i < k; i++ {
		seg := sizes[boundaries[i]:boundaries[i+1]]
		if len(seg) == 0 {
			return nil, fmt.Errorf("%w: segment %d at position %d", ErrEmptySegmentDivision, i, boundaries[i])
		}
		lo, hi, sum := seg[0], seg[0], int64(0)
		for _, v := range seg {
			sum += v
			lo = min(lo, v)
			hi = max(hi, v)
		}
		t.Count[i] = int64(len(seg))
		t.SizeSum[i] = sum
		t.Mean[i] = float64(sum) / float64(len(seg))
		t.Min[i] = lo
		t.Max[i] = hi
		t.Range[i] = hi - lo
	}
	return t, nil
}

// ImprovementDeltas reads the cumulative improvement at every segment start
// (boundaries[0..k-1]) and returns its first difference with a leading zero, so
// delta i is improvement[b[i]] - improvement[b[i-1]] and delta 0 is
// improvement[b[0]]. Deltas are rounded half-to-even at 5 decimals.
func ImprovementDeltas(boundaries []int, improvement []float64) ([]float64, error) {
	if err := validateBoundaries(boundaries, len(improvement)); err != nil {
		return nil, err
	}
	starts := boundaries[:len(boundaries)-1]
	deltas := make([]float64, len(starts))
	prev := 0.0
	for i, b := range starts {
		deltas[i] = scalar.RoundEven(improvement[b]-prev, improvementDecimals)
		prev = improvement[b]
	}
	return deltas, nil
}

// TransitionStatistics recomputes the boundaries and aggregates process sizes per
// solution segment.
func (ds *Dataset) TransitionStatistics() (*Transitions, error) {
	return ComputeTransitions(ds.ChangePoints(), ds.ProcessSize)
}

// ImprovementDeltas recomputes the boundaries and returns the start-to-start
// improvement deltas.
func (ds *Dataset) ImprovementDeltas() ([]float64, error) {
	return ImprovementDeltas(ds.ChangePoints(), ds.Improvement)
}

// LogTransitions writes the first and last few segments at debug level.
func LogTransitions(logger logrus.FieldLogger, t *Transitions, edge int) {
	log := loggerOrDefault(logger)
	k := t.Len()
	for i := 0; i < k; i++ {
		if i >= edge && i < k-edge {
			continue
		}
		log.Debugf("transition %d: moves: %d, total_size=%d, mean=%g, min=%d, max=%d, diff=%d",
			i, t.Count[i], t.SizeSum[i], t.Mean[i], t.Min[i], t.Max[i], t.Range[i])
	}
}
