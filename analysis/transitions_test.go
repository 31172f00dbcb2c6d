package analysis

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/reassign-analytics/internal/testutil"
)

func TestComputeTransitions_PerSegmentAggregates(t *testing.T) {
	// GIVEN sizes 1..6 split into [1 2 3] [4 5] [6]
	sizes := []int64{1, 2, 3, 4, 5, 6}

	// WHEN transitions are computed
	tr, err := ComputeTransitions([]int{0, 3, 5, 6}, sizes)

	// THEN each segment is aggregated independently
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []int64{3, 2, 1}, tr.Count)
	assert.Equal(t, []int64{6, 9, 6}, tr.SizeSum)
	assert.Equal(t, []float64{2, 4.5, 6}, tr.Mean)
	assert.Equal(t, []int64{1, 4, 6}, tr.Min)
	assert.Equal(t, []int64{3, 5, 6}, tr.Max)
	assert.Equal(t, []int64{2, 1, 0}, tr.Range)
}

func TestComputeTransitions_SumsPartitionTotal(t *testing.T) {
	sizes := []int64{9, 3, 3, 7, 1, 1, 1, 8}
	tr, err := ComputeTransitions(ChangePoints([]int64{1, 1, 2, 3, 3, 3, 4, 4}), sizes)
	require.NoError(t, err)

	var total, count int64
	for i := 0; i < tr.Len(); i++ {
		total += tr.SizeSum[i]
		count += tr.Count[i]
		if tr.Min[i] > tr.Max[i] || tr.Range[i] != tr.Max[i]-tr.Min[i] {
			t.Errorf("segment %d: min %d, max %d, range %d", i, tr.Min[i], tr.Max[i], tr.Range[i])
		}
	}
	assert.Equal(t, int64(33), total)
	assert.Equal(t, int64(len(sizes)), count)
}

func TestComputeTransitions_EmptyInput(t *testing.T) {
	tr, err := ComputeTransitions([]int{0}, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())
}

func TestComputeTransitions_InvalidBoundaries(t *testing.T) {
	sizes := []int64{1, 2, 3}
	tests := map[string][]int{
		"none":           nil,
		"late start":     {1, 3},
		"short end":      {0, 2},
		"past end":       {0, 4},
		"decreasing":     {0, 2, 1, 3},
		"negative start": {-1, 3},
	}
	for name, b := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ComputeTransitions(b, sizes)
			assert.ErrorIs(t, err, ErrInvalidBoundaries)
		})
	}
}

func TestComputeTransitions_EmptySegment(t *testing.T) {
	_, err := ComputeTransitions([]int{0, 2, 2, 3}, []int64{1, 2, 3})

	assert.ErrorIs(t, err, ErrEmptySegmentDivision)
}

func TestImprovementDeltas_StartToStart(t *testing.T) {
	// GIVEN cumulative improvements 0.5..3 over segments starting at 0, 3 and 5
	improvement := []float64{0.5, 1, 1.5, 2, 2.5, 3}

	// WHEN deltas are computed
	deltas, err := ImprovementDeltas([]int{0, 3, 5, 6}, improvement)

	// THEN delta 0 is the first start value and later deltas difference the starts
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 1.0}, deltas)
}

func TestImprovementDeltas_RoundedToFiveDecimals(t *testing.T) {
	deltas, err := ImprovementDeltas([]int{0, 1, 2}, []float64{0.1, 0.3})

	require.NoError(t, err)
	testutil.AssertFloat64Equal(t, "delta 0", 0.1, deltas[0], 0)
	// 0.3 - 0.1 is 0.19999999999999998 before rounding
	testutil.AssertFloat64Equal(t, "delta 1", 0.2, deltas[1], 0)

	deltas, err = ImprovementDeltas([]int{0, 1}, []float64{0.123456789})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.12346}, deltas)
}

func TestImprovementDeltas_InvalidBoundaries(t *testing.T) {
	_, err := ImprovementDeltas([]int{0, 5}, []float64{1, 2})

	assert.ErrorIs(t, err, ErrInvalidBoundaries)
}

func TestDataset_TransitionStatistics(t *testing.T) {
	ds := loadMoves(t, testutil.Moves(1, 1, 1, 2, 2, 3))

	tr, err := ds.TransitionStatistics()
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 9, 6}, tr.SizeSum)

	deltas, err := ds.ImprovementDeltas()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 1.0}, deltas)
}

func TestLogTransitions_OnlyEdges(t *testing.T) {
	// GIVEN five segments
	tr, err := ComputeTransitions([]int{0, 1, 2, 3, 4, 5}, []int64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	// WHEN two edge segments are logged at each end
	LogTransitions(logger, tr, 2)

	// THEN the middle segment is skipped
	assert.Len(t, hook.AllEntries(), 4)
}
