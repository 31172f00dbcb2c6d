package analysis

// ChangePoints returns the segment boundaries of a solution-ID sequence: index 0,
// every index whose ID differs from its predecessor, and len(solutionIDs) to close
// the trailing segment. Segment i spans [b[i], b[i+1]). IDs need not be monotonic;
// any change starts a new segment. An empty input yields [0] (no segments).
func ChangePoints(solutionIDs []int64) []int {
	n := len(solutionIDs)
	boundaries := []int{0}
	for i := 1; i < n; i++ {
		if solutionIDs[i] != solutionIDs[i-1] {
			boundaries = append(boundaries, i)
		}
	}
	if boundaries[len(boundaries)-1] != n {
		boundaries = append(boundaries, n)
	}
	return boundaries
}

// ChangePoints recomputes the solution segment boundaries of the dataset.
func (ds *Dataset) ChangePoints() []int {
	return ChangePoints(ds.SolutionID)
}

// SegmentCount returns how many solution segments the dataset holds.
func (ds *Dataset) SegmentCount() int {
	return len(ds.ChangePoints()) - 1
}

// TransitionMoveCounts returns the number of moves in each solution segment.
func (ds *Dataset) TransitionMoveCounts() []int64 {
	b := ds.ChangePoints()
	counts := make([]int64, len(b)-1)
	for i := range counts {
		counts[i] = int64(b[i+1] - b[i])
	}
	return counts
}
