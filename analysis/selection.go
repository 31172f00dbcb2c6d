package analysis

import (
	"cmp"
	"fmt"
	"slices"
)

// Direction selects which end of an ordering Select returns.
type Direction string

const (
	Largest  Direction = "largest"
	Smallest Direction = "smallest"
)

// ParseDirection accepts "largest" or "smallest".
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Largest, Smallest:
		return d, nil
	default:
		return "", fmt.Errorf("unknown direction %q (want %q or %q)", s, Largest, Smallest)
	}
}

// Ranked is one selected element and its position in the input.
type Ranked[T cmp.Ordered] struct {
	Index int
	Value T
}

// Select returns the min(n, len(values)) most extreme elements in dir, most
// extreme first. Equal values rank by lower index. A non-positive n yields an
// empty result for both directions. Any direction other than Largest selects the
// smallest values. NaNs order below every other float.
//
// The input is not reordered; selection partitions a permutation of indices and
// sorts only the selected prefix.
func Select[T cmp.Ordered](values []T, n int, dir Direction) []Ranked[T] {
	if n <= 0 || len(values) == 0 {
		return []Ranked[T]{}
	}
	n = min(n, len(values))

	before := func(a, b int) bool {
		c := cmp.Compare(values[a], values[b])
		if dir == Largest {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return a < b
	}

	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	if n < len(idx) {
		quickselect(idx, n-1, before)
	}
	top := idx[:n]
	slices.SortFunc(top, func(a, b int) int {
		if before(a, b) {
			return -1
		}
		return 1
	})

	out := make([]Ranked[T], n)
	for i, p := range top {
		out[i] = Ranked[T]{Index: p, Value: values[p]}
	}
	return out
}

// NLargest returns the n largest values, largest first.
func NLargest[T cmp.Ordered](values []T, n int) []Ranked[T] {
	return Select(values, n, Largest)
}

// NSmallest returns the n smallest values, smallest first.
func NSmallest[T cmp.Ordered](values []T, n int) []Ranked[T] {
	return Select(values, n, Smallest)
}

// Indices returns the input positions of r, in rank order.
func Indices[T cmp.Ordered](r []Ranked[T]) []int {
	out := make([]int, len(r))
	for i, e := range r {
		out[i] = e.Index
	}
	return out
}

// Values returns the selected values of r, in rank order.
func Values[T cmp.Ordered](r []Ranked[T]) []T {
	out := make([]T, len(r))
	for i, e := range r {
		out[i] = e.Value
	}
	return out
}

// quickselect reorders idx so that idx[:k+1] holds the k+1 elements ranked first
// by before, in no particular order. before must be a strict total order.
func quickselect(idx []int, k int, before func(a, b int) bool) {
	lo, hi := 0, len(idx)-1
	for lo < hi {
		p := partition(idx, lo, hi, before)
		switch {
		case k == p:
			return
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

// partition moves a median-of-three pivot to its final rank within [lo, hi].
func partition(idx []int, lo, hi int, before func(a, b int) bool) int {
	mid := lo + (hi-lo)/2
	if before(idx[mid], idx[lo]) {
		idx[mid], idx[lo] = idx[lo], idx[mid]
	}
	if before(idx[hi], idx[lo]) {
		idx[hi], idx[lo] = idx[lo], idx[hi]
	}
	if before(idx[mid], idx[hi]) {
		idx[mid], idx[hi] = idx[hi], idx[mid]
	}
	pivot := idx[hi]
	store := lo
	for i := lo; i < hi; i++ {
		if before(idx[i], pivot) {
			idx[i], idx[store] = idx[store], idx[i]
			store++
		}
	}
	idx[store], idx[hi] = idx[hi], idx[store]
	return store
}
