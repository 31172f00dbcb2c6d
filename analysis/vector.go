package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// VectorColumn is one list-literal column reduced to a scalar per row.
type VectorColumn struct {
	Name string
	// Width is the expected vector length every row was stacked with.
	Width int
	Sums  []int64
	// Substituted lists the rows whose cell failed to parse and was replaced by
	// a zero vector of Width elements.
	Substituted []int
}

// ParseVector parses an integer list literal such as "[10, 20, 5]" or "(1,2)".
// A trailing comma and the empty list are accepted.
func ParseVector(cell string) ([]int64, error) {
	s := strings.TrimSpace(cell)
	if len(s) < 2 {
		return nil, fmt.Errorf("not a list literal: %q", cell)
	}
	open, closing := s[0], s[len(s)-1]
	if !(open == '[' && closing == ']') && !(open == '(' && closing == ')') {
		return nil, fmt.Errorf("not a list literal: %q", cell)
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return []int64{}, nil
	}
	parts := strings.Split(body, ",")
	if strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	out := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("element %d of %q: %w", i, cell, err)
		}
		out[i] = v
	}
	return out, nil
}

// ReduceVectorColumn parses every cell of a list-literal column, stacks the
// vectors into an N x width matrix and sums each row.
//
// A positive width declares the expected vector length; otherwise it is taken from
// the first well-formed cell. Malformed cells become zero vectors of that width and
// are reported in Substituted. A well-formed cell of any other length is
// ErrRaggedVectorShape. Sums are exact while each row sum stays below 2^53.
func ReduceVectorColumn(name string, cells []string, width int) (*VectorColumn, error) {
	n := len(cells)
	col := &VectorColumn{Name: name, Sums: make([]int64, n)}

	known := width > 0
	expected := width
	parsed := make([][]int64, n)
	for i, cell := range cells {
		v, err := ParseVector(cell)
		if err != nil {
			col.Substituted = append(col.Substituted, i)
			continue
		}
		if !known {
			expected, known = len(v), true
		}
		if len(v) != expected {
			return nil, fmt.Errorf("%w: column %s row %d has %d elements, want %d",
				ErrRaggedVectorShape, name, i, len(v), expected)
		}
		parsed[i] = v
	}
	col.Width = expected

	if n == 0 || expected == 0 {
		return col, nil
	}

	data := make([]float64, n*expected)
	for i, v := range parsed {
		row := data[i*expected : (i+1)*expected]
		for j, x := range v {
			row[j] = float64(x)
		}
	}
	m := mat.NewDense(n, expected, data)
	for i := 0; i < n; i++ {
		col.Sums[i] = int64(floats.Sum(m.RawRowView(i)))
	}
	return col, nil
}
