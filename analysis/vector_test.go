package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector(t *testing.T) {
	tests := []struct {
		cell    string
		want    []int64
		wantErr bool
	}{
		{cell: "[10, 20, 5]", want: []int64{10, 20, 5}},
		{cell: "(1,2)", want: []int64{1, 2}},
		{cell: " [ 3 ] ", want: []int64{3}},
		{cell: "[1, 2,]", want: []int64{1, 2}},
		{cell: "[]", want: []int64{}},
		{cell: "[-4, 4]", want: []int64{-4, 4}},
		{cell: "", wantErr: true},
		{cell: "nan", wantErr: true},
		{cell: "[1, x]", wantErr: true},
		{cell: "[1, 2)", wantErr: true},
		{cell: "[1.5]", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, err := ParseVector(tt.cell)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReduceVectorColumn_SumsRows(t *testing.T) {
	// GIVEN three well-formed cells of width 3
	cells := []string{"[1, 2, 3]", "[10, 0, 0]", "[0, 0, 0]"}

	// WHEN the column is reduced
	col, err := ReduceVectorColumn("usage", cells, 0)

	// THEN each row becomes its element sum
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 10, 0}, col.Sums)
	assert.Equal(t, 3, col.Width)
	assert.Empty(t, col.Substituted)
}

func TestReduceVectorColumn_MalformedCellsBecomeZero(t *testing.T) {
	// GIVEN a column whose first and third cells are malformed
	cells := []string{"garbage", "[4, 5]", "", "[1, 1]"}

	// WHEN the column is reduced without a declared width
	col, err := ReduceVectorColumn("usage", cells, 0)

	// THEN the width comes from the first well-formed cell and malformed rows sum to zero
	require.NoError(t, err)
	assert.Equal(t, 2, col.Width)
	assert.Equal(t, []int64{0, 9, 0, 2}, col.Sums)
	assert.Equal(t, []int{0, 2}, col.Substituted)
}

func TestReduceVectorColumn_AllMalformed(t *testing.T) {
	col, err := ReduceVectorColumn("usage", []string{"x", "y"}, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, col.Width)
	assert.Equal(t, []int64{0, 0}, col.Sums)
	assert.Equal(t, []int{0, 1}, col.Substituted)
}

func TestReduceVectorColumn_RaggedShape(t *testing.T) {
	// GIVEN a well-formed cell whose length differs from the first
	cells := []string{"[1, 2]", "[1, 2, 3]"}

	// WHEN the column is reduced
	_, err := ReduceVectorColumn("usage", cells, 0)

	// THEN the shape mismatch is reported
	if !errors.Is(err, ErrRaggedVectorShape) {
		t.Fatalf("err = %v, want ErrRaggedVectorShape", err)
	}
}

func TestReduceVectorColumn_DeclaredWidth(t *testing.T) {
	// GIVEN a declared width of 3 and a cell of width 2
	_, err := ReduceVectorColumn("usage", []string{"[1, 2]"}, 3)
	assert.ErrorIs(t, err, ErrRaggedVectorShape)

	// WHEN every well-formed cell matches the declared width
	col, err := ReduceVectorColumn("usage", []string{"bad", "[1, 2, 3]"}, 3)

	// THEN substitutions use the declared width
	require.NoError(t, err)
	assert.Equal(t, 3, col.Width)
	assert.Equal(t, []int64{0, 6}, col.Sums)
}

func TestReduceVectorColumn_Empty(t *testing.T) {
	col, err := ReduceVectorColumn("usage", nil, 0)

	require.NoError(t, err)
	assert.Empty(t, col.Sums)
	assert.Empty(t, col.Substituted)
}
