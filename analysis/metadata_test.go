package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inference-sim/reassign-analytics/internal/testutil"
)

func TestSummarize_CountsDistinctEntities(t *testing.T) {
	// GIVEN six moves over three processes, four machines and three solutions
	ds := loadMoves(t, testutil.Moves(1, 1, 1, 2, 2, 3))

	// WHEN summarized
	md := Summarize(ds)

	// THEN counts reflect distinct IDs
	assert.Equal(t, 6, md.Moves)
	assert.Equal(t, 3, md.Processes)
	assert.Equal(t, 4, md.Machines)
	assert.Equal(t, 3, md.Solutions)
	assert.Equal(t, 2, md.Services)
	assert.Equal(t, 3, md.Segments)
	assert.Equal(t, int64(1), md.MinProcessSize)
	assert.Equal(t, int64(6), md.MaxProcessSize)
	assert.Equal(t, 0, md.Substitutions)
}

func TestSummarize_NilAndEmpty(t *testing.T) {
	assert.Equal(t, &Metadata{}, Summarize(nil))
	assert.Equal(t, &Metadata{}, Summarize(zeroDataset(0)))
}
