package analysis

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"

	"github.com/inference-sim/reassign-analytics/internal/testutil"
)

// quietLogger discards all output.
func quietLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

// loadMoves writes moves to an in-memory move log and loads it.
func loadMoves(t *testing.T, moves []testutil.Move) *Dataset {
	t.Helper()
	fs := afero.NewMemMapFs()
	testutil.WriteMoveLog(t, fs, "moves.csv", moves)
	ds, err := LoadDataset(LoadConfig{Path: "moves.csv", Fs: fs, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	return ds
}

// zeroDataset returns an aligned dataset of n moves with every field zero.
func zeroDataset(n int) *Dataset {
	i := func() []int64 { return make([]int64, n) }
	f := func() []float64 { return make([]float64, n) }
	return &Dataset{
		MoveID: i(), SolutionID: i(), ServiceID: i(),
		ProcessID: i(), ProcessSize: i(),
		SrcMachineID: i(), SrcMachineUsage: i(), SrcMachineCapacity: i(),
		SrcMachineTransientUsage: i(), SrcMachineProcessCount: i(),
		DestMachineID: i(), DestMachineUsage: i(), DestMachineCapacity: i(),
		DestMachineTransientUsage: i(), DestMachineProcessCount: i(),
		MoveCost: f(), LoadCost: f(), BalanceCost: f(), SolutionCost: f(), Improvement: f(),
	}
}
