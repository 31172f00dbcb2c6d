// Package testutil provides shared test infrastructure: move-log fixtures and
// float assertion helpers. It must not import analysis or analysis/movelog, whose
// in-package tests use it.
package testutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/spf13/afero"
)

// Header is the column layout written by the JASK tracker.
var Header = []string{
	"MoveNum", "ProcessID", "SolutionId", "Service",
	"SourceMachine", "SourceMachineProcessCount", "DestMachine", "DestMachineProcessCount",
	"MoveCost", "LoadCost", "BalanceCost", "SolutionCost", "Improvement",
	"ProcessResourceRequirements",
	"SourceMachineResourceUsage", "SourceMachineCapacities", "SourceMachineTransientUsage",
	"DestMachineResourceUsage", "DestMachineCapacities", "DestMachineTransientUsage",
}

// Move is one fixture row. Vector fields are written verbatim, so tests can plant
// malformed cells.
type Move struct {
	MoveNum, ProcessID, SolutionID, Service int64
	Src, SrcCount, Dest, DestCount          int64

	MoveCost, LoadCost, BalanceCost, SolutionCost, Improvement float64

	Requirements                           string
	SrcUsage, SrcCapacity, SrcTransient    string
	DestUsage, DestCapacity, DestTransient string
}

// Moves builds one well-formed move per solution ID. Move i is process i%3 moving
// from machine i%4 to (i+1)%4, requires [i, 1] (size i+1) and improves the
// cumulative improvement by 0.5 per move.
func Moves(solutionIDs ...int64) []Move {
	moves := make([]Move, len(solutionIDs))
	cost := 1000.0
	for i, sid := range solutionIDs {
		n := int64(i)
		cost -= 10
		moves[i] = Move{
			MoveNum:       n + 1,
			ProcessID:     n % 3,
			SolutionID:    sid,
			Service:       n % 2,
			Src:           n % 4,
			SrcCount:      3,
			Dest:          (n + 1) % 4,
			DestCount:     4,
			MoveCost:      float64(n),
			LoadCost:      cost - 100,
			BalanceCost:   5,
			SolutionCost:  cost,
			Improvement:   0.5 * float64(i+1),
			Requirements:  fmt.Sprintf("[%d, 1]", n),
			SrcUsage:      fmt.Sprintf("[%d, %d]", 10+n, 20),
			SrcCapacity:   "[100, 100]",
			SrcTransient:  "[0, 0]",
			DestUsage:     fmt.Sprintf("[%d, %d]", 30, 40+n),
			DestCapacity:  "[100, 100]",
			DestTransient: "[1, 2]",
		}
	}
	return moves
}

// Record renders m in Header order.
func (m Move) Record() []string {
	i := func(v int64) string { return strconv.FormatInt(v, 10) }
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return []string{
		i(m.MoveNum), i(m.ProcessID), i(m.SolutionID), i(m.Service),
		i(m.Src), i(m.SrcCount), i(m.Dest), i(m.DestCount),
		f(m.MoveCost), f(m.LoadCost), f(m.BalanceCost), f(m.SolutionCost), f(m.Improvement),
		m.Requirements,
		m.SrcUsage, m.SrcCapacity, m.SrcTransient,
		m.DestUsage, m.DestCapacity, m.DestTransient,
	}
}

// CSV renders moves as a move log with the given header.
func CSV(t testing.TB, header []string, moves []Move) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		t.Fatalf("writing fixture header: %v", err)
	}
	for _, m := range moves {
		if err := w.Write(m.Record()); err != nil {
			t.Fatalf("writing fixture row %d: %v", m.MoveNum, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flushing fixture: %v", err)
	}
	return buf.Bytes()
}

// WriteMoveLog writes moves as a CSV move log at path on fsys.
func WriteMoveLog(t testing.TB, fsys afero.Fs, path string, moves []Move) {
	t.Helper()
	if err := afero.WriteFile(fsys, path, CSV(t, Header, moves), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == got {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
