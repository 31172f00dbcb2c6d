package analysis

import (
	"fmt"
	"sort"
)

// Dataset holds one element per move in every field. Index i refers to the same
// move across all fields. Resource vectors are already reduced to their sums.
type Dataset struct {
	// Reassignment (move) data
	MoveID     []int64
	SolutionID []int64
	ServiceID  []int64

	// Process data
	ProcessID   []int64
	ProcessSize []int64 // sum of the process resource requirements

	// Source machine at the time of the move
	SrcMachineID             []int64
	SrcMachineUsage          []int64
	SrcMachineCapacity       []int64
	SrcMachineTransientUsage []int64
	SrcMachineProcessCount   []int64

	// Destination machine at the time of the move
	DestMachineID             []int64
	DestMachineUsage          []int64
	DestMachineCapacity       []int64
	DestMachineTransientUsage []int64
	DestMachineProcessCount   []int64

	// Cost data
	MoveCost     []float64
	LoadCost     []float64
	BalanceCost  []float64
	SolutionCost []float64
	Improvement  []float64 // cumulative solution-cost improvement

	Source string
	Report LoadReport
}

// LoadReport describes how a Dataset was built from its source.
type LoadReport struct {
	TotalRows int
	KeptRows  int
	Fraction  float64
	// Substitutions counts malformed vector cells replaced by zero vectors, per column.
	Substitutions map[string]int
	// VectorWidths records the expected vector width used for each column.
	VectorWidths map[string]int
}

// TotalSubstitutions sums Substitutions over all columns.
func (r LoadReport) TotalSubstitutions() int {
	total := 0
	for _, n := range r.Substitutions {
		total += n
	}
	return total
}

// SubstitutedColumns returns the columns with at least one substitution, sorted.
func (r LoadReport) SubstitutedColumns() []string {
	var cols []string
	for col, n := range r.Substitutions {
		if n > 0 {
			cols = append(cols, col)
		}
	}
	sort.Strings(cols)
	return cols
}

// Len returns the number of moves.
func (ds *Dataset) Len() int {
	return len(ds.MoveID)
}

func (ds *Dataset) intFields() map[string][]int64 {
	return map[string][]int64{
		"MoveID":                    ds.MoveID,
		"SolutionID":                ds.SolutionID,
		"ServiceID":                 ds.ServiceID,
		"ProcessID":                 ds.ProcessID,
		"ProcessSize":               ds.ProcessSize,
		"SrcMachineID":              ds.SrcMachineID,
		"SrcMachineUsage":           ds.SrcMachineUsage,
		"SrcMachineCapacity":        ds.SrcMachineCapacity,
		"SrcMachineTransientUsage":  ds.SrcMachineTransientUsage,
		"SrcMachineProcessCount":    ds.SrcMachineProcessCount,
		"DestMachineID":             ds.DestMachineID,
		"DestMachineUsage":          ds.DestMachineUsage,
		"DestMachineCapacity":       ds.DestMachineCapacity,
		"DestMachineTransientUsage": ds.DestMachineTransientUsage,
		"DestMachineProcessCount":   ds.DestMachineProcessCount,
	}
}

func (ds *Dataset) floatFields() map[string][]float64 {
	return map[string][]float64{
		"MoveCost":     ds.MoveCost,
		"LoadCost":     ds.LoadCost,
		"BalanceCost":  ds.BalanceCost,
		"SolutionCost": ds.SolutionCost,
		"Improvement":  ds.Improvement,
	}
}

// Validate checks that every field has exactly Len() elements.
func (ds *Dataset) Validate() error {
	n := ds.Len()
	for name, arr := range ds.intFields() {
		if len(arr) != n {
			return fmt.Errorf("%w: %s has %d elements, want %d", ErrMisalignedFields, name, len(arr), n)
		}
	}
	for name, arr := range ds.floatFields() {
		if len(arr) != n {
			return fmt.Errorf("%w: %s has %d elements, want %d", ErrMisalignedFields, name, len(arr), n)
		}
	}
	return nil
}
