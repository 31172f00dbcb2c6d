// Package movelog reads the process-reassignment log written by the optimizers'
// trackers into a raw table of strings. Typed parsing lives in package analysis.
package movelog

// Column names as written by the trackers. Matching is exact and case-sensitive.
const (
	ColMoveNum                     = "MoveNum"
	ColProcessID                   = "ProcessID"
	ColSolutionID                  = "SolutionId"
	ColService                     = "Service"
	ColSourceMachine               = "SourceMachine"
	ColSourceMachineProcessCount   = "SourceMachineProcessCount"
	ColDestMachine                 = "DestMachine"
	ColDestMachineProcessCount     = "DestMachineProcessCount"
	ColMoveCost                    = "MoveCost"
	ColLoadCost                    = "LoadCost"
	ColBalanceCost                 = "BalanceCost"
	ColSolutionCost                = "SolutionCost"
	ColImprovement                 = "Improvement"
	ColProcessResourceRequirements = "ProcessResourceRequirements"
	ColSourceMachineResourceUsage  = "SourceMachineResourceUsage"
	ColSourceMachineCapacities     = "SourceMachineCapacities"
	ColSourceMachineTransientUsage = "SourceMachineTransientUsage"
	ColDestMachineResourceUsage    = "DestMachineResourceUsage"
	ColDestMachineCapacities       = "DestMachineCapacities"
	ColDestMachineTransientUsage   = "DestMachineTransientUsage"
)

// ScalarColumns hold a single integer or floating-point value per row.
var ScalarColumns = []string{
	ColMoveNum, ColProcessID, ColSolutionID, ColService,
	ColSourceMachine, ColSourceMachineProcessCount,
	ColDestMachine, ColDestMachineProcessCount,
	ColMoveCost, ColLoadCost, ColBalanceCost, ColSolutionCost, ColImprovement,
}

// VectorColumns hold a textual integer-list literal per row, e.g. "[10, 20, 5]".
var VectorColumns = []string{
	ColProcessResourceRequirements,
	ColSourceMachineResourceUsage,
	ColSourceMachineCapacities,
	ColSourceMachineTransientUsage,
	ColDestMachineResourceUsage,
	ColDestMachineCapacities,
	ColDestMachineTransientUsage,
}

// RequiredColumns returns every column a move log must carry, scalars first.
func RequiredColumns() []string {
	cols := make([]string, 0, len(ScalarColumns)+len(VectorColumns))
	cols = append(cols, ScalarColumns...)
	return append(cols, VectorColumns...)
}
