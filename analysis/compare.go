package analysis

// RunSummary condenses one optimizer run's move log.
type RunSummary struct {
	Name          string
	Moves         int
	InitialCost   float64 // solution cost recorded with the first move
	FinalCost     float64 // solution cost recorded with the last move
	Improvement   float64 // InitialCost - FinalCost
	Substitutions int
}

// SummarizeRun reads the first and last solution costs of ds.
// An empty dataset yields zero costs.
func SummarizeRun(name string, ds *Dataset) RunSummary {
	rs := RunSummary{Name: name}
	if ds == nil || ds.Len() == 0 {
		return rs
	}
	rs.Moves = ds.Len()
	rs.InitialCost = ds.SolutionCost[0]
	rs.FinalCost = ds.SolutionCost[ds.Len()-1]
	rs.Improvement = rs.InitialCost - rs.FinalCost
	rs.Substitutions = ds.Report.TotalSubstitutions()
	return rs
}

// RunComparison ranks two runs by final cost.
type RunComparison struct {
	Runs       [2]RunSummary
	Best       int // index into Runs; ties go to the first run
	TotalMoves int
}

// BestRun returns the run with the lower final cost.
func (c RunComparison) BestRun() RunSummary {
	return c.Runs[c.Best]
}

// CompareRuns ranks a against b.
func CompareRuns(a, b RunSummary) RunComparison {
	c := RunComparison{Runs: [2]RunSummary{a, b}, TotalMoves: a.Moves + b.Moves}
	if b.FinalCost < a.FinalCost {
		c.Best = 1
	}
	return c
}
