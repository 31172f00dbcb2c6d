package analysis

// Metadata aggregates dataset-wide counts.
type Metadata struct {
	Moves          int
	Processes      int
	Machines       int // distinct source or destination machines
	Solutions      int
	Services       int
	Segments       int
	MinProcessSize int64
	MaxProcessSize int64
	Substitutions  int
}

// Summarize computes dataset-wide counts. Safe for nil or empty datasets
// (returns zero-value fields).
func Summarize(ds *Dataset) *Metadata {
	md := &Metadata{}
	if ds == nil || ds.Len() == 0 {
		return md
	}

	md.Moves = ds.Len()
	md.Processes = countDistinct(ds.ProcessID)
	md.Machines = countDistinct(ds.SrcMachineID, ds.DestMachineID)
	md.Solutions = countDistinct(ds.SolutionID)
	md.Services = countDistinct(ds.ServiceID)
	md.Segments = ds.SegmentCount()
	md.Substitutions = ds.Report.TotalSubstitutions()

	md.MinProcessSize, md.MaxProcessSize = ds.ProcessSize[0], ds.ProcessSize[0]
	for _, v := range ds.ProcessSize {
		md.MinProcessSize = min(md.MinProcessSize, v)
		md.MaxProcessSize = max(md.MaxProcessSize, v)
	}
	return md
}

func countDistinct(cols ...[]int64) int {
	seen := make(map[int64]struct{})
	for _, col := range cols {
		for _, v := range col {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
