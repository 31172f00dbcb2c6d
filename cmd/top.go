package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/inference-sim/reassign-analytics/analysis"
)

// metric extracts one series from a dataset. Per-move metrics index moves;
// per-transition metrics index solution segments.
type metric struct {
	perTransition bool
	series        func(ds *analysis.Dataset) ([]float64, error)
}

func moveInts(f func(ds *analysis.Dataset) []int64) metric {
	return metric{series: func(ds *analysis.Dataset) ([]float64, error) {
		return toFloats(f(ds)), nil
	}}
}

func moveFloats(f func(ds *analysis.Dataset) []float64) metric {
	return metric{series: func(ds *analysis.Dataset) ([]float64, error) {
		return f(ds), nil
	}}
}

func transitionMetric(f func(tr *analysis.Transitions) []float64) metric {
	return metric{perTransition: true, series: func(ds *analysis.Dataset) ([]float64, error) {
		tr, err := ds.TransitionStatistics()
		if err != nil {
			return nil, err
		}
		return f(tr), nil
	}}
}

var metrics = map[string]metric{
	"process-size":      moveInts(func(ds *analysis.Dataset) []int64 { return ds.ProcessSize }),
	"move-cost":         moveFloats(func(ds *analysis.Dataset) []float64 { return ds.MoveCost }),
	"load-cost":         moveFloats(func(ds *analysis.Dataset) []float64 { return ds.LoadCost }),
	"balance-cost":      moveFloats(func(ds *analysis.Dataset) []float64 { return ds.BalanceCost }),
	"solution-cost":     moveFloats(func(ds *analysis.Dataset) []float64 { return ds.SolutionCost }),
	"improvement":       moveFloats(func(ds *analysis.Dataset) []float64 { return ds.Improvement }),
	"transition-size":   transitionMetric(func(tr *analysis.Transitions) []float64 { return toFloats(tr.SizeSum) }),
	"transition-mean":   transitionMetric(func(tr *analysis.Transitions) []float64 { return tr.Mean }),
	"transition-range":  transitionMetric(func(tr *analysis.Transitions) []float64 { return toFloats(tr.Range) }),
	"improvement-delta": {perTransition: true, series: improvementDeltas},
}

func improvementDeltas(ds *analysis.Dataset) ([]float64, error) {
	return ds.ImprovementDeltas()
}

func metricNames() []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toFloats(v []int64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func newTopCmd(opts *options) *cobra.Command {
	var (
		metricName string
		n          int
		direction  string
	)
	cmd := &cobra.Command{
		Use:   "top [log]",
		Short: "Print the n most extreme values of a metric",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := metrics[metricName]
			if !ok {
				return fmt.Errorf("unknown metric %q (want one of %s)", metricName, strings.Join(metricNames(), ", "))
			}
			dir, err := analysis.ParseDirection(direction)
			if err != nil {
				return err
			}
			path, err := opts.datasetPath(args)
			if err != nil {
				return err
			}
			ds, err := opts.load(path)
			if err != nil {
				return err
			}
			values, err := m.series(ds)
			if err != nil {
				return err
			}
			printTop(cmd.OutOrStdout(), metricName, m, ds, analysis.Select(values, n, dir), dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&metricName, "metric", "process-size", "Metric to rank ("+strings.Join(metricNames(), ", ")+")")
	cmd.Flags().IntVar(&n, "n", 10, "Number of values to print")
	cmd.Flags().StringVar(&direction, "direction", string(analysis.Largest), "largest or smallest")
	return cmd
}

func printTop(w io.Writer, name string, m metric, ds *analysis.Dataset, ranked []analysis.Ranked[float64], dir analysis.Direction) {
	fmt.Fprintf(w, "=== %s %s (%d) ===\n", strings.ToUpper(string(dir[:1]))+string(dir[1:]), name, len(ranked))
	for rank, r := range ranked {
		if m.perTransition {
			fmt.Fprintf(w, "%4d  segment=%s  value=%s\n", rank+1, humanize.Comma(int64(r.Index)), humanize.Commaf(r.Value))
			continue
		}
		fmt.Fprintf(w, "%4d  move=%s  process=%d  value=%s\n",
			rank+1, humanize.Comma(ds.MoveID[r.Index]), ds.ProcessID[r.Index], humanize.Commaf(r.Value))
	}
}
