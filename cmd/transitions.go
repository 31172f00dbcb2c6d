package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/inference-sim/reassign-analytics/analysis"
	"github.com/inference-sim/reassign-analytics/analysis/signal"
)

func newTransitionsCmd(opts *options) *cobra.Command {
	var (
		limit  int // segments printed at each end
		smooth int // moving-average window over segment sizes
	)
	cmd := &cobra.Command{
		Use:   "transitions [log]",
		Short: "Print per-solution-segment process size statistics and improvement deltas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 || smooth < 0 {
				return errors.New("--limit and --smooth must not be negative")
			}
			path, err := opts.datasetPath(args)
			if err != nil {
				return err
			}
			ds, err := opts.load(path)
			if err != nil {
				return err
			}
			tr, err := ds.TransitionStatistics()
			if err != nil {
				return err
			}
			deltas, err := ds.ImprovementDeltas()
			if err != nil {
				return err
			}
			analysis.LogTransitions(opts.log, tr, 5)
			printTransitions(cmd.OutOrStdout(), tr, deltas, limit, smooth)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "Segments to print at each end (0 prints all)")
	cmd.Flags().IntVar(&smooth, "smooth", 0, "Moving-average window applied to segment size sums (0 disables)")
	return cmd
}

func printTransitions(w io.Writer, tr *analysis.Transitions, deltas []float64, limit, smooth int) {
	k := tr.Len()
	var smoothed []float64
	if smooth > 0 {
		sums := make([]float64, k)
		for i, v := range tr.SizeSum {
			sums[i] = float64(v)
		}
		smoothed = signal.MovingAverage(sums, smooth)
	}

	fmt.Fprintf(w, "=== Transitions (%s segments) ===\n", humanize.Comma(int64(k)))
	for i := 0; i < k; i++ {
		if limit > 0 && i >= limit && i < k-limit {
			if i == limit {
				fmt.Fprintf(w, "... %s segments omitted ...\n", humanize.Comma(int64(k-2*limit)))
			}
			continue
		}
		fmt.Fprintf(w, "%6d  moves=%s  total_size=%s  mean=%.2f  min=%s  max=%s  range=%s  delta=%g",
			i, humanize.Comma(tr.Count[i]), humanize.Comma(tr.SizeSum[i]), tr.Mean[i],
			humanize.Comma(tr.Min[i]), humanize.Comma(tr.Max[i]), humanize.Comma(tr.Range[i]), deltas[i])
		if smoothed != nil {
			fmt.Fprintf(w, "  smoothed=%.2f", smoothed[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Improvement delta RMS: %.5f\n", signal.RMS(deltas))
}
