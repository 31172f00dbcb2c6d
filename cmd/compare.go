package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/inference-sim/reassign-analytics/analysis"
)

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <logA> <logB>",
		Short: "Compare the final solution cost of two optimizer runs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var runs [2]analysis.RunSummary
			for i, path := range args {
				ds, err := opts.load(path)
				if err != nil {
					return err
				}
				runs[i] = analysis.SummarizeRun(path, ds)
			}
			printComparison(cmd.OutOrStdout(), analysis.CompareRuns(runs[0], runs[1]))
			return nil
		},
	}
}

func printComparison(w io.Writer, c analysis.RunComparison) {
	fmt.Fprintln(w, "=== Run Comparison ===")
	for _, r := range c.Runs {
		fmt.Fprintf(w, "%s\n", r.Name)
		fmt.Fprintf(w, "  Moves              : %s\n", humanize.Comma(int64(r.Moves)))
		fmt.Fprintf(w, "  Initial cost       : %s\n", humanize.Commaf(r.InitialCost))
		fmt.Fprintf(w, "  Final cost         : %s\n", humanize.Commaf(r.FinalCost))
		fmt.Fprintf(w, "  Improvement        : %s\n", humanize.Commaf(r.Improvement))
	}
	best := c.BestRun()
	other := c.Runs[1-c.Best]
	fmt.Fprintf(w, "Best run             : %s (%s lower final cost)\n",
		best.Name, humanize.Commaf(other.FinalCost-best.FinalCost))
	fmt.Fprintf(w, "Total moves          : %s\n", humanize.Comma(int64(c.TotalMoves)))
}
