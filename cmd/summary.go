package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/inference-sim/reassign-analytics/analysis"
	"github.com/inference-sim/reassign-analytics/analysis/signal"
)

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [log]",
		Short: "Print dataset-wide counts and the load report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.datasetPath(args)
			if err != nil {
				return err
			}
			ds, err := opts.load(path)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), ds)
			return nil
		},
	}
}

func printSummary(w io.Writer, ds *analysis.Dataset) {
	md := analysis.Summarize(ds)
	r := ds.Report
	_, slope, _ := signal.LinearTrend(ds.SolutionCost)

	fmt.Fprintln(w, "=== Move Log Summary ===")
	fmt.Fprintf(w, "Source               : %s\n", ds.Source)
	fmt.Fprintf(w, "Rows                 : %s of %s (fraction %g)\n",
		humanize.Comma(int64(r.KeptRows)), humanize.Comma(int64(r.TotalRows)), r.Fraction)
	fmt.Fprintf(w, "Moves                : %s\n", humanize.Comma(int64(md.Moves)))
	fmt.Fprintf(w, "Processes            : %s\n", humanize.Comma(int64(md.Processes)))
	fmt.Fprintf(w, "Machines             : %s\n", humanize.Comma(int64(md.Machines)))
	fmt.Fprintf(w, "Solutions            : %s\n", humanize.Comma(int64(md.Solutions)))
	fmt.Fprintf(w, "Services             : %s\n", humanize.Comma(int64(md.Services)))
	fmt.Fprintf(w, "Segments             : %s\n", humanize.Comma(int64(md.Segments)))
	fmt.Fprintf(w, "Process size         : %s .. %s\n", humanize.Comma(md.MinProcessSize), humanize.Comma(md.MaxProcessSize))
	fmt.Fprintf(w, "Cost trend           : %.4f per move\n", slope)
	if md.Substitutions > 0 {
		fmt.Fprintf(w, "Substituted cells    : %s (%s)\n",
			humanize.Comma(int64(md.Substitutions)), strings.Join(r.SubstitutedColumns(), ", "))
	} else {
		fmt.Fprintln(w, "Substituted cells    : 0")
	}
}
