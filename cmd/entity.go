package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/inference-sim/reassign-analytics/analysis"
)

func newProcessCmd(opts *options) *cobra.Command {
	var (
		id     int64
		unique bool
	)
	cmd := &cobra.Command{
		Use:   "process [log]",
		Short: "List the moves of one process",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.query(args)
			if err != nil {
				return err
			}
			pm := q.MovesForProcess(id, unique)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "=== Process %d: %s moves ===\n", id, humanize.Comma(int64(pm.Len())))
			for i := range pm.Positions {
				fmt.Fprintf(w, "move=%s  from=%d  to=%d\n",
					humanize.Comma(pm.MoveIDs[i]), pm.SrcMachines[i], pm.DestMachines[i])
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Process ID")
	cmd.Flags().BoolVar(&unique, "unique", false, "Keep only the first move from each source and to each destination machine")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newMachineCmd(opts *options) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "machine [log]",
		Short: "List the resource usage snapshots of one machine",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.query(args)
			if err != nil {
				return err
			}
			mu := q.UsageForMachine(id)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "=== Machine %d: %s as source, %s as destination ===\n",
				id, humanize.Comma(int64(mu.AsSource)), humanize.Comma(int64(mu.AsDestination())))
			for i, v := range mu.Values {
				role := "source"
				if i >= mu.AsSource {
					role = "destination"
				}
				fmt.Fprintf(w, "position=%s  role=%s  usage=%s\n",
					humanize.Comma(int64(mu.Positions[i])), role, humanize.Comma(v))
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Machine ID")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (o *options) query(args []string) (*analysis.EntityQuery, error) {
	path, err := o.datasetPath(args)
	if err != nil {
		return nil, err
	}
	ds, err := o.load(path)
	if err != nil {
		return nil, err
	}
	return analysis.NewEntityQuery(ds, o.log)
}
