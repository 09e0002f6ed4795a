package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sensorbus/canlog/internal/store"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the dispatch history",
	Long: `Lists past logger dispatches recorded in the canlog data directory,
newest last.

Examples:
  canlog runs
  canlog runs --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore()
	if err != nil {
		return err
	}

	idx, err := s.LoadIndex()
	if err != nil {
		return err
	}
	runs := idx.Runs
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "No runs recorded yet.")
		return nil
	}
	if runsLimit > 0 && len(runs) > runsLimit {
		runs = runs[len(runs)-runsLimit:]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tMODEL\tNODES\tEXIT CODES")
	for _, r := range runs {
		codes := make([]string, len(r.ExitCodes))
		for i, c := range r.ExitCodes {
			codes[i] = fmt.Sprintf("%d", c)
		}
		nodes := strings.Join(r.NodeIDs, ",")
		if r.DryRun {
			nodes += " (dry-run)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.Time.Format("2006-01-02 15:04:05"), r.Model, nodes, strings.Join(codes, ","))
	}
	return w.Flush()
}
