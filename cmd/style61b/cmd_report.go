package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/style61b/store"
)

func newReportCmd() *cobra.Command {
	var (
		dbPath string
		runID  int64
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarise a run recorded with --record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := store.Open(ctx, dbPath)
			if err != nil {
				return usageError("%w", err)
			}
			defer s.Close()

			if runID == 0 {
				run, err := s.LatestRun(ctx)
				if errors.Is(err, store.ErrNotFound) {
					return usageError("no runs recorded in %s", dbPath)
				}
				if err != nil {
					return usageError("%w", err)
				}
				runID = run.ID
			}

			summary, err := s.Summary(ctx, runID)
			if errors.Is(err, store.ErrNotFound) {
				return usageError("run %d not found in %s", runID, dbPath)
			}
			if err != nil {
				return usageError("%w", err)
			}
			return writeSummary(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database written by --record")
	cmd.Flags().Int64Var(&runID, "run", 0, "run to summarise (default: the latest)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func writeSummary(w io.Writer, summary *store.Summary) error {
	run := summary.Run
	fmt.Fprintf(w, "Run %d at %s: %d files, %d failed, %d diagnostics\n",
		run.ID, run.StartedAt.Local().Format(time.DateTime), run.Files, run.Failed, run.Diagnostics)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(summary.ByKind) > 0 {
		kinds := make([]string, 0, len(summary.ByKind))
		for kind := range summary.ByKind {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)

		fmt.Fprintln(tw, "\nBy kind:")
		for _, kind := range kinds {
			fmt.Fprintf(tw, "  %s\t%d\n", kind, summary.ByKind[kind])
		}
	}
	if len(summary.ByFile) > 0 {
		fmt.Fprintln(tw, "\nBy file:")
		for _, fc := range summary.ByFile {
			fmt.Fprintf(tw, "  %s\t%d\n", fc.Path, fc.Count)
		}
	}
	return tw.Flush()
}
