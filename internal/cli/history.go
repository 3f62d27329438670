package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/protstat/internal/config"
	"github.com/roach88/protstat/internal/present"
	"github.com/roach88/protstat/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Latest string
}

// HistoryEntry is one database of a stored run.
type HistoryEntry struct {
	Label        string `json:"database"`
	ReportID     string `json:"report_id"`
	Sequences    int    `json:"sequences"`
	TotalSymbols int    `json:"total_symbols"`
}

// HistoryRun is a stored run with its databases.
type HistoryRun struct {
	ID      string         `json:"id"`
	Seq     int64          `json:"seq"`
	Command string         `json:"command"`
	Entries []HistoryEntry `json:"entries"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Inspect recorded runs",
		Long: `Inspect runs recorded in the history database (--db or store.path).

Without arguments, lists all runs in recording order. With a run id, lists
the databases of that run. With --latest, prints the summary of the most
recent report recorded for a database label.

Examples:
  protstat history --db history.db
  protstat history --db history.db 01920c3e-7d7c-7cc2-a3f4-2b8f0a4a6c11
  protstat history --db history.db --latest human`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd, args)
		},
	}

	cmd.Flags().StringVar(&opts.Latest, "latest", "", "show the latest stored summary for a database label")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command, args []string) error {
	s, err := newSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	if s.cfg.Store.Path == "" {
		return s.formatter.Fail("history unavailable",
			&config.Error{Path: "flags", Message: "no history database configured (use --db or store.path)"})
	}

	st, err := s.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing history store", "error", closeErr)
		}
	}()

	ctx := commandContext(cmd)
	switch {
	case opts.Latest != "":
		entry, err := st.LatestReport(ctx, opts.Latest)
		if err != nil {
			return s.formatter.Fail("failed to read history", storeErr(err))
		}
		sum, err := present.Summarize(present.Named{Label: entry.Label, Report: entry.Report})
		if err != nil {
			return s.formatter.Fail("failed to summarize "+entry.Label, err)
		}
		return s.formatter.Success(sum, func(w io.Writer) error {
			return present.WriteSummary(w, sum)
		})

	case len(args) == 1:
		run, err := st.ReadRun(ctx, args[0])
		if err != nil {
			return s.formatter.Fail("failed to read history", storeErr(err))
		}
		view := HistoryRun{ID: run.ID, Seq: run.Seq, Command: run.Command, Entries: []HistoryEntry{}}
		for _, e := range run.Entries {
			view.Entries = append(view.Entries, HistoryEntry{
				Label:        e.Label,
				ReportID:     e.ReportID,
				Sequences:    e.Report.Count(),
				TotalSymbols: e.Report.TotalSymbols(),
			})
		}
		return s.formatter.Success(view, func(w io.Writer) error {
			return writeHistoryRun(w, view)
		})

	default:
		runs, err := st.ListRuns(ctx)
		if err != nil {
			return s.formatter.Fail("failed to read history", storeErr(err))
		}
		return s.formatter.Success(runs, func(w io.Writer) error {
			return writeRunList(w, runs)
		})
	}
}

// storeErr tags err as a store failure unless it is a lookup miss, which
// is reported as not found.
func storeErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", errStore, err)
}

func writeRunList(w io.Writer, runs []store.RunSummary) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	for _, r := range runs {
		if _, err := fmt.Fprintf(w, "%4d  %s  %-6s  %d database(s)\n", r.Seq, r.ID, r.Command, r.Databases); err != nil {
			return err
		}
	}
	return nil
}

func writeHistoryRun(w io.Writer, run HistoryRun) error {
	if _, err := fmt.Fprintf(w, "Run %s (#%d, %s)\n", run.ID, run.Seq, run.Command); err != nil {
		return err
	}
	for _, e := range run.Entries {
		if _, err := fmt.Fprintf(w, "  %s  %s  %d sequences, %d symbols\n",
			e.ReportID[:12], e.Label, e.Sequences, e.TotalSymbols); err != nil {
			return err
		}
	}
	return nil
}
