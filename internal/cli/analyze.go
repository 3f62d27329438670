package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/protstat/internal/config"
	"github.com/roach88/protstat/internal/fasta"
	"github.com/roach88/protstat/internal/present"
	"github.com/roach88/protstat/internal/source"
	"github.com/roach88/protstat/internal/stats"
	"github.com/roach88/protstat/internal/store"
)

// session is the per-invocation state shared by the analysis commands.
type session struct {
	cfg       *config.Config
	formatter *OutputFormatter
}

// newSession resolves settings and sets up output and logging. Config
// errors are reported through a text formatter since the output format
// itself may be what failed to resolve.
func newSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	configureLogging(cmd.ErrOrStderr(), opts.Verbose)

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := opts.settings()
	if err != nil {
		return nil, formatter.Fail("failed to load settings", err)
	}
	formatter.Format = cfg.Format

	return &session{cfg: cfg, formatter: formatter}, nil
}

// computeAll buffers and aggregates each named database in order.
// No names means standard input.
func (s *session) computeAll(cmd *cobra.Command, names []string) ([]present.Named, error) {
	if len(names) == 0 {
		names = []string{source.Stdin}
	}

	splitter := fasta.Splitter{Delimiter: s.cfg.DelimiterByte()}
	named := make([]present.Named, 0, len(names))
	for _, name := range names {
		db, err := source.Open(name, cmd.InOrStdin())
		if err != nil {
			return nil, s.formatter.Fail(fmt.Sprintf("failed to read database %s", name), err)
		}
		slog.Debug("database buffered", "database", db.Label, "bytes", db.Size())

		rep, err := stats.ComputeWith(splitter, db.Reader())
		if err != nil {
			return nil, s.formatter.Fail(fmt.Sprintf("failed to compute statistics for %s", db.Label), err)
		}
		slog.Debug("records parsed", "database", db.Label, "records", rep.Count(), "symbols", rep.TotalSymbols())

		named = append(named, present.Named{Label: db.Label, Report: rep})
	}
	return named, nil
}

// record persists the reports as one run when a history store is
// configured. Returns the run id, or "" when persistence is disabled.
func (s *session) record(ctx context.Context, command string, named []present.Named) (string, error) {
	if s.cfg.Store.Path == "" {
		return "", nil
	}

	st, err := s.openStore()
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing history store", "error", closeErr)
		}
	}()

	run := &store.Run{ID: store.NewRunID(), Command: command}
	for _, n := range named {
		run.Entries = append(run.Entries, store.Entry{Label: n.Label, Report: n.Report})
	}
	if _, err := st.WriteRun(ctx, run); err != nil {
		return "", s.formatter.Fail("failed to record run", fmt.Errorf("%w: %w", errStore, err))
	}
	slog.Info("run recorded", "run", run.ID, "seq", run.Seq, "databases", len(run.Entries))
	return run.ID, nil
}

func (s *session) openStore() (*store.Store, error) {
	slog.Debug("opening history store", "path", s.cfg.Store.Path)
	st, err := store.Open(s.cfg.Store.Path)
	if err != nil {
		return nil, s.formatter.Fail("failed to open history store", fmt.Errorf("%w: %w", errStore, err))
	}
	return st, nil
}

// analyze runs the shared front half of the analysis commands: settings,
// buffering and aggregation. Nothing is recorded until publish.
func analyze(opts *RootOptions, cmd *cobra.Command, args []string) (*session, []present.Named, error) {
	s, err := newSession(opts, cmd)
	if err != nil {
		return nil, nil, err
	}
	named, err := s.computeAll(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	return s, named, nil
}

// publish records the run and writes the command's view. Commands call it
// only once every view has been built, so a failed command leaves no run
// behind.
func (s *session) publish(cmd *cobra.Command, named []present.Named, data any, render func(w io.Writer) error) error {
	if _, err := s.record(commandContext(cmd), cmd.Name(), named); err != nil {
		return err
	}
	return s.formatter.Success(data, render)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
