package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/protstat/internal/present"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [database...]",
		Short: "Print a summary per database",
		Long: `Print sequence count, average length, sample standard deviation,
total symbols and per-symbol frequencies for each database.

A database with a single record has no sample standard deviation and
fails with exit code 1.

Examples:
  protstat stats human.fasta mouse.fasta
  cat human.fasta | protstat stats
  protstat stats --format json human.fasta`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd, args)
		},
	}
}

func runStats(opts *RootOptions, cmd *cobra.Command, args []string) error {
	s, named, err := analyze(opts, cmd, args)
	if err != nil {
		return err
	}

	summaries := make([]*present.Summary, 0, len(named))
	for _, n := range named {
		sum, err := present.Summarize(n)
		if err != nil {
			return s.formatter.Fail("failed to summarize "+n.Label, err)
		}
		summaries = append(summaries, sum)
	}

	return s.publish(cmd, named, summaries, func(w io.Writer) error {
		for _, sum := range summaries {
			if err := present.WriteSummary(w, sum); err != nil {
				return err
			}
		}
		return nil
	})
}
