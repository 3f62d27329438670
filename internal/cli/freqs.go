package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/protstat/internal/present"
)

// NewFreqsCommand creates the freqs command.
func NewFreqsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "freqs [database...]",
		Short: "Compare symbol frequencies across databases",
		Long: `Print a table of symbol frequencies (percent), one column per database.

Symbols are aligned across databases: a symbol missing from a database is
shown as 0.00%. Symbols absent from the first database are listed first,
followed by the first database's symbols in ascending frequency.

Example:
  protstat freqs human.fasta mouse.fasta yeast.fasta`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFreqs(rootOpts, cmd, args)
		},
	}
}

func runFreqs(opts *RootOptions, cmd *cobra.Command, args []string) error {
	s, named, err := analyze(opts, cmd, args)
	if err != nil {
		return err
	}

	table, err := present.Frequencies(named)
	if err != nil {
		return s.formatter.Fail("failed to compute frequencies", err)
	}

	return s.publish(cmd, named, table, func(w io.Writer) error {
		return present.WriteFrequencies(w, table)
	})
}
