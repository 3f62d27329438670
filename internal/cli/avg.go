package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/protstat/internal/present"
)

// NewAvgCommand creates the avg command.
func NewAvgCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "avg [database...]",
		Short: "Compare average sequence length across databases",
		Long: `Print average sequence length per database with its sample standard
deviation and an error bar of half the deviation.

Example:
  protstat avg human.fasta mouse.fasta`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAvg(rootOpts, cmd, args)
		},
	}
}

func runAvg(opts *RootOptions, cmd *cobra.Command, args []string) error {
	s, named, err := analyze(opts, cmd, args)
	if err != nil {
		return err
	}

	rows, err := present.Averages(named)
	if err != nil {
		return s.formatter.Fail("failed to compute averages", err)
	}

	return s.publish(cmd, named, rows, func(w io.Writer) error {
		return present.WriteAverages(w, rows)
	})
}
