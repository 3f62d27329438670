package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/protstat/internal/present"
)

// HistOptions holds flags for the hist command.
type HistOptions struct {
	*RootOptions
	Bins  int
	Limit int
}

// NewHistCommand creates the hist command.
func NewHistCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "hist [database...]",
		Short: "Print a sequence length histogram per database",
		Long: `Print a histogram of sequence lengths for each database, with mean and
median markers. Lengths above --limit are counted separately.

Example:
  protstat hist --limit 1500 --bins 30 human.fasta`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHist(opts, cmd, args)
		},
	}

	cmd.Flags().IntVarP(&opts.Bins, "bins", "b", 0, "number of bins (default from config, 50)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 0, "protein length limit (default from config, 3000)")

	return cmd
}

func runHist(opts *HistOptions, cmd *cobra.Command, args []string) error {
	s, named, err := analyze(opts.RootOptions, cmd, args)
	if err != nil {
		return err
	}

	bins, limit := s.cfg.Histogram.Bins, s.cfg.Histogram.Limit
	if opts.Bins != 0 {
		bins = opts.Bins
	}
	if opts.Limit != 0 {
		limit = opts.Limit
	}

	hists := make([]*present.Histogram, 0, len(named))
	for _, n := range named {
		h, err := present.BuildHistogram(n, bins, limit)
		if err != nil {
			return s.formatter.Fail("failed to build histogram for "+n.Label, err)
		}
		hists = append(hists, h)
	}

	return s.publish(cmd, named, hists, func(w io.Writer) error {
		for i, h := range hists {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := present.WriteHistogram(w, h); err != nil {
				return err
			}
		}
		return nil
	})
}
