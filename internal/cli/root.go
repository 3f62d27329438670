package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/protstat/internal/config"
)

// RootOptions holds global flags for all commands.
// Empty values fall back to the config file, then to built-in defaults.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	StorePath  string
	Delimiter  string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the protstat CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "protstat",
		Short: "protstat - protein database statistics",
		Long: `Compute per-database statistics for FASTA-style protein databases:
sequence lengths, mean and sample standard deviation of length, and
amino-acid symbol frequencies.

Databases are file paths; "-" (the default) reads standard input.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "" && !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (json|text), default from config or text")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ./"+config.DefaultPath+" if present)")
	cmd.PersistentFlags().StringVar(&opts.StorePath, "db", "", "SQLite history database; reports are recorded when set")
	cmd.PersistentFlags().StringVar(&opts.Delimiter, "delimiter", "", "record-start character (default >)")

	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewFreqsCommand(opts))
	cmd.AddCommand(NewAvgCommand(opts))
	cmd.AddCommand(NewHistCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// settings loads the config file and applies flag overrides.
func (o *RootOptions) settings() (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	if o.Format != "" {
		cfg.Format = o.Format
	}
	if o.Delimiter != "" {
		cfg.Delimiter = o.Delimiter
	}
	if o.StorePath != "" {
		cfg.Store.Path = o.StorePath
	}

	if err := config.Validate(cfg); err != nil {
		return nil, &config.Error{Path: "flags", Message: "invalid settings", Err: err}
	}
	return cfg, nil
}

// configureLogging installs the default slog handler on w.
func configureLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
