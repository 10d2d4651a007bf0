package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/contracts/pkg/logger"
	"github.com/dmitrymomot/contracts/pkg/registry"
)

// RootOptions holds global flags and the state prepared for subcommands.
// Until the root command runs its pre-run hook, Logger drops every record.
type RootOptions struct {
	File      string
	Format    string
	LogLevel  string
	LogFormat string

	registry *registry.Registry
	log      *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the contracts CLI.
func NewRootCommand(cfg Config) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Check values against parameter contracts",
		Long: `Check values against built-in parameter contracts and the membership,
range and chain contracts defined in a YAML file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.File, "file", "f", cfg.File, "contracts definition file (YAML)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", cfg.LogFormat, "log format (text|json)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// Logger returns the logger prepared from the log flags.
func (o *RootOptions) Logger() *slog.Logger {
	if o.log == nil {
		return logger.Discard()
	}
	return o.log
}

func (o *RootOptions) prepare(cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}

	level, err := logger.ParseLevel(o.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(o.LogFormat)
	if err != nil {
		return err
	}
	o.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("cli")),
	)

	if o.File == "" {
		o.registry, err = registry.Build(registry.Definitions{})
		return err
	}

	o.registry, err = registry.LoadFile(o.File)
	if err != nil {
		return err
	}
	o.Logger().Debug("contracts loaded", slog.String("file", o.File), slog.Int("count", len(o.registry.Names())))
	return nil
}
