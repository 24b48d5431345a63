// Package cli implements the prodgraph command tree.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/prodgraph/internal/config"
	"github.com/katalvlaran/prodgraph/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat indicates an --output value other than json or yaml.
var ErrUnknownFormat = errors.New("cli: unknown output format")

// RootOptions holds the persistent flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Output     string
	Seed       int64
}

// appContext carries initialised dependencies to subcommands.
type appContext struct {
	Config *config.Config
	Logger logging.Logger
	Output string
}

type appContextKey struct{}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "prodgraph",
		Short: "Plan production chains and group them into factory clusters",
		Long: "prodgraph resolves production targets against a recipe catalog into a\n" +
			"flow graph of items and rates, and partitions that graph into clusters\n" +
			"that keep heavy flows local (k-means over a force layout, or a genetic search).",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
	pf.StringVarP(&opts.Output, "output", "o", FormatJSON, "output format (json, yaml)")
	pf.Int64Var(&opts.Seed, "seed", 0, "random seed for optimizers; 0 draws a fresh seed; overrides config")

	cmd.AddCommand(
		newValidateCommand(),
		newResolveCommand(),
		newPlanCommand(),
		newVersionCommand(),
	)

	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	if opts.Output != FormatJSON && opts.Output != FormatYAML {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Output)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.Seed
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appContextKey{}, &appContext{
		Config: cfg,
		Logger: logger.Named("cli"),
		Output: opts.Output,
	}))

	return nil
}

// fromCommand returns the context stored by persistentPreRun.
func fromCommand(cmd *cobra.Command) *appContext {
	if app, ok := cmd.Context().Value(appContextKey{}).(*appContext); ok {
		return app
	}

	return &appContext{Config: config.Default(), Logger: logging.NewNopLogger(), Output: FormatJSON}
}

// printResult encodes v to w in the selected format.
func printResult(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "prodgraph %s (commit: %s, built: %s)\n", Version, GitCommit, BuildDate)
			return err
		},
	}
}

// openOutput returns a writer for path; "-" means the command's stderr, which
// keeps stdout a single JSON or YAML document.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "-" {
		return cmd.ErrOrStderr(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
