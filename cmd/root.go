package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/gapwg/gaplint/internal/assets"
	"github.com/gapwg/gaplint/internal/gap"
	"github.com/gapwg/gaplint/pkg/buildinfo"
	"github.com/gapwg/gaplint/pkg/config"
	"github.com/gapwg/gaplint/pkg/exitcode"
	"github.com/gapwg/gaplint/pkg/logger"
	"github.com/gapwg/gaplint/pkg/safeio"
	"github.com/gapwg/gaplint/pkg/schema"
	"github.com/spf13/cobra"
)

// usageErr marks argument and target errors; reported without a directory
// prefix and mapped to the usage exit code.
type usageErr struct{ err error }

func (e *usageErr) Error() string { return e.err.Error() }
func (e *usageErr) Unwrap() error { return e.err }

// startupErr marks config and schema-compilation failures that abort the run
// before any directory is processed.
type startupErr struct{ err error }

func (e *startupErr) Error() string { return e.err.Error() }
func (e *startupErr) Unwrap() error { return e.err }

// fsErr marks filesystem failures outside per-directory validation.
type fsErr struct{ err error }

func (e *fsErr) Error() string { return e.err.Error() }
func (e *fsErr) Unwrap() error { return e.err }

// newRootCommand creates a fresh root command instance.
// This factory pattern allows tests to create isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gaplint [gap-directory]",
		Short: "Validate GAP proposal directories",
		Long: `Gaplint enforces the structural conventions of GAP proposal directories:
naming pattern, README presence, and a metadata.yml that satisfies the GAP
metadata schema plus its semantic rules (author format, sponsor handle,
discussion URL).

With no argument, every GAP-* directory under the repository root is
validated in sequence; the first failure stops the run.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &usageErr{fmt.Errorf("expected at most one GAP directory argument, got %d", len(args))}
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeLogger(cmd)
		},
		RunE:          runLint,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().String("log-level", "info", "Set log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Lint flags
	cmd.Flags().String("root", "", "Repository root scanned in discovery mode (default: config or '.')")
	cmd.Flags().String("schema", "", "Path to a metadata schema overriding the embedded one")
	cmd.Flags().String("pattern", "", "Glob proposal directories must match during discovery (default: GAP-*)")

	cmd.Version = buildinfo.BinaryVersion
	cmd.SetVersionTemplate("gaplint {{.Version}}\n")

	return cmd
}

// registerSubcommands adds all subcommands to the root command.
func registerSubcommands(cmd *cobra.Command) {
	cmd.AddCommand(newVersionCommand())
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

func init() {
	registerSubcommands(rootCmd)
}

// Execute runs the root command. It alone decides on process termination:
// validators below return ordinary errors, classified here into exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	var gerr *gap.Error
	if errors.As(err, &gerr) {
		return exitcode.ValidationError
	}
	var uerr *usageErr
	if errors.As(err, &uerr) {
		return exitcode.UsageError
	}
	var serr *startupErr
	if errors.As(err, &serr) {
		return exitcode.ConfigError
	}
	var ferr *fsErr
	if errors.As(err, &ferr) {
		return exitcode.FileSystemError
	}
	return exitcode.GeneralError
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return &startupErr{err}
	}
	if v, _ := cmd.Flags().GetString("root"); v != "" {
		cfg.Root = v
	}
	if v, _ := cmd.Flags().GetString("schema"); v != "" {
		cfg.Schema = v
	}
	if v, _ := cmd.Flags().GetString("pattern"); v != "" {
		cfg.Pattern = v
	}

	// The schema is compiled once before any directory is touched; a compile
	// failure aborts startup and carries no directory context.
	validator, err := buildValidator(cfg)
	if err != nil {
		return &startupErr{err}
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		target := args[0]
		info, err := os.Stat(target)
		if err != nil {
			return &usageErr{fmt.Errorf("target does not exist: %s", target)}
		}
		if !info.IsDir() {
			return &usageErr{fmt.Errorf("target is not a directory: %s", target)}
		}
		if err := validator.ValidateDir(target); err != nil {
			return err
		}
		fmt.Fprintf(out, "✅ %s is valid\n", gap.BaseName(target))
		return nil
	}

	candidates, err := gap.Discover(cfg.Root, cfg.Pattern)
	if err != nil {
		return &fsErr{err}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("No GAP directories found in %s", cfg.Root)
	}

	fmt.Fprintf(out, "Found %d GAP directories\n", len(candidates))
	for _, c := range candidates {
		logger.Debug("validating directory", logger.String("dir", c.Name))
		if err := validator.ValidateDir(c.Path); err != nil {
			return err
		}
		fmt.Fprintf(out, "✅ %s is valid\n", c.Name)
	}
	return nil
}

func buildValidator(cfg *config.Config) (*gap.Validator, error) {
	schemaBytes := assets.MetadataSchema()
	if cfg.Schema != "" {
		cleanPath, err := safeio.CleanUserPath(cfg.Schema)
		if err != nil {
			return nil, fmt.Errorf("invalid schema path %s: %w", cfg.Schema, err)
		}
		schemaBytes, err = os.ReadFile(cleanPath) // #nosec G304 -- cleanPath sanitized with safeio.CleanUserPath
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file %s: %w", cleanPath, err)
		}
	}
	sv, err := schema.NewValidatorFromBytes(schemaBytes)
	if err != nil {
		return nil, err
	}
	return gap.NewValidator(sv), nil
}

// initializeLogger sets up the logger based on command flags
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg := logger.Config{
		Level:     logger.ParseLevel(logLevelStr),
		UseColor:  !noColor,
		JSON:      jsonLogs,
		Component: "gaplint",
	}
	if err := logger.Initialize(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize logger:", err)
		os.Exit(exitcode.ConfigError)
	}
}
