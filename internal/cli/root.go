package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stackcraft-dev/stackcraft/internal/branding"
	"github.com/stackcraft-dev/stackcraft/internal/config"
	"github.com/stackcraft-dev/stackcraft/internal/create"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

// logger is configured by the root command before any subcommand runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: branding.CLIName()})

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [dir]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new web project from composable templates.

The common overlay, the chosen template and any selected tools are layered into
the target directory, package.json is merged and patched, and the AGENTS.md
fragments contributed by each layer are merged into one document.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		return configureLogger(config.Get(config.KeyLogLevel), verbose)
	},
	RunE: runCreate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every step at debug level")
}

// configureLogger applies the configured level; --verbose forces debug.
func configureLogger(level string, verbose bool) error {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return nil
	}
	if level == "" {
		level = "warn"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", config.KeyLogLevel, level, err)
	}
	logger.SetLevel(lvl)
	return nil
}

// Execute runs the root command with build info injected via ldflags. A
// cancelled run is not an error.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if errors.Is(err, create.ErrCancelled) {
		return nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", failure("error:"), err)
	}
	return err
}
