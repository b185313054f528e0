// Package cli implements the comparedocs command line with cobra.
// Services are injected by main through SetBootstrap, or directly with
// the Set* functions in tests.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driving"
	"github.com/custodia-labs/comparedocs/internal/logger"
)

var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
	noConfig  bool
)

// Injected services.
var (
	settingsService   driving.SettingsService
	comparisonFactory ComparisonServiceFactory
	bootstrap         Bootstrap
)

// ComparisonServiceFactory builds a comparison service for the effective
// settings of one invocation (flags already applied).
type ComparisonServiceFactory func(settings domain.AppSettings) driving.ComparisonService

// BootstrapOptions carries the persistent flags needed to build services.
type BootstrapOptions struct {
	// ConfigDir overrides the configuration directory.
	ConfigDir string

	// InMemory skips the config file and uses defaults.
	InMemory bool
}

// Bootstrap builds the services once flags have been parsed.
type Bootstrap func(opts BootstrapOptions) (driving.SettingsService, ComparisonServiceFactory, error)

var rootCmd = &cobra.Command{
	Use:   "comparedocs",
	Short: "Score documents against a reference by TF-IDF cosine similarity",
	Long: `comparedocs compares candidate documents against a reference document.

Each candidate is scored by the cosine between the reference's term counts
and its TF-IDF weights against that candidate. Plain text, Markdown, HTML,
DOCX, EML and PDF (via pdftotext) are supported.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.comparedocs)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "ignore the config file and use defaults")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap sets the function that builds services before each command.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetSettingsService sets the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetComparisonServiceFactory sets the comparison service factory.
func SetComparisonServiceFactory(f ComparisonServiceFactory) {
	comparisonFactory = f
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())

	if bootstrap != nil {
		settings, factory, err := bootstrap(BootstrapOptions{
			ConfigDir: configDir,
			InMemory:  noConfig,
		})
		if err != nil {
			return fmt.Errorf("initialise: %w", err)
		}
		settingsService, comparisonFactory = settings, factory
	}

	enable := verbose
	if !enable && settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			enable = s.Verbose
		}
	}
	logger.SetVerbose(enable)
	return nil
}
