package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/comparedocs/internal/extractors/pdf"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change comparedocs settings.

Settings are stored in config.toml inside the config directory and can be
overridden per run with compare flags.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Change a single setting and save it.

Keys:
  compare.concurrency   candidates scored in parallel (1-64)
  output.format         table or json
  output.precision      decimal places in tables (0-12)
  extractors.pdftotext  pdftotext binary name or path
  postprocess.dehyphenate_types
                        comma-separated MIME types whose hyphenated line
                        breaks are rejoined (empty disables)
  watch.debounce_ms     quiet period before re-running in watch mode (0-60000)
  logging.verbose       true or false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Compare]")
	cmd.Printf("  Concurrency: %d\n", settings.Compare.Concurrency)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())
	cmd.Printf("  Precision: %d\n", settings.Output.Precision)
	cmd.Println()

	cmd.Println("[Extractors]")
	status := "available"
	if err := pdf.CheckAvailable(settings.Extraction.PDFToText); err != nil {
		status = "not found"
	}
	cmd.Printf("  pdftotext: %s (%s)\n", settings.Extraction.PDFToText, status)
	cmd.Println()

	cmd.Println("[Post-processing]")
	dehyphenate := strings.Join(settings.PostProcess.DehyphenateTypes, ", ")
	if dehyphenate == "" {
		dehyphenate = "off"
	}
	cmd.Printf("  Dehyphenate: %s\n", dehyphenate)
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Debounce: %s\n", settings.Watch.Debounce)
	cmd.Println()

	cmd.Println("[Logging]")
	cmd.Printf("  Verbose: %s\n", yesNo(settings.Verbose))

	if status != "available" {
		cmd.Println()
		cmd.Printf("Note: PDF documents cannot be compared; %s.\n", pdf.InstallInstructions())
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w (valid keys: %s)",
			key, err, strings.Join(settingsService.Keys(), ", "))
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
