package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driving"
	"github.com/custodia-labs/comparedocs/internal/logger"
)

var (
	compareJSON        bool
	comparePrecision   int
	compareConcurrency int
	compareWatch       bool
)

var compareCmd = &cobra.Command{
	Use:   "compare REFERENCE CANDIDATE...",
	Short: "Compare candidate documents against a reference",
	Long: `Scores every CANDIDATE against REFERENCE and prints the results ranked
by score. Results are keyed by file name without extension; when two
candidates share a name the later one wins.

Scores are not clamped: a candidate identical to the reference scores -1.`,
	Example: `  comparedocs compare notes.md draft.md final.docx
  comparedocs compare --json report.pdf a.txt b.txt
  comparedocs compare --watch design.md drafts/*.md`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "output results as JSON")
	compareCmd.Flags().IntVarP(&comparePrecision, "precision", "p", 4, "decimal places shown in the table")
	compareCmd.Flags().IntVarP(&compareConcurrency, "concurrency", "j", 1, "candidates scored in parallel")
	compareCmd.Flags().BoolVarP(&compareWatch, "watch", "w", false, "re-run when an input file changes")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if comparisonFactory == nil {
		return errors.New("comparison service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := applyCompareFlags(cmd, settings); err != nil {
		return err
	}

	svc := comparisonFactory(*settings)
	reference, candidates := args[0], args[1:]

	if compareWatch {
		return watchAndCompare(cmd.Context(), cmd, svc, settings, reference, candidates)
	}
	return compareAndRender(cmd.Context(), cmd.OutOrStdout(), svc, settings.Output, reference, candidates)
}

// applyCompareFlags overrides configured settings with explicitly set flags.
func applyCompareFlags(cmd *cobra.Command, settings *domain.AppSettings) error {
	flags := cmd.Flags()

	if flags.Changed("json") {
		settings.Output.Format = domain.OutputFormatTable
		if compareJSON {
			settings.Output.Format = domain.OutputFormatJSON
		}
	}

	if flags.Changed("precision") {
		if comparePrecision < domain.MinPrecision || comparePrecision > domain.MaxPrecision {
			return fmt.Errorf("%w: --precision must be between %d and %d",
				domain.ErrInvalidSetting, domain.MinPrecision, domain.MaxPrecision)
		}
		settings.Output.Precision = comparePrecision
	}

	if flags.Changed("concurrency") {
		if compareConcurrency < domain.MinConcurrency || compareConcurrency > domain.MaxConcurrency {
			return fmt.Errorf("%w: --concurrency must be between %d and %d",
				domain.ErrInvalidSetting, domain.MinConcurrency, domain.MaxConcurrency)
		}
		settings.Compare.Concurrency = compareConcurrency
	}

	return nil
}

func compareAndRender(
	ctx context.Context,
	w io.Writer,
	svc driving.ComparisonService,
	output domain.OutputSettings,
	reference string,
	candidates []string,
) error {
	done := logger.Timed("compare")
	result, err := svc.Compare(ctx, reference, candidates)
	done()
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}
	return renderResult(w, reference, result, output)
}
