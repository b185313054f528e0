package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
)

// Width of the rank and score columns plus borders.
const fixedColumnsWidth = 28

// comparisonReport is the JSON shape of a comparison.
type comparisonReport struct {
	Reference string         `json:"reference"`
	Scores    []domain.Score `json:"scores"`
}

func renderResult(w io.Writer, reference string, result domain.ComparisonResult, output domain.OutputSettings) error {
	if output.Format == domain.OutputFormatJSON {
		return renderJSON(w, reference, result)
	}
	_, err := fmt.Fprintln(w, renderScoreTable(w, reference, result, output.Precision))
	return err
}

func renderJSON(w io.Writer, reference string, result domain.ComparisonResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(comparisonReport{Reference: reference, Scores: result.Ranked()}); err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return nil
}

// renderScoreTable ranks results by descending score. Rounded borders
// are used on terminals and plain ASCII otherwise.
func renderScoreTable(w io.Writer, reference string, result domain.ComparisonResult, precision int) string {
	tw := table.NewWriter()
	tw.SetTitle("Reference: %s", reference)
	tw.AppendHeader(table.Row{"#", "Document", "Score"})

	for i, s := range result.Ranked() {
		tw.AppendRow(table.Row{i + 1, s.Name, strconv.FormatFloat(s.Value, 'f', precision, 64)})
	}

	nameColumn := table.ColumnConfig{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
	if width, ok := terminalWidth(w); ok {
		tw.SetStyle(table.StyleRounded)
		if width > fixedColumnsWidth+10 {
			nameColumn.WidthMax = width - fixedColumnsWidth
		}
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignRight},
		nameColumn,
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})

	return tw.Render()
}

// terminalWidth reports the column count when w is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, true
	}
	return width, true
}
