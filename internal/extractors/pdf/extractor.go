// Package pdf extracts text from PDF documents by shelling out to
// pdftotext from poppler-utils.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// DefaultBinary is the pdftotext executable looked up on PATH.
const DefaultBinary = "pdftotext"

// CommandRunner runs an external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return out, err
}

// Extractor handles PDF documents.
type Extractor struct {
	binary   string
	runner   CommandRunner
	lookPath func(file string) (string, error)
}

// New creates a PDF extractor that runs binary, or pdftotext when empty.
func New(binary string) *Extractor {
	return NewWithRunner(binary, execRunner{})
}

// NewWithRunner creates a PDF extractor with a custom command runner.
func NewWithRunner(binary string, runner CommandRunner) *Extractor {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Extractor{
		binary:   binary,
		runner:   runner,
		lookPath: exec.LookPath,
	}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract converts the PDF to UTF-8 text.
func (e *Extractor) Extract(ctx context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	path, err := e.lookPath(e.binary)
	if err != nil {
		return "", fmt.Errorf("%w: %s (%s)", domain.ErrExtractorToolNotFound, e.binary, InstallInstructions())
	}

	tmp, err := os.CreateTemp("", "comparedocs-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw.Content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}

	out, err := e.runner.Run(ctx, path, "-enc", "UTF-8", "-q", tmp.Name(), "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext failed for %s: %w", raw.URI, err)
	}

	// pdftotext separates pages with form feeds.
	text := strings.ReplaceAll(string(out), "\f", "\n")
	return strings.TrimSpace(text), nil
}

// CheckAvailable reports whether binary can be found on PATH.
func CheckAvailable(binary string) error {
	if binary == "" {
		binary = DefaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrExtractorToolNotFound, binary)
	}
	return nil
}

// InstallInstructions describes how to install pdftotext.
func InstallInstructions() string {
	return "install pdftotext: brew install poppler (macOS) or apt install poppler-utils (Debian/Ubuntu)"
}
