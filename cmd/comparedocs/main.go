// Command comparedocs scores documents against a reference document by
// TF-IDF cosine similarity.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/comparedocs/internal/adapters/driven/config/file"
	"github.com/custodia-labs/comparedocs/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/comparedocs/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/comparedocs/internal/adapters/driving/cli"
	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driving"
	"github.com/custodia-labs/comparedocs/internal/core/services"
	"github.com/custodia-labs/comparedocs/internal/extractors/docx"
	"github.com/custodia-labs/comparedocs/internal/extractors/eml"
	"github.com/custodia-labs/comparedocs/internal/extractors/html"
	"github.com/custodia-labs/comparedocs/internal/extractors/markdown"
	"github.com/custodia-labs/comparedocs/internal/extractors/pdf"
	"github.com/custodia-labs/comparedocs/internal/extractors/plaintext"
	"github.com/custodia-labs/comparedocs/internal/postprocessors"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// bootstrap opens the config store and returns the services the CLI uses.
func bootstrap(opts cli.BootstrapOptions) (driving.SettingsService, cli.ComparisonServiceFactory, error) {
	var store driven.ConfigStore
	if opts.InMemory {
		store = memory.NewConfigStore()
	} else {
		fileStore, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open config: %w", err)
		}
		store = fileStore
	}

	return services.NewSettingsService(store), newComparisonService, nil
}

func newComparisonService(settings domain.AppSettings) driving.ComparisonService {
	loader := filesystem.NewLoader(
		newExtractorRegistry(settings.Extraction),
		filesystem.WithPipeline(postprocessors.NewDefaultPipeline(settings.PostProcess)),
	)
	return services.NewComparisonService(loader, services.WithConcurrency(settings.Compare.Concurrency))
}

func newExtractorRegistry(settings domain.ExtractionSettings) *services.ExtractorRegistry {
	return services.NewExtractorRegistry(
		plaintext.New(),
		markdown.New(),
		html.New(),
		docx.New(),
		eml.New(),
		pdf.New(settings.PDFToText),
	)
}
