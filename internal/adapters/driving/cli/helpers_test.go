package cli

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/comparedocs/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driving"
	"github.com/custodia-labs/comparedocs/internal/core/services"
	"github.com/custodia-labs/comparedocs/internal/logger"
)

// syncBuffer is a bytes.Buffer safe for concurrent writers and readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var flagNames = map[*cobra.Command][]string{
	compareCmd: {"json", "precision", "concurrency", "watch"},
	versionCmd: {"short"},
}

var persistentFlagNames = []string{"verbose", "config-dir", "no-config"}

// resetCLI restores flags, injected services and command contexts.
func resetCLI() {
	for cmd, names := range flagNames {
		for _, name := range names {
			f := cmd.Flags().Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	for _, name := range persistentFlagNames {
		f := rootCmd.PersistentFlags().Lookup(name)
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	settingsService = nil
	comparisonFactory = nil
	bootstrap = nil
	setContextAll(rootCmd, context.Background())

	rootCmd.SetArgs(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	logger.SetVerbose(false)
	logger.SetOutput(os.Stderr)
}

// setContextAll sets ctx on cmd and every descendant. Cobra only copies
// the root context into a subcommand that has none yet.
func setContextAll(cmd *cobra.Command, ctx context.Context) {
	cmd.SetContext(ctx)
	for _, c := range cmd.Commands() {
		setContextAll(c, ctx)
	}
}

func executeContext(t *testing.T, ctx context.Context, out *syncBuffer, args ...string) error {
	t.Helper()
	t.Cleanup(resetCLI)

	setContextAll(rootCmd, ctx)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(syncBuffer)
	err := executeContext(t, context.Background(), out, args...)
	return out.String(), err
}

// factoryRecorder builds comparison services over an in-memory loader and
// remembers the settings it was called with.
type factoryRecorder struct {
	loader *memory.DocumentLoader
	calls  []domain.AppSettings
}

func (f *factoryRecorder) build(settings domain.AppSettings) driving.ComparisonService {
	f.calls = append(f.calls, settings)
	return services.NewComparisonService(f.loader, services.WithConcurrency(settings.Compare.Concurrency))
}

// useMemoryServices injects services backed by in-memory stores.
func useMemoryServices(t *testing.T, texts map[string]string, config map[string]any) (*factoryRecorder, *memory.ConfigStore) {
	t.Helper()
	t.Cleanup(resetCLI)

	loader := memory.NewDocumentLoader()
	for path, text := range texts {
		loader.Put(path, text)
	}
	store := memory.NewConfigStore(config)
	recorder := &factoryRecorder{loader: loader}

	SetSettingsService(services.NewSettingsService(store))
	SetComparisonServiceFactory(recorder.build)
	return recorder, store
}
