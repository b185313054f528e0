package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driving"
	"github.com/custodia-labs/comparedocs/internal/logger"
)

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// watchAndCompare runs the comparison, then again after every burst of
// changes to an input file, until ctx is cancelled. Comparison errors
// are reported and watching continues.
func watchAndCompare(
	ctx context.Context,
	cmd *cobra.Command,
	svc driving.ComparisonService,
	settings *domain.AppSettings,
	reference string,
	candidates []string,
) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	watched, dirs, err := watchTargets(append([]string{reference}, candidates...))
	if err != nil {
		return err
	}
	// Directories rather than files, so editors that save by rename are seen.
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	run := func() {
		err := compareAndRender(ctx, cmd.OutOrStdout(), svc, settings.Output, reference, candidates)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	}

	run()
	cmd.PrintErrf("Watching %d files for changes (Ctrl+C to stop)\n", len(watched))

	return watchLoop(ctx, watcher.Events, watcher.Errors, watched, settings.Watch.Debounce, func() {
		fmt.Fprintln(cmd.OutOrStdout())
		run()
	})
}

// watchLoop calls rerun once per burst of relevant events, after debounce
// of quiet. It returns nil when ctx is cancelled or events closes, and the
// first watcher error otherwise.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	watched map[string]struct{},
	debounce time.Duration,
	rerun func(),
) error {
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !isRelevantEvent(event, watched) {
				continue
			}
			logger.Debug("watch: %s", event)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			return fmt.Errorf("watch: %w", err)

		case <-timerC:
			timerC = nil
			rerun()
		}
	}
}

// watchTargets resolves paths to absolute form and returns them with
// their distinct parent directories, in first-seen order.
func watchTargets(paths []string) (map[string]struct{}, []string, error) {
	watched := make(map[string]struct{}, len(paths))
	seenDirs := make(map[string]struct{})
	var dirs []string

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidPath, p, err)
		}
		watched[abs] = struct{}{}

		dir := filepath.Dir(abs)
		if _, ok := seenDirs[dir]; !ok {
			seenDirs[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}
	return watched, dirs, nil
}

// isRelevantEvent reports whether event changes the content of a watched file.
// Permission-only changes are ignored.
func isRelevantEvent(event fsnotify.Event, watched map[string]struct{}) bool {
	if event.Op&relevantOps == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := watched[abs]
	return ok
}
