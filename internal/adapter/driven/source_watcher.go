package driven

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// SourceFileWatcher reports changes to the source list file made outside the
// process, e.g. by a user editing it by hand.
//
// The parent directory is watched rather than the file: the repository replaces
// the file by rename, which would drop a watch on the file itself.
type SourceFileWatcher struct {
	path     string
	onChange func(ctx context.Context)
	debounce time.Duration
	logger   *slog.Logger
}

// NewSourceFileWatcher creates a watcher for path. onChange runs once per burst
// of events, after the debounce interval has passed without new events.
func NewSourceFileWatcher(path string, onChange func(ctx context.Context), logger *slog.Logger) *SourceFileWatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &SourceFileWatcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		debounce: defaultDebounce,
		logger:   logger,
	}
}

// WithDebounce overrides the debounce interval.
func (w *SourceFileWatcher) WithDebounce(d time.Duration) *SourceFileWatcher {
	w.debounce = d
	return w
}

// Run watches until ctx is done. It returns an error only if the watch cannot
// be set up.
func (w *SourceFileWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch source list directory: %w", err)
	}

	w.logger.Info("watching source list for changes", "path", w.path)

	var (
		mu            sync.Mutex
		debounceTimer *time.Timer
		wg            sync.WaitGroup
	)
	defer func() {
		mu.Lock()
		if debounceTimer != nil && debounceTimer.Stop() {
			wg.Done()
		}
		mu.Unlock()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("source list watcher stopped", "path", w.path)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Debug("source list changed", "path", w.path, "op", event.Op.String())

			mu.Lock()
			if debounceTimer != nil && debounceTimer.Stop() {
				wg.Done()
			}
			wg.Add(1)
			debounceTimer = time.AfterFunc(w.debounce, func() {
				defer wg.Done()
				if ctx.Err() != nil {
					return
				}
				w.onChange(ctx)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("source list watcher error", "path", w.path, "error", err)
		}
	}
}
