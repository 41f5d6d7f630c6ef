package colorscan

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for changes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Watch calls onChange once changes under config.Root have settled for
// debounce, until ctx is cancelled. Only changes to files that take part in a
// scan trigger a run. An error from onChange stops the watch.
func Watch(ctx context.Context, config Config, debounce time.Duration, onChange func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	w := newWalker(config)
	if err := addWatchDirs(watcher, w, config.Root); err != nil {
		return err
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addWatchDirs(watcher, w, event.Name); err != nil {
						slog.Warn("cannot watch directory", "path", event.Name, "error", err)
					}
					continue
				}
			}
			if event.Has(fsnotify.Chmod) {
				continue
			}
			if !w.UsageEligible(event.Name) && !w.VariableEligible(event.Name) {
				continue
			}
			slog.Debug("change detected", "path", event.Name, "op", event.Op.String())
			pending = true
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)

		case <-timer.C:
			if !pending || ctx.Err() != nil {
				continue
			}
			pending = false
			if err := onChange(); err != nil {
				return err
			}
		}
	}
}

// addWatchDirs registers root and every directory below it that is not
// excluded.
func addWatchDirs(watcher *fsnotify.Watcher, w *walker, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.config.Root && w.ignored(path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
