// Package watch reports changes to lintable files under a set of directories.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/biome/pkg/parser"
)

// DefaultDebounce is the quiet period before a batch of changes is reported.
const DefaultDebounce = 100 * time.Millisecond

// Options configures a watcher.
type Options struct {
	// Dirs are watched recursively.
	Dirs     []string
	Debounce time.Duration
	Logger   *slog.Logger
	// ready, when set, is closed once every directory is watched.
	ready chan struct{}
}

// Watch blocks until ctx is done. After each burst of writes it calls
// onChange with the sorted, deduplicated paths of the changed files.
func Watch(ctx context.Context, opts Options, onChange func(ctx context.Context, paths []string)) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range opts.Dirs {
		if err := watchDir(watcher, dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	if opts.ready != nil {
		close(opts.ready)
	}
	logger.Debug("watching for changes", slog.Int("dirs", len(opts.Dirs)))

	pending := make(map[string]bool)
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchDir(watcher, event.Name); err != nil {
						logger.Warn("failed to watch new directory", slog.String("dir", event.Name), slog.Any("error", err))
					}
					continue
				}
			}
			if _, ok := parser.LanguageForPath(event.Name); !ok {
				continue
			}
			pending[event.Name] = true
			timer.Reset(debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(pending)
			logger.Debug("change detected", slog.Int("files", len(paths)))
			onChange(ctx, paths)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				logger.Warn("watcher dropped events", slog.Any("error", err))
				continue
			}
			logger.Error("watcher error", slog.Any("error", err))
		}
	}
}

// watchDir adds dir and its subdirectories, skipping node_modules and
// hidden directories.
func watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != dir && (name == "node_modules" || (len(name) > 0 && name[0] == '.')) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
