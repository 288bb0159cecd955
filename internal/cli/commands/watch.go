package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long to wait after the last event before re-checking.
const watchDebounce = 100 * time.Millisecond

// watchFiles re-checks paths whenever they change until ctx is cancelled.
// Parent directories are watched so editors that replace files on save are
// still seen.
func watchFiles(ctx context.Context, c *CommandContext, paths []string, assign bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched, err := watchTargets(paths)
	if err != nil {
		return err
	}
	dirs := make([]string, 0, len(watched))
	for _, abs := range watched {
		dir := filepath.Dir(abs)
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	r := c.Renderer
	r.Muted(fmt.Sprintf("Watching %d files for changes (Ctrl+C to stop)", len(paths)))

	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path, relevant := matchEvent(event, paths, watched)
			if !relevant {
				continue
			}
			c.Logger.Debug("file changed", "path", path, "op", event.Op.String())
			pending[path] = true

			// Debounce
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(watchDebounce)
			fire = timer.C

		case <-fire:
			fire = nil
			var changed []string
			for _, p := range paths {
				if pending[p] {
					changed = append(changed, p)
				}
			}
			clear(pending)

			results, err := checkFiles(ctx, c, changed, assign)
			if err != nil {
				r.Error("", err)
				continue
			}
			renderCheckResults(r, results)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.Logger.Error("watcher error", "error", err)
		}
	}
}

// watchTargets resolves paths to absolute form, index-aligned with paths.
func watchTargets(paths []string) ([]string, error) {
	abs := make([]string, len(paths))
	for i, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		abs[i] = a
	}
	return abs, nil
}

// matchEvent maps a write or create event to the argument path it concerns.
func matchEvent(event fsnotify.Event, paths, watched []string) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return "", false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}
	i := slices.Index(watched, name)
	if i < 0 {
		return "", false
	}
	return paths[i], true
}
