package asset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"BaristaSimulator/internal/log"
)

// Watch signals on the returned channel whenever path is written, created
// or renamed into place. Signals coalesce: at most one is pending. The
// watcher stops when ctx is done.
func Watch(ctx context.Context, path string, logger *log.Logger) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("asset: watch %s: %w", path, err)
	}

	// Editors and Save replace the file, so watch the directory.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("asset: watch %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	changed := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				logger.Debugw("viewpoint asset changed", "path", event.Name, "op", event.Op.String())
				select {
				case changed <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warnw("viewpoint asset watch error", "path", path, "error", err)
			}
		}
	}()

	return changed, nil
}
