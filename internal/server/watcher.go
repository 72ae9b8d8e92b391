package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchSelection republishes the preview when another process, usually the
// CLI, rewrites the selection file. Bursts of events are collapsed into one
// reload.
func (s *Server) watchSelection(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create selection watcher: %w", err)
	}
	defer watcher.Close()

	path := filepath.Clean(s.app.Selections.GetPath())
	dir := filepath.Dir(path)
	// The file is replaced on every save, so the directory is watched
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			timer.Reset(s.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("selection watcher error", "error", err)
		case <-timer.C:
			s.log.Debug("selection file changed", "path", path)
			s.refreshPreview(ctx)
		}
	}
}
