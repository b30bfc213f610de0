package jobs

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"launchdash/internal/dataset"
)

// FileWatcher reloads the dataset whenever its file is written.
type FileWatcher struct {
	holder *dataset.Holder
	path   string
	load   LoadFunc
}

// NewFileWatcher creates a watcher for the dataset file at path.
func NewFileWatcher(holder *dataset.Holder, path string, load LoadFunc) *FileWatcher {
	return &FileWatcher{holder: holder, path: path, load: load}
}

// Start watches the file until ctx is cancelled.
//
// The parent directory is watched rather than the file itself so that
// editors replacing the file via rename are still observed.
func (w *FileWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target := filepath.Clean(w.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	slog.Info("dataset watcher started", "path", target)

	for {
		select {
		case <-ctx.Done():
			slog.Info("dataset watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reload(ctx, w.holder, w.load)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("dataset watcher error", "error", err)
		}
	}
}
