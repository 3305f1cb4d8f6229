package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// fileWatcher reports writes to a single file. The parent directory is
// watched so editors that replace the file on save are still seen.
type fileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
}

func newFileWatcher(path string) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch path: %w", err)
	}
	return &fileWatcher{path: abs, watcher: w}, nil
}

// Run calls onChange for every write or create of the file until ctx is done.
// Watcher errors go to onError and do not stop the loop.
func (f *fileWatcher) Run(ctx context.Context, onChange func(), onError func(error)) error {
	defer f.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-f.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				onChange()
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return nil
			}
			onError(err)
		}
	}
}
