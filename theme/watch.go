package theme

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/yllada/theme-toggle/common"
)

// ChangeWatcher reports changes to the stored theme made by anyone,
// including this process.
type ChangeWatcher interface {
	// Watch calls onChange after each change until ctx is done.
	Watch(ctx context.Context, onChange func()) error
}

// NewChangeWatcher returns a watcher matching the kind of kv.
func NewChangeWatcher(kv KeyStore, logger common.Logger) (ChangeWatcher, error) {
	if logger == nil {
		logger = common.NopLogger{}
	}
	if fs, ok := kv.(*FileStore); ok {
		return &FileWatcher{path: fs.Path(), logger: logger}, nil
	}
	return newPlatformWatcher(kv, logger)
}

// FileWatcher watches the FileStore's backing file.
type FileWatcher struct {
	path   string
	logger common.Logger
}

// Watch implements ChangeWatcher. The parent directory is watched so that
// atomic replacement of the file is seen.
func (w *FileWatcher) Watch(ctx context.Context, onChange func()) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsWatcher.Close()

	target := filepath.Clean(w.path)
	dir := filepath.Dir(target)
	// The directory only appears with the first write; create it so the
	// first write is seen too.
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
				w.logger.Debug("State file changed: %s", event)
				onChange()
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				onChange()
				continue
			}
			w.logger.Warn("State file watcher error: %v", err)
		}
	}
}
