package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const settleDelay = 100 * time.Millisecond

// Watcher reports changes to one config file. The parent directory is
// watched so that atomic replacements (write to temp, rename) are seen.
type Watcher struct {
	w    *fsnotify.Watcher
	name string
}

// NewWatcher starts watching path. Changes made after it returns are
// reported by Run.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}

	return &Watcher{w: w, name: abs}, nil
}

// Run calls onChange once per burst of events on the file, until ctx is
// done or the watcher fails. It closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer func() { _ = w.w.Close() }()

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if ev.Name != w.name || ev.Op == fsnotify.Chmod {
				continue
			}
			settle.Reset(settleDelay)

		case <-settle.C:
			onChange()

		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch config: %w", err)
		}
	}
}
