// Package watch reruns a callback whenever a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 150 * time.Millisecond

// Options configures File.
type Options struct {
	Debounce time.Duration
	Logger   *log.Logger
}

// File calls onChange after every write, create or rename of path until ctx is done.
// The parent directory is watched so editors that replace the file are still seen.
// Errors from onChange are logged and do not stop the loop.
func File(ctx context.Context, path string, opt Options, onChange func() error) error {
	if opt.Debounce <= 0 {
		opt.Debounce = DefaultDebounce
	}
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard, "", 0)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch add: %w", err)
	}
	opt.Logger.Printf("watching %s", abs)

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			opt.Logger.Printf("watch stopping: %s", abs)
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fire = time.After(opt.Debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			opt.Logger.Printf("watch error: %v", err)
		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				opt.Logger.Printf("refresh %s: %v", abs, err)
			}
		}
	}
}
