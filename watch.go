package xrm

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadFunc receives the freshly loaded database after a change.
type ReloadFunc func(*Database)

// Watcher reloads a set of resource files whenever one of them is
// written to and hands the resulting database to a callback. Files
// after the first are combined with override, mirroring the default
// loading chain.
type Watcher struct {
	files      []string
	watcher    *fsnotify.Watcher
	logger     *zap.Logger
	onReload   ReloadFunc
	isWatching bool
}

// NewWatcher creates a watcher over the given files. logger may be nil.
func NewWatcher(files []string, logger *zap.Logger, onReload ReloadFunc) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		files:    files,
		watcher:  fsw,
		logger:   logger,
		onReload: onReload,
	}, nil
}

// Start performs an initial load, registers the files with the
// watcher, and begins watching in the background.
func (w *Watcher) Start() error {
	if w.isWatching {
		return fmt.Errorf("already watching")
	}

	for _, file := range w.files {
		if err := w.watcher.Add(file); err != nil {
			return fmt.Errorf("error adding file to watcher: %w", err)
		}
	}

	w.reload()
	w.isWatching = true
	go w.watchLoop()
	return nil
}

// Stop ends watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	w.isWatching = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for w.isWatching {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Error("watcher error", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write == fsnotify.Write {
		// wait for a while after file change to consider multiple changes as one
		time.Sleep(100 * time.Millisecond)
		// events queued during the wait are covered by the reload below
		for pending := true; pending; {
			select {
			case _, ok := <-w.watcher.Events:
				pending = ok
			default:
				pending = false
			}
		}
		w.reload()
	}
}

func (w *Watcher) reload() {
	db := NewDatabase()
	db.SetLogger(w.logger)
	if err := db.LoadFile(w.files[0]); err != nil && w.logger != nil {
		w.logger.Error("reload failed", zap.String("file", w.files[0]), zap.Error(err))
	}
	for _, file := range w.files[1:] {
		other, err := DatabaseFromFile(file)
		if err != nil {
			if w.logger != nil {
				w.logger.Warn("skipping unreadable file", zap.String("file", file), zap.Error(err))
			}
			continue
		}
		db.Combine(other, true)
	}
	if w.onReload != nil {
		w.onReload(db)
	}
}
