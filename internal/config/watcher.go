package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file into a Store when it changes on disk.
// It watches the file's directory rather than the file itself, because
// most editors replace files on save (write to temp, rename over).
type Watcher struct {
	store *Store
	path  string

	fsw *fsnotify.Watcher

	// Errors holds reload/watch errors for callers that care; events are
	// dropped if nobody reads. Buffered so the watch loop never blocks.
	errorsCh chan error

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewWatcher starts watching path and applies changes to store. The file
// does not need to exist yet; it is loaded when it appears.
func NewWatcher(store *Store, path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching config directory: %w", err)
	}

	w := &Watcher{
		store:    store,
		path:     absPath,
		fsw:      fsw,
		errorsCh: make(chan error, 8),
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Errors returns a channel of watcher and reload errors.
func (w *Watcher) Errors() <-chan error {
	return w.errorsCh
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.matches(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := w.store.LoadFile(w.path); err != nil {
				w.report(err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == w.path
}

func (w *Watcher) report(err error) {
	select {
	case w.errorsCh <- err:
	default:
	}
}
