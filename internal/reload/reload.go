// Package reload watches ~/.procwatch/settings.yaml and delivers the new
// settings when the file changes.
package reload

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jabbalaci/procwatch/internal/config"
	"github.com/jabbalaci/procwatch/internal/models"
)

// debounceDelay collapses the burst of events an editor save produces.
const debounceDelay = 100 * time.Millisecond

// Watcher watches the global directory for settings changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	load      func() (*models.Settings, error)
	events    chan *models.Settings
	done      chan struct{}
	stopOnce  sync.Once

	debounceMu sync.Mutex
	debounce   *time.Timer
}

// New creates a settings watcher. Nothing is watched until Start.
func New() (*Watcher, error) {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		path:      path,
		load:      config.LoadSettings,
		events:    make(chan *models.Settings, 1),
		done:      make(chan struct{}),
	}, nil
}

// Events returns the channel of reloaded settings.
func (w *Watcher) Events() <-chan *models.Settings {
	return w.events
}

// Start watches the directory holding settings.yaml. The directory is
// watched rather than the file so that atomic replace-by-rename is seen.
func (w *Watcher) Start() error {
	if err := config.EnsureGlobalDir(); err != nil {
		return err
	}
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[reload] Watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return
	}
	// Rename matters: atomic writes (write tmp, rename to target) show up
	// as Create/Rename on the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	settings, err := w.load()
	if err != nil {
		log.Printf("[reload] Ignoring settings change: %v", err)
		return
	}
	log.Printf("[reload] Settings reloaded from %s", w.path)

	// Keep only the newest settings if the consumer is behind.
	select {
	case <-w.events:
	default:
	}
	select {
	case w.events <- settings:
	case <-w.done:
	}
}
