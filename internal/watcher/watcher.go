// Package watcher polls the OS process table for a process with a given name.
package watcher

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultInterval is used when a non-positive interval is given.
const DefaultInterval = time.Second

// Process is a handle to a matched OS process.
type Process interface {
	PID() int32
	IsRunning(ctx context.Context) (bool, error)
}

// Finder looks up a process by exact name. It returns nil, nil when no such
// process exists.
type Finder interface {
	Find(ctx context.Context, name string) (Process, error)
}

// Watcher checks whether a named process is running on a fixed interval and
// emits the result of every tick on States.
type Watcher struct {
	name     string
	interval time.Duration
	finder   Finder

	// cached is the last matched process. Only Poll touches it.
	cached Process

	states chan bool

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

// New creates a watcher for the process called name.
func New(name string, interval time.Duration, finder Finder) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{
		name:     name,
		interval: interval,
		finder:   finder,
		states:   make(chan bool),
	}
}

// Name returns the watched process name.
func (w *Watcher) Name() string {
	return w.name
}

// Interval returns the polling interval.
func (w *Watcher) Interval() time.Duration {
	return w.interval
}

// PID returns the process id of the cached handle, or 0 if none. Like Poll,
// it must not be called concurrently with a running loop.
func (w *Watcher) PID() int32 {
	if w.cached == nil {
		return 0
	}
	return w.cached.PID()
}

// States returns the channel of tick results. It is unbuffered, so a value
// received by the consumer was sent before Stop returned. The channel is
// closed once the polling loop exits.
func (w *Watcher) States() <-chan bool {
	return w.states
}

// Poll reports whether the process is running. A cached handle is checked
// first; a full scan happens only when there is no handle or it has died.
// Scan errors count as not running.
//
// Poll is not safe for concurrent use. Call it directly only before Start.
func (w *Watcher) Poll(ctx context.Context) bool {
	if w.cached != nil {
		running, err := w.cached.IsRunning(ctx)
		if err == nil && running {
			return true
		}
		log.Printf("[watcher] %s (PID %d) is no longer running", w.name, w.cached.PID())
		w.cached = nil
	}

	p, err := w.finder.Find(ctx, w.name)
	if err != nil {
		log.Printf("[watcher] Process scan failed: %v", err)
		return false
	}
	if p == nil {
		return false
	}

	w.cached = p
	log.Printf("[watcher] Found %s (PID %d)", w.name, p.PID())
	return true
}

// Start launches the polling loop. It is a no-op if the watcher is already
// running or has been stopped.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done != nil || w.stopped {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})

	log.Printf("[watcher] Watching %s every %s", w.name, w.interval)
	go w.loop(ctx, w.done)
}

// Stop ends the polling loop and waits for it to return. Once Stop returns
// no further polls happen and nothing more is sent on States. Safe to call
// more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true

	if w.cancel == nil {
		close(w.states)
		return
	}

	w.cancel()
	<-w.done
	log.Printf("[watcher] Stopped watching %s", w.name)
}

func (w *Watcher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer close(w.states)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		// A tick and a cancel can be ready together.
		if ctx.Err() != nil {
			return
		}

		running := w.Poll(ctx)

		select {
		case w.states <- running:
		case <-ctx.Done():
			return
		}
	}
}
