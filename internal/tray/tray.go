// Package tray implements the system tray icon and menu.
package tray

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/getlantern/systray"

	"github.com/jabbalaci/procwatch/internal/icon"
	"github.com/jabbalaci/procwatch/internal/presenter"
	"github.com/jabbalaci/procwatch/internal/watcher"
)

// Options configures the tray.
type Options struct {
	Watcher   *watcher.Watcher
	Icons     *icon.Set
	Listeners []func(presenter.Transition)
	OnReady   func() // called once the tray is shown and the watcher started
	OnExit    func() // called after the event loop has stopped
}

var (
	opts       Options
	display    *surface
	statusItem *systray.MenuItem
	quitItem   *systray.MenuItem

	cancel   context.CancelFunc
	quitOnce sync.Once
)

// Run shows the tray icon and blocks the calling goroutine until Quit.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func Run(o Options) {
	opts = o
	display = &surface{icons: o.Icons}
	systray.Run(onReady, onQuit)
}

// SetIcons replaces the icon assets and redraws the current icon.
func SetIcons(set *icon.Set) {
	if display != nil {
		display.setIcons(set)
	}
}

// Quit stops the watcher, waiting for its current cycle, and then ends the
// tray event loop. Later calls do nothing.
func Quit() {
	quitOnce.Do(func() {
		log.Println("[tray] Quitting")
		if opts.Watcher != nil {
			opts.Watcher.Stop()
		}
		systray.Quit()
	})
}

// StatusText describes the process state for the tooltip and status item.
func StatusText(name string, running bool) string {
	if running {
		return fmt.Sprintf("%s is running", name)
	}
	return fmt.Sprintf("%s is not running", name)
}

// surface drives the real tray from the presenter.
type surface struct {
	mu    sync.Mutex
	icons *icon.Set
	shown presenter.Icon
	set   bool
}

func (s *surface) SetIcon(i presenter.Icon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = i
	s.set = true
	systray.SetIcon(s.icons.Bytes(i))
}

func (s *surface) setIcons(set *icon.Set) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.icons = set
	if s.set {
		systray.SetIcon(set.Bytes(s.shown))
	}
}

func (s *surface) SetStatus(name string, running bool) {
	text := StatusText(name, running)
	systray.SetTooltip(text)
	if statusItem != nil {
		statusItem.SetTitle(text)
	}
}

func onReady() {
	w := opts.Watcher

	statusItem = systray.AddMenuItem(fmt.Sprintf("Watching %s", w.Name()), "")
	statusItem.Disable()
	systray.AddSeparator()
	quitItem = systray.AddMenuItem("Quit", "Stop watching and exit")

	p := presenter.New(w.Name(), display)
	for _, fn := range opts.Listeners {
		p.OnChange(fn)
	}

	var ctx context.Context
	ctx, cancel = context.WithCancel(context.Background())

	// Show the real state before the first tick.
	p.OnState(w.Poll(ctx))

	w.Start(ctx)
	go p.Run(ctx, w.States())
	go handleClicks(ctx)

	if opts.OnReady != nil {
		opts.OnReady()
	}
}

func onQuit() {
	if cancel != nil {
		cancel()
	}
	if opts.OnExit != nil {
		opts.OnExit()
	}
}

func handleClicks(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-quitItem.ClickedCh:
		Quit()
	}
}
