// Package presenter mirrors watcher results onto a tray-like surface,
// changing the displayed icon only when the process state changes.
package presenter

import (
	"context"
	"log"
	"time"
)

// Icon identifies one of the two icon assets.
type Icon int

const (
	// IconPresent is the colored icon shown while the process runs.
	IconPresent Icon = iota
	// IconAbsent is the grayscale icon shown while it does not.
	IconAbsent
)

func (i Icon) String() string {
	switch i {
	case IconPresent:
		return "present"
	case IconAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// IconFor maps a poll result to its icon.
func IconFor(running bool) Icon {
	if running {
		return IconPresent
	}
	return IconAbsent
}

// Surface is the display the presenter drives: the system tray or a terminal.
// Calls happen only on the goroutine running the presenter.
type Surface interface {
	SetIcon(icon Icon)
	SetStatus(name string, running bool)
}

// Transition describes a change of the displayed state.
type Transition struct {
	Running bool
	Initial bool // first state after startup
	At      time.Time
}

// Presenter owns the displayed icon state.
type Presenter struct {
	name      string
	surface   Surface
	current   Icon
	set       bool
	listeners []func(Transition)
	now       func() time.Time
}

// New creates a presenter for the process called name. Nothing is displayed
// until the first OnState call.
func New(name string, surface Surface) *Presenter {
	return &Presenter{
		name:    name,
		surface: surface,
		now:     time.Now,
	}
}

// OnChange registers fn to be called after each displayed transition.
func (p *Presenter) OnChange(fn func(Transition)) {
	p.listeners = append(p.listeners, fn)
}

// Current returns the displayed icon and whether one has been set yet.
func (p *Presenter) Current() (Icon, bool) {
	return p.current, p.set
}

// OnState applies a poll result. It returns false without touching the
// surface when the result maps to the icon already shown.
func (p *Presenter) OnState(running bool) bool {
	icon := IconFor(running)
	if p.set && icon == p.current {
		return false
	}

	initial := !p.set
	p.surface.SetIcon(icon)
	p.surface.SetStatus(p.name, running)
	p.current = icon
	p.set = true

	if !initial {
		log.Printf("[presenter] %s is now %s", p.name, icon)
	}

	t := Transition{Running: running, Initial: initial, At: p.now()}
	for _, fn := range p.listeners {
		fn(t)
	}
	return true
}

// Run applies states from the watcher on the calling goroutine until the
// channel is closed or ctx is done.
func (p *Presenter) Run(ctx context.Context, states <-chan bool) {
	for {
		select {
		case <-ctx.Done():
			return
		case running, ok := <-states:
			if !ok {
				return
			}
			p.OnState(running)
		}
	}
}
