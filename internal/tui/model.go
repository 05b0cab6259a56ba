// Package tui implements `procwatch watch`, a terminal view of the watched
// process driven by the same presenter as the tray.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jabbalaci/procwatch/internal/presenter"
)

// stateMsg carries one watcher tick result.
type stateMsg bool

// statesClosedMsg signals that the watcher loop has exited.
type statesClosedMsg struct{}

// surface records what the presenter displays so View can render it.
type surface struct {
	icon    presenter.Icon
	running bool
	set     bool
}

func (s *surface) SetIcon(i presenter.Icon) {
	s.icon = i
	s.set = true
}

func (s *surface) SetStatus(_ string, running bool) {
	s.running = running
}

// history tracks transitions for the footer line.
type history struct {
	since   time.Time
	changes int
}

func (h *history) record(t presenter.Transition) {
	h.since = t.At
	if !t.Initial {
		h.changes++
	}
}

// Model is the Bubbletea model for the watch view.
type Model struct {
	name      string
	interval  time.Duration
	states    <-chan bool
	stop      func()
	presenter *presenter.Presenter
	surface   *surface
	history   *history
	spinner   spinner.Model
	quitting  bool
}

// NewModel creates the watch model. states is the watcher channel and stop
// stops the watcher; stop is called before the program exits.
func NewModel(name string, interval time.Duration, states <-chan bool, stop func(), listeners ...func(presenter.Transition)) Model {
	s := &surface{}
	h := &history{}
	p := presenter.New(name, s)
	p.OnChange(h.record)
	for _, fn := range listeners {
		p.OnChange(fn)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = hintStyle

	return Model{
		name:      name,
		interval:  interval,
		states:    states,
		stop:      stop,
		presenter: p,
		surface:   s,
		history:   h,
		spinner:   sp,
	}
}

// Presenter exposes the presenter so callers can set the initial state.
func (m Model) Presenter() *presenter.Presenter {
	return m.presenter
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForState(m.states))
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			if m.stop != nil {
				m.stop()
			}
			return m, tea.Quit
		}

	case stateMsg:
		m.presenter.OnState(bool(msg))
		return m, waitForState(m.states)

	case statesClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render("procwatch") + " " + hintStyle.Render(fmt.Sprintf("every %s", m.interval))

	var status string
	switch {
	case !m.surface.set:
		status = m.spinner.View() + " checking " + valueStyle.Render(m.name)
	case m.surface.icon == presenter.IconPresent:
		status = presentStyle.Render("●") + " " + valueStyle.Render(m.name) + " is running"
	default:
		status = absentStyle.Render("○") + " " + valueStyle.Render(m.name) + " is not running"
	}

	footer := m.spinner.View() + " " + hintStyle.Render(m.footer()) + "  " + hintStyle.Render(keys.Quit.Help().Key+" "+keys.Quit.Help().Desc)

	return boxStyle.Render(header + "\n\n" + status + "\n\n" + footer)
}

func (m Model) footer() string {
	if m.history.since.IsZero() {
		return "waiting"
	}
	return fmt.Sprintf("since %s · %d changes", m.history.since.Format("15:04:05"), m.history.changes)
}

func waitForState(states <-chan bool) tea.Cmd {
	return func() tea.Msg {
		running, ok := <-states
		if !ok {
			return statesClosedMsg{}
		}
		return stateMsg(running)
	}
}
