package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jabbalaci/procwatch/internal/presenter"
	"github.com/jabbalaci/procwatch/internal/watcher"
)

// Run shows the watch view until the user quits. The watcher is stopped
// before Run returns.
func Run(w *watcher.Watcher, listeners ...func(presenter.Transition)) error {
	ctx := context.Background()
	model := NewModel(w.Name(), w.Interval(), w.States(), w.Stop, listeners...)

	// Show the real state before the first tick.
	model.Presenter().OnState(w.Poll(ctx))
	w.Start(ctx)
	defer w.Stop()

	_, err := tea.NewProgram(model).Run()
	return err
}
