// Package notify sends a desktop notification when the watched process
// starts or stops.
package notify

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/gen2brain/beeep"

	"github.com/jabbalaci/procwatch/internal/presenter"
)

// SendFunc delivers a notification.
type SendFunc func(title, message string) error

// Desktop sends through the OS notification service.
func Desktop(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Notifier turns presenter transitions into notifications.
type Notifier struct {
	name    string
	send    SendFunc
	enabled atomic.Bool
}

// New creates an enabled notifier for the process called name.
func New(name string, send SendFunc) *Notifier {
	if send == nil {
		send = Desktop
	}
	n := &Notifier{name: name, send: send}
	n.enabled.Store(true)
	return n
}

// SetEnabled turns notifications on or off. Safe for concurrent use.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

// Enabled reports whether notifications are sent.
func (n *Notifier) Enabled() bool {
	return n.enabled.Load()
}

// Message formats the notification text for a transition.
func Message(name string, running bool) string {
	if running {
		return fmt.Sprintf("%s has started", name)
	}
	return fmt.Sprintf("%s has exited", name)
}

// Handle is a presenter.OnChange listener. The startup state is not announced.
func (n *Notifier) Handle(t presenter.Transition) {
	if t.Initial || !n.Enabled() {
		return
	}
	if err := n.send("procwatch", Message(n.name, t.Running)); err != nil {
		log.Printf("[notify] Failed to send notification: %v", err)
	}
}
