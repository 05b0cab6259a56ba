//go:build linux

package avail

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// statusNotifierWatcher is the bus name owned by tray hosts implementing the
// StatusNotifierItem protocol (KDE, GNOME with AppIndicator support, XFCE, ...).
const statusNotifierWatcher = "org.kde.StatusNotifierWatcher"

// Check returns nil if a StatusNotifierWatcher is registered on the session bus.
func Check() error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("%w: session bus unavailable: %v", ErrNoTray, err)
	}
	defer conn.Close()

	return checkOwner(conn.BusObject())
}

func checkOwner(obj dbus.BusObject) error {
	var has bool
	call := obj.Call("org.freedesktop.DBus.NameHasOwner", 0, statusNotifierWatcher)
	if err := call.Store(&has); err != nil {
		return fmt.Errorf("%w: %v", ErrNoTray, err)
	}
	if !has {
		return fmt.Errorf("%w: %s has no owner", ErrNoTray, statusNotifierWatcher)
	}
	return nil
}
