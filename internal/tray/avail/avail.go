// Package avail reports whether the host can show a system tray icon.
package avail

import "errors"

// ErrNoTray is returned when no system tray could be detected.
var ErrNoTray = errors.New("no system tray detected")

// Message is the text shown to the user when no tray is available.
const Message = "I couldn't detect any system tray on this system."
