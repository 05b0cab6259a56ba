//go:build !linux

package avail

// Check always succeeds: Windows and macOS always provide a notification area.
func Check() error {
	return nil
}
