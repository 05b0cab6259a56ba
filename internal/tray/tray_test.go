package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		name     string
		process  string
		running  bool
		expected string
	}{
		{name: "running", process: "firefox", running: true, expected: "firefox is running"},
		{name: "not running", process: "firefox", running: false, expected: "firefox is not running"},
		{name: "exe name", process: "gedit.exe", running: true, expected: "gedit.exe is running"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusText(tt.process, tt.running))
		})
	}
}
