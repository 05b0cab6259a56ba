//go:build linux

package avail

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
)

type fakeBus struct {
	dbus.BusObject
	has    bool
	err    error
	method string
	args   []interface{}
}

func (f *fakeBus) Call(method string, _ dbus.Flags, args ...interface{}) *dbus.Call {
	f.method = method
	f.args = args
	return &dbus.Call{Body: []interface{}{f.has}, Err: f.err}
}

func TestCheckOwner(t *testing.T) {
	tests := []struct {
		name    string
		bus     *fakeBus
		wantErr bool
	}{
		{name: "watcher registered", bus: &fakeBus{has: true}},
		{name: "no watcher", bus: &fakeBus{has: false}, wantErr: true},
		{name: "call failed", bus: &fakeBus{err: errors.New("denied")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkOwner(tt.bus)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoTray)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "org.freedesktop.DBus.NameHasOwner", tt.bus.method)
			assert.Equal(t, []interface{}{statusNotifierWatcher}, tt.bus.args)
		})
	}
}
