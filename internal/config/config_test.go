package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jabbalaci/procwatch/internal/models"
)

func tempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestPaths(t *testing.T) {
	home := tempHome(t)

	path, err := GlobalSettingsFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".procwatch", "settings.yaml"), path)

	path, err = GlobalInstanceFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".procwatch", "instance.yaml"), path)

	dir, err := GlobalLogsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".procwatch", "logs"), dir)
}

func TestLoadSettingsDefaults(t *testing.T) {
	tempHome(t)

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings(), settings)
}

func TestLoadSettingsPartialFile(t *testing.T) {
	tempHome(t)
	path, err := GlobalSettingsFile()
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("process_name: gedit\nnotify: true\n"), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "gedit", settings.ProcessName)
	assert.True(t, settings.Notify)
	assert.Equal(t, models.DefaultInterval, settings.Interval)
}

func TestLoadSettingsClampsInterval(t *testing.T) {
	tempHome(t)
	path, err := GlobalSettingsFile()
	require.NoError(t, err)

	require.NoError(t, SaveYAML(path, map[string]any{"interval": "10ms"}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.MinInterval, settings.Interval)
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	tempHome(t)
	path, err := GlobalSettingsFile()
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("interval: [nope"), 0644))

	_, err = LoadSettings()
	assert.Error(t, err)
}

func TestSaveSettings(t *testing.T) {
	tempHome(t)

	want := models.NewSettings()
	want.ProcessName = "thunderbird"
	want.Interval = 3 * time.Second
	require.NoError(t, SaveSettings(want))

	got, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	path, _ := GlobalSettingsFile()
	assert.False(t, FileExists(path+".tmp"))
}

func TestInstanceLifecycle(t *testing.T) {
	tempHome(t)

	running, info, err := IsInstanceRunning()
	require.NoError(t, err)
	assert.False(t, running)
	assert.Nil(t, info)

	// Our own PID is not "another" instance.
	require.NoError(t, AcquireInstance("firefox"))
	running, info, err = IsInstanceRunning()
	require.NoError(t, err)
	assert.False(t, running)
	require.NotNil(t, info)
	assert.Equal(t, os.Getpid(), info.PID)
	assert.Equal(t, "firefox", info.ProcessName)

	require.NoError(t, RemoveInstanceInfo())
	info, err = LoadInstanceInfo()
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestAcquireInstanceRejectsLiveOwner(t *testing.T) {
	tempHome(t)

	// The parent (go test runner) is alive and is not us.
	require.NoError(t, SaveInstanceInfo(models.NewInstanceInfo(os.Getppid(), "gedit")))

	err := AcquireInstance("firefox")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}

func TestStaleInstanceRemoved(t *testing.T) {
	tempHome(t)

	// PIDs this large are not handed out on any supported OS.
	require.NoError(t, SaveInstanceInfo(models.NewInstanceInfo(1<<30, "gedit")))

	running, info, err := IsInstanceRunning()
	require.NoError(t, err)
	assert.False(t, running)
	require.NotNil(t, info)

	path, _ := GlobalInstanceFile()
	assert.False(t, FileExists(path))

	require.NoError(t, AcquireInstance("firefox"))
}

func TestNewLogWriter(t *testing.T) {
	home := tempHome(t)

	w, err := NewLogWriter()
	require.NoError(t, err)
	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(home, ".procwatch", "logs", LogFileName))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
