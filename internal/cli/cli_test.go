package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jabbalaci/procwatch/internal/models"
)

func TestFormatCheckPlain(t *testing.T) {
	assert.Equal(t, "running", formatCheck("firefox", true, 10, false))
	assert.Equal(t, "not running", formatCheck("firefox", false, 0, false))
}

func TestFormatCheckStyled(t *testing.T) {
	out := formatCheck("firefox", true, 4242, true)
	assert.Contains(t, out, "firefox is running")
	assert.Contains(t, out, "PID 4242")

	out = formatCheck("firefox", false, 0, true)
	assert.Contains(t, out, "firefox is not running")
	assert.NotContains(t, out, "PID")
}

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	addWatchFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantName     string
		wantInterval time.Duration
	}{
		{name: "no flags keeps settings", args: nil, wantName: "gedit", wantInterval: 2 * time.Second},
		{name: "name override", args: []string{"--name", "vlc"}, wantName: "vlc", wantInterval: 2 * time.Second},
		{name: "interval override", args: []string{"-i", "500ms"}, wantName: "gedit", wantInterval: 500 * time.Millisecond},
		{name: "interval clamped", args: []string{"--interval", "1ms"}, wantName: "gedit", wantInterval: models.MinInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := models.NewSettings()
			settings.ProcessName = "gedit"
			settings.Interval = 2 * time.Second

			applyFlags(newFlagCmd(t, tt.args...), settings)
			assert.Equal(t, tt.wantName, settings.ProcessName)
			assert.Equal(t, tt.wantInterval, settings.Interval)
		})
	}
}

func TestRenderSettings(t *testing.T) {
	out, err := renderSettings(models.NewSettings())
	require.NoError(t, err)
	assert.Contains(t, out, "process_name: firefox")
	assert.Contains(t, out, "interval: 1s")

	var back models.Settings
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, time.Second, back.Interval)
}

func TestNotifierFollowsSettings(t *testing.T) {
	settings := models.NewSettings()
	assert.False(t, newNotifier(settings).Enabled())

	settings.Notify = true
	n := newNotifier(settings)
	assert.True(t, n.Enabled())
	assert.Len(t, listeners(n), 1)
}

func TestResolveSettingsUsesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	settings, err := resolveSettings(newFlagCmd(t, "-n", "thunderbird"))
	require.NoError(t, err)
	assert.Equal(t, "thunderbird", settings.ProcessName)
	assert.Equal(t, models.DefaultInterval, settings.Interval)
}
