package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jabbalaci/procwatch/internal/config"
	"github.com/jabbalaci/procwatch/internal/models"
	"github.com/jabbalaci/procwatch/internal/notify"
	"github.com/jabbalaci/procwatch/internal/presenter"
	"github.com/jabbalaci/procwatch/internal/watcher"
)

// Flags shared by the root, check and watch commands.
var (
	flagName     string
	flagInterval time.Duration
)

func addWatchFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&flagName, "name", "n", "", "process name to watch (default from settings)")
	cmd.PersistentFlags().DurationVarP(&flagInterval, "interval", "i", 0, "polling interval (default from settings)")
}

// resolveSettings loads settings.yaml and applies flags set on cmd.
func resolveSettings(cmd *cobra.Command) (*models.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	applyFlags(cmd, settings)
	return settings, nil
}

func applyFlags(cmd *cobra.Command, settings *models.Settings) {
	if f := cmd.Flags().Lookup("name"); f != nil && f.Changed {
		settings.ProcessName = flagName
	}
	if f := cmd.Flags().Lookup("interval"); f != nil && f.Changed {
		settings.Interval = flagInterval
	}
	settings.Normalize()
}

func newWatcher(settings *models.Settings) *watcher.Watcher {
	return watcher.New(settings.ProcessName, settings.Interval, watcher.NewSystemFinder())
}

// newNotifier creates the transition notifier, enabled per settings.
func newNotifier(settings *models.Settings) *notify.Notifier {
	n := notify.New(settings.ProcessName, nil)
	n.SetEnabled(settings.Notify)
	return n
}

func listeners(n *notify.Notifier) []func(presenter.Transition) {
	return []func(presenter.Transition){n.Handle}
}
