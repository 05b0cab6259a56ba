package cli

import (
	"context"
	"log"

	"github.com/jabbalaci/procwatch/internal/icon"
	"github.com/jabbalaci/procwatch/internal/models"
	"github.com/jabbalaci/procwatch/internal/notify"
	"github.com/jabbalaci/procwatch/internal/reload"
)

// startReload watches settings.yaml and applies changes that do not need a
// restart. It returns a stop function; on setup failure reloading is
// disabled and the stop function does nothing.
func startReload(current *models.Settings, n *notify.Notifier, setIcons func(*icon.Set)) func() {
	rw, err := reload.New()
	if err == nil {
		err = rw.Start()
	}
	if err != nil {
		log.Printf("[reload] Settings reload disabled: %v", err)
		return func() {}
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case next := <-rw.Events():
				applySettings(current, next, n, setIcons, icon.PlatformFormat())
			}
		}
	}()

	return func() {
		cancel()
		rw.Stop()
	}
}

// applySettings applies next on top of current. The watched process name
// and interval are fixed for the lifetime of the watcher.
func applySettings(current, next *models.Settings, n *notify.Notifier, setIcons func(*icon.Set), format icon.Format) {
	if next.ProcessName != current.ProcessName || next.Interval != current.Interval {
		log.Printf("[reload] process_name and interval changes apply after restart")
	}

	if next.Notify != current.Notify {
		n.SetEnabled(next.Notify)
		log.Printf("[reload] Notifications enabled: %v", next.Notify)
		current.Notify = next.Notify
	}

	if next.IconPath != current.IconPath {
		set, err := icon.Load(next.IconPath, format)
		if err != nil {
			log.Printf("[reload] Keeping current icons: %v", err)
			return
		}
		setIcons(set)
		current.IconPath = next.IconPath
		log.Printf("[reload] Icons reloaded")
	}
}
