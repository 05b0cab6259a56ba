// Package cli implements the procwatch commands.
package cli

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/jabbalaci/procwatch/internal/config"
	"github.com/jabbalaci/procwatch/internal/icon"
	"github.com/jabbalaci/procwatch/internal/tray"
	"github.com/jabbalaci/procwatch/internal/tray/avail"
)

var rootCmd = &cobra.Command{
	Use:   "procwatch",
	Short: "Show a tray icon telling whether a process is running",
	Long: `procwatch puts an icon in the system tray that is colored while the
watched process (firefox by default) is running and grayscale otherwise.

Use it to see when a slow-closing program has really left memory.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTray,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addWatchFlags(rootCmd)

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(watchCmd)
}

func runTray(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	logFile := config.SetupFileLogging()
	defer logFile.Close()

	if !settings.SkipTrayCheck {
		if err := avail.Check(); err != nil {
			log.Printf("[tray] %v", err)
			_ = zenity.Error(avail.Message, zenity.Title("Systray"))
			return errors.New(avail.Message)
		}
	}

	if err := config.AcquireInstance(settings.ProcessName); err != nil {
		return err
	}
	defer func() {
		if err := config.RemoveInstanceInfo(); err != nil {
			log.Printf("Failed to remove instance info: %v", err)
		}
	}()

	icons, err := icon.Load(settings.IconPath, icon.PlatformFormat())
	if err != nil {
		return fmt.Errorf("failed to load icons: %w", err)
	}

	w := newWatcher(settings)
	notifier := newNotifier(settings)

	var reloadMu sync.Mutex
	stopReload := func() {}

	sigCh := make(chan os.Signal, 1)
	defer signal.Stop(sigCh)

	log.Printf("Watching %s every %s (PID %d)", settings.ProcessName, settings.Interval, os.Getpid())

	// This blocks the main goroutine until the tray exits.
	tray.Run(tray.Options{
		Watcher:   w,
		Icons:     icons,
		Listeners: listeners(notifier),
		OnReady: func() {
			stop := startReload(settings, notifier, tray.SetIcons)
			reloadMu.Lock()
			stopReload = stop
			reloadMu.Unlock()

			// Quit the tray on SIGINT/SIGTERM, including `procwatch stop`.
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				sig := <-sigCh
				log.Printf("Received signal %v, shutting down...", sig)
				tray.Quit()
			}()
		},
		OnExit: func() {
			reloadMu.Lock()
			stopReload()
			reloadMu.Unlock()
			log.Println("Tray stopped")
		},
	})
	return nil
}
