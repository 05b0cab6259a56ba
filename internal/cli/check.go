package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jabbalaci/procwatch/internal/tray"
)

// errNotRunning makes `procwatch check` exit non-zero, like pgrep.
var errNotRunning = errors.New("process not running")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check once whether the process is running",
	Long: `Check once whether the watched process is running.

Exits 0 if it is running and 1 if it is not. When stdout is not a terminal
only "running" or "not running" is printed.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	w := newWatcher(settings)
	running := w.Poll(context.Background())

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Println(formatCheck(settings.ProcessName, running, w.PID(), isTTY))

	if !running {
		cmd.SilenceErrors = true
		return errNotRunning
	}
	return nil
}

func formatCheck(name string, running bool, pid int32, styled bool) string {
	if !styled {
		if running {
			return "running"
		}
		return "not running"
	}
	if running {
		return fmt.Sprintf("%s %s %s",
			styleSuccess.Render("●"),
			styleValue.Render(tray.StatusText(name, true)),
			styleHint.Render(fmt.Sprintf("(PID %d)", pid)))
	}
	return fmt.Sprintf("%s %s", styleLabel.Render("○"), styleValue.Render(tray.StatusText(name, false)))
}
