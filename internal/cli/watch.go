package cli

import (
	"github.com/spf13/cobra"

	"github.com/jabbalaci/procwatch/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the process in the terminal instead of the tray",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		return tui.Run(newWatcher(settings), listeners(newNotifier(settings))...)
	},
}
