package cli

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/spf13/cobra"

	"github.com/jabbalaci/procwatch/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a tray instance is running",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running tray instance",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func runStatus(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsInstanceRunning()
	if err != nil {
		return fmt.Errorf("failed to check instance status: %w", err)
	}

	if !running || info == nil {
		fmt.Println(styleWarning.Render("Not running"))
		return nil
	}

	fmt.Println(styleSuccess.Render("Running"))
	fmt.Printf("  %s %s\n", styleLabel.Render("Watching:"), styleValue.Render(info.ProcessName))
	fmt.Printf("  %s      %s\n", styleLabel.Render("PID:"), styleValue.Render(fmt.Sprint(info.PID)))
	fmt.Printf("  %s  %s\n", styleLabel.Render("Started:"), styleValue.Render(info.StartedAt.Local().Format(time.RFC1123)))
	return nil
}

func runStop(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsInstanceRunning()
	if err != nil {
		return fmt.Errorf("failed to check instance status: %w", err)
	}
	if !running || info == nil {
		fmt.Println("procwatch is not running.")
		return nil
	}

	p, err := process.NewProcess(int32(info.PID))
	if err != nil {
		return fmt.Errorf("failed to find procwatch (PID %d): %w", info.PID, err)
	}

	fmt.Printf("Stopping procwatch (PID %d)...", info.PID)
	if err := p.Terminate(); err != nil {
		fmt.Println(" " + styleError.Render("failed"))
		return fmt.Errorf("failed to signal procwatch: %w", err)
	}

	// Wait for the tray to exit (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		alive, err := process.PidExists(int32(info.PID))
		if err == nil && !alive {
			_ = config.RemoveInstanceInfo()
			fmt.Println(" " + styleSuccess.Render("done"))
			return nil
		}
	}

	fmt.Println(" " + styleError.Render("timeout"))
	return fmt.Errorf("procwatch did not stop within timeout")
}
