package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jabbalaci/procwatch/internal/config"
	"github.com/jabbalaci/procwatch/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective settings",
	Long: `Show the effective settings: ~/.procwatch/settings.yaml with defaults
filled in and --name/--interval applied.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Args:  cobra.NoArgs,
	RunE:  runSettingsInit,
}

var settingsForce bool

func init() {
	settingsInitCmd.Flags().BoolVarP(&settingsForce, "force", "f", false, "overwrite an existing settings file")
	settingsCmd.AddCommand(settingsInitCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}

	out, err := renderSettings(settings)
	if err != nil {
		return err
	}

	source := "defaults"
	if config.FileExists(path) {
		source = path
	}
	fmt.Printf("%s %s\n\n", styleLabel.Render("Source:"), styleValue.Render(source))
	fmt.Print(out)
	return nil
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}
	if config.FileExists(path) && !settingsForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveSettings(models.NewSettings()); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("%s %s\n", styleSuccess.Render("Wrote"), path)
	return nil
}

func renderSettings(settings *models.Settings) (string, error) {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("failed to marshal settings: %w", err)
	}
	return string(data), nil
}
