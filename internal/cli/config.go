package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/videbar/kobo-highlights/internal/config"
	"github.com/videbar/kobo-highlights/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the program configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current program configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setupConfig()
		if err != nil {
			return err
		}
		path, err := configPath()
		if err != nil {
			return err
		}

		fmt.Printf("target_dir:  %s  %s\n", ui.Accent.Render(cfg.TargetDir),
			ui.Hint("# directory where your highlights are exported"))
		fmt.Printf("ereader_dir: %s  %s\n", ui.Accent.Render(cfg.EreaderDir),
			ui.Hint("# directory where your ereader is mounted"))
		fmt.Printf("\nConfiguration file path: %s\n", ui.Accent.Render(path))
		return nil
	},
}

var configNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new configuration interactively and save it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		cfg, err := config.CreateInteractively(ui.Ask)
		if err != nil {
			return err
		}
		if err := cfg.Save(path); err != nil {
			return err
		}

		fmt.Printf("Configuration file created successfully: %s\n", ui.Accent.Render(path))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configNewCmd)
	rootCmd.AddCommand(configCmd)
}
