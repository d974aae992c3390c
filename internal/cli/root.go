// Package cli wires the cobra commands of the kobo-highlights tool.
// All of the import logic lives in the internal packages; this layer
// only parses arguments, sets up configuration and renders output.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/videbar/kobo-highlights/internal/config"
	"github.com/videbar/kobo-highlights/internal/importer"
	"github.com/videbar/kobo-highlights/internal/kobo"
	"github.com/videbar/kobo-highlights/internal/ui"
)

// Version is set at build time via ldflags.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "kobo-highlights",
	Short: "Manage the highlights of your Kobo ereader",
	Long: `Kobo Highlights manages the bookmarks of your Kobo ereader.
It imports highlights and their annotations into per-book markdown
documents and keeps track of what has already been imported, so
running it again only picks up new highlights.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps fatal errors to a message on
// stderr and a nonzero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Err.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"path to the configuration file (default: the user config directory)")
}

// configPath returns the active configuration file location.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

// setupConfig loads the configuration, offering to create one
// interactively when no valid file exists. The program cannot do
// anything useful without one, so declining aborts.
func setupConfig() (*config.Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.FromFile(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, config.ErrInvalid) {
		return nil, err
	}

	fmt.Fprintln(os.Stderr, "No valid configuration file was found.")
	if !ui.Confirm("Would you like to create one?") {
		return nil, errors.New("kobo-highlights cannot work without a valid configuration file")
	}

	cfg, err = config.CreateInteractively(ui.Ask)
	if err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	fmt.Printf("Configuration file created successfully: %s\n", ui.Accent.Render(path))
	return cfg, nil
}

// newImporter builds the importer for the configured ereader and
// target directory.
func newImporter(cfg *config.Config) (*importer.Importer, error) {
	reader, err := kobo.NewReader(kobo.DefaultSnapshotPath(cfg.EreaderDir))
	if err != nil {
		return nil, err
	}
	return importer.New(reader, cfg.TargetDir, cfg.LedgerPath(), ui.Confirm), nil
}
