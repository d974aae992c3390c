// Package config loads and stores the program configuration: where
// the ereader is mounted and where the markdown documents go.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	appDirName     = "kobo-highlights"
	configFileName = "config.toml"

	// LedgerFileName is the name of the import ledger kept inside the
	// target directory.
	LedgerFileName = ".imported_bookmarks.json"
)

// ErrInvalid is returned when a configuration file exists but cannot
// be used: unparseable, missing keys, or non-absolute paths.
var ErrInvalid = errors.New("invalid configuration file")

// Config holds the two directories the program works with. Both paths
// are absolute.
type Config struct {
	// TargetDir is where the markdown documents and the import ledger
	// are written.
	TargetDir string `mapstructure:"target_dir"`
	// EreaderDir is the mount point of the ereader.
	EreaderDir string `mapstructure:"ereader_dir"`
}

// DefaultPath returns the location of the configuration file under
// the OS user configuration directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, appDirName, configFileName), nil
}

// FromFile reads the configuration at path.
func FromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no configuration file at %s", ErrInvalid, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration as TOML to path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("target_dir", c.TargetDir)
	v.Set("ereader_dir", c.EreaderDir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return nil
}

// LedgerPath returns the path of the import ledger inside the target
// directory.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.TargetDir, LedgerFileName)
}

func (c *Config) validate() error {
	if c.TargetDir == "" || c.EreaderDir == "" {
		return fmt.Errorf("%w: target_dir and ereader_dir are both required", ErrInvalid)
	}
	if !filepath.IsAbs(c.TargetDir) || !filepath.IsAbs(c.EreaderDir) {
		return fmt.Errorf("%w: target_dir and ereader_dir must be absolute paths", ErrInvalid)
	}
	return nil
}

// CreateInteractively builds a configuration by asking the user for
// the two directories. ask is called with a prompt and returns the
// user's answer; the questions repeat until both answers are absolute
// paths. The prompt capability is injected so this package never
// talks to a console directly.
func CreateInteractively(ask func(prompt string) (string, error)) (*Config, error) {
	for {
		ereaderDir, err := ask("Absolute path where your ereader is mounted")
		if err != nil {
			return nil, err
		}
		targetDir, err := ask("Absolute path of the directory where highlights will be exported")
		if err != nil {
			return nil, err
		}

		cfg := &Config{
			TargetDir:  targetDir,
			EreaderDir: ereaderDir,
		}
		if err := cfg.validate(); err == nil {
			return cfg, nil
		}
		fmt.Fprintln(os.Stderr, "The paths entered are not absolute, please try again.")
	}
}
