package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config carries per-user defaults. Flags set on the command line always
// win over file values.
type Config struct {
	Difficulty string `yaml:"difficulty,omitempty"`
	Solver     string `yaml:"solver,omitempty"`
	NoColor    bool   `yaml:"noColor,omitempty"`
}

// defaultConfigPath is consulted only when --config is not given; a missing
// file there is not an error.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sudoku", "config.yaml")
}

// LoadConfig reads a YAML config file. An empty path means "no config".
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfig folds file values into opts for flags the user left untouched.
func applyConfig(cmd *cobra.Command, opts *RootOptions) error {
	path := opts.Config
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path != "" {
			if _, err := os.Stat(path); err != nil {
				return nil // no default config, nothing to do
			}
		}
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		if explicit {
			return err
		}
		return nil
	}
	flags := cmd.Flags()
	if cfg.Solver != "" && !flags.Changed("solver") {
		opts.Solver = cfg.Solver
	}
	if cfg.NoColor && !flags.Changed("no-color") {
		opts.NoColor = true
	}
	opts.FileConfig = cfg
	return nil
}
