// Package config holds the environment-driven application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the flat application configuration. All fields can be
// overridden through environment variables; defaults suit a single-user
// desktop install.
type Config struct {
	// DataDir is the directory holding the database file. Empty means
	// ~/.pmide.
	DataDir string `env:"PMIDE_DATA_DIR" env-default:""`

	// DBFile is the database filename inside DataDir.
	DBFile string `env:"PMIDE_DB_FILE" env-default:"pm-ide.db"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment config: %w", err)
	}
	return &cfg, nil
}

// ResolveDataDir returns the data directory, defaulting to ~/.pmide.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".pmide"), nil
}

// DBPath returns the full path to the database file.
func (c *Config) DBPath() (string, error) {
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.DBFile), nil
}
