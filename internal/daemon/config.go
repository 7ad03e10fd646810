// Package daemon holds the payline runtime configuration.
// Configuration is TOML, loaded over compiled-in defaults, so a missing
// file or a partial file is never an error.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the full payline configuration.
type Config struct {
	Process ProcessConfig `toml:"process"`
	API     APIConfig     `toml:"api"`
	Export  ExportConfig  `toml:"export"`
	Metrics MetricsConfig `toml:"metrics"`
}

// ProcessConfig controls stream processing.
type ProcessConfig struct {
	// Shards is the number of parallel shard workers. 1 means strictly
	// sequential processing.
	Shards int `toml:"shards"`
}

// APIConfig controls the snapshot API server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ExportConfig controls report persistence.
type ExportConfig struct {
	// Database is the SQLite path reports are exported to. Empty disables
	// export.
	Database string `toml:"database"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns the compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		Process: ProcessConfig{Shards: 1},
		API:     APIConfig{Host: "127.0.0.1", Port: 7401},
		Export:  ExportConfig{Database: ""},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	if env := os.Getenv("PAYLINE_HOME"); env != "" {
		return filepath.Join(env, "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".payline", "config.toml")
}

// Load reads the config at path over the defaults. A missing file yields
// the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Process.Shards < 1 {
		return Config{}, fmt.Errorf("config %s: process.shards must be >= 1", path)
	}
	return cfg, nil
}
