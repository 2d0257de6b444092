// Package config loads the catalog settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// RecordsFileName is the workbook holding submitted indicators, inside DataDir.
const RecordsFileName = "records.xlsx"

// Config holds the runtime settings for the catalog tool.
type Config struct {
	// DBPath is the sqlite file holding the manager and the code counters.
	DBPath string `env:"DB_PATH" envDefault:"catalog.db"`
	// DataDir holds the records workbook.
	DataDir string `env:"DATA_DIR" envDefault:"data"`
	// UploadDir is the root for attachments, one folder per code.
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`
	// DictPath is the JSON help dictionary (key -> text). Optional.
	DictPath string `env:"DICT_PATH" envDefault:"dictionary.json"`

	Debug    bool   `env:"CATALOG_DEBUG" envDefault:"false"`
	LogLevel string `env:"CATALOG_LOG_LEVEL" envDefault:"info"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// RecordsPath returns the path of the records workbook.
func (c *Config) RecordsPath() string {
	return filepath.Join(c.DataDir, RecordsFileName)
}

// EnsureDirs creates the data and upload directories.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DataDir, c.UploadDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if parent := filepath.Dir(c.DBPath); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", parent, err)
		}
	}
	return nil
}
