package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vitals/internal/engine"
)

// Config represents the application configuration
type Config struct {
	Data     DataConfig       `json:"data"`
	Baseline engine.Baselines `json:"baseline"`
	Display  DisplayConfig    `json:"display"`
}

// DataConfig locates the wearable export databases and the sync script
type DataConfig struct {
	// Dir holds garmin.db and garmin_activities.db as written by the
	// export pipeline. The VITALS_DB_DIR environment variable overrides it.
	Dir        string `json:"dir"`
	SyncScript string `json:"sync_script"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	HistoryDays int `json:"history_days"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

const exampleDataDir = "/path/to/HealthData/DBs"

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Baseline: engine.DefaultBaselines(),
		Display: DisplayConfig{
			HistoryDays: 14,
		},
	}
}

// Load reads the configuration from ~/.vitals/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}

	// Environment wins over the file so one shell can point at a test
	// export without editing anything.
	if dir := os.Getenv("VITALS_DB_DIR"); dir != "" {
		cfg.Data.Dir = dir
	}

	return cfg, nil
}

// parse decodes config JSON and applies defaults for missing values.
func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	defaults := DefaultConfig()
	if cfg.Baseline.RHRMean == 0 {
		cfg.Baseline.RHRMean = defaults.Baseline.RHRMean
	}
	if cfg.Baseline.RHRSD == 0 {
		cfg.Baseline.RHRSD = defaults.Baseline.RHRSD
	}
	if cfg.Baseline.StressMean == 0 {
		cfg.Baseline.StressMean = defaults.Baseline.StressMean
	}
	if cfg.Baseline.CostMean == 0 {
		cfg.Baseline.CostMean = defaults.Baseline.CostMean
	}
	if cfg.Baseline.HRVFallback == 0 {
		cfg.Baseline.HRVFallback = defaults.Baseline.HRVFallback
	}
	if cfg.Baseline.StressFallback == 0 {
		cfg.Baseline.StressFallback = defaults.Baseline.StressFallback
	}
	if cfg.Display.HistoryDays == 0 {
		cfg.Display.HistoryDays = defaults.Display.HistoryDays
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.vitals/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Data.Dir = exampleDataDir
	example.Data.SyncScript = "/path/to/export_device.sh"

	return Save(&example)
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.Data.Dir == "" || c.Data.Dir == exampleDataDir {
		return errors.New("data.dir is required - point it at the directory holding garmin.db")
	}
	if err := c.Baseline.Validate(); err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	if c.Display.HistoryDays < 0 {
		return fmt.Errorf("display.history_days must not be negative, got %d", c.Display.HistoryDays)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".vitals", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".vitals"), nil
}
