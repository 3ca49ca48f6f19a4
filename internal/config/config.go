package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thenoetrevino/fitcal/internal/calendar"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
	WeekStart   string        `yaml:"week_start"`
	Storage     StorageConfig `yaml:"storage"`
}

// StorageConfig selects where the workout snapshot is kept
type StorageConfig struct {
	// Backend is "sqlite" (default) or "file"
	Backend string `yaml:"backend"`
	// Path overrides the backend's default location under the data directory
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from FITCAL_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("FITCAL_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads config from path, falling back to defaults when the file is missing
func LoadFrom(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	// Fill in any missing values with defaults before the theme file overrides them
	config.applyDefaults()
	loadThemeFile(&config)

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// WeekStartDay returns the configured first column of the month grid
func (c *Config) WeekStartDay() time.Weekday {
	return calendar.ParseWeekStart(c.WeekStart)
}

// StoragePath returns the backend file location, resolving the default under DataDir
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if c.Storage.Backend == BackendFile {
		return filepath.Join(dir, "workouts.json"), nil
	}
	return filepath.Join(dir, "fitcal.db"), nil
}

// DataDir returns the directory holding the database and logs.
// FITCAL_DATA_DIR overrides the default ~/.fitcal.
func DataDir() (string, error) {
	if dir := os.Getenv("FITCAL_DATA_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".fitcal"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "fitcal", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "fitcal", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.WeekStart == "" {
		c.WeekStart = "sunday"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("unknown storage backend %q (must be sqlite or file)", c.Storage.Backend)
	}
	switch c.WeekStart {
	case "sunday", "monday":
	default:
		return fmt.Errorf("unknown week_start %q (must be sunday or monday)", c.WeekStart)
	}
	return nil
}
