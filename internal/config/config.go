package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Default values for detection
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DefaultsConfig holds default detection parameters
type DefaultsConfig struct {
	// Severity token to analyze, compared case-sensitively
	Level string `mapstructure:"level"`

	// Strict lower bound a bucket count must exceed
	Threshold int `mapstructure:"threshold"`

	// Bucket width in seconds
	Interval int `mapstructure:"interval"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "text",
		Quiet:   false,
		Verbose: false,
		Defaults: DefaultsConfig{
			Level:     "ERROR",
			Threshold: 3,
			Interval:  30,
		},
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.logburst.yaml or ./.logburst.yml
// 2. ~/.logburst.yaml or ~/.logburst.yml
// 3. $XDG_CONFIG_HOME/logburst/config.yaml (or ~/.config/logburst/config.yaml)
// 4. /etc/logburst/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		v := viper.New()
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}

		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	applyEnvOverrides(cfg)

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".logburst.yaml", ".logburst.yml", "logburst.yaml", "logburst.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	// Search locations in order of precedence (highest first)
	var searchPaths []string

	cwd, err := os.Getwd()
	if err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}
	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "logburst"))
	}
	searchPaths = append(searchPaths, "/etc/logburst")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOGBURST_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOGBURST_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("LOGBURST_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("LOGBURST_LEVEL"); v != "" {
		cfg.Defaults.Level = v
	}
	if v := os.Getenv("LOGBURST_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Defaults.Threshold = n
		}
	}
	if v := os.Getenv("LOGBURST_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Defaults.Interval = n
		}
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
