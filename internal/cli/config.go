package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dpavlic/logburst/internal/config"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if globals.Format == "ndjson" {
		out := map[string]interface{}{
			"type":     "config",
			"format":   cfg.Format,
			"quiet":    cfg.Quiet,
			"verbose":  cfg.Verbose,
			"defaults": cfg.Defaults,
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(out)
	}

	// Text output
	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "  format:  %s\n", cfg.Format)
	fmt.Fprintf(globals.Stdout, "  quiet:   %v\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose: %v\n", cfg.Verbose)
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Defaults:")
	fmt.Fprintf(globals.Stdout, "  level:     %s\n", cfg.Defaults.Level)
	fmt.Fprintf(globals.Stdout, "  threshold: %d\n", cfg.Defaults.Threshold)
	fmt.Fprintf(globals.Stdout, "  interval:  %d\n", cfg.Defaults.Interval)

	if path := config.ConfigFile(); path != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", path)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "ndjson" {
		out := map[string]interface{}{
			"type": "config_path",
			"path": path,
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(out)
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ~/.logburst.yaml")
		fmt.Fprintln(globals.Stdout, "  ./logburst.yaml")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}

	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	sampleConfig := `# logburst configuration file
# Place this file at ~/.logburst.yaml or ./logburst.yaml

# Output format: "text" (default) or "ndjson"
format: text

# Suppress record dumps and warnings
quiet: false

# Enable verbose/debug output
verbose: false

# Default detection parameters
defaults:
  # Severity token to analyze (case-sensitive exact match)
  level: ERROR

  # A bucket must contain strictly more records than this to be reported
  threshold: 3

  # Bucket width in seconds
  interval: 30
`

	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}
