package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/dpavlic/logburst/internal/cli"
	"github.com/dpavlic/logburst/internal/config"
)

func main() {
	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing
	// These will be overridden by CLI flags if specified
	vars := kong.Vars{
		"config_format":    cfg.Format,
		"config_level":     cfg.Defaults.Level,
		"config_threshold": strconv.Itoa(cfg.Defaults.Threshold),
		"config_interval":  strconv.Itoa(cfg.Defaults.Interval),
	}

	ctx := kong.Parse(&c,
		kong.Name("logburst"),
		kong.Description("Flag time windows where a log file bursts past a severity threshold\n\nSTART HERE: logburst detect app.log --level ERROR"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	logger := buildLogger(c.Verbose || cfg.Verbose)
	defer func() {
		_ = logger.Sync()
	}()

	globals := cli.NewGlobals(&c, cfg, logger.Sugar())
	if err := ctx.Run(globals); err != nil {
		os.Exit(1)
	}
}

// buildLogger returns a development logger in verbose mode, otherwise a nop
// logger so diagnostics stay out of normal output.
func buildLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
