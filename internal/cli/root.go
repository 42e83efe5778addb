package cli

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/dpavlic/logburst/internal/config"
)

// CLI is the root command structure for logburst
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"text,ndjson" help:"Output format"`
	Quiet   bool   `short:"q" help:"Suppress non-essential output (record dumps, warnings)"`
	Verbose bool   `short:"v" help:"Show debug output (skipped lines, config resolution)"`

	// Commands
	Detect  DetectCmd  `cmd:"" default:"withargs" help:"Detect bursts of a severity level in a log file"`
	Summary SummaryCmd `cmd:"" help:"Summarize level counts and repeated messages in a log file"`
	Parse   ParseCmd   `cmd:"" help:"Parse a log file and dump the valid records"`
	Config  ConfigCmd  `cmd:"" help:"Show or manage configuration"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.SugaredLogger
}

// NewGlobals creates a new Globals instance from CLI flags
func NewGlobals(cli *CLI, cfg *config.Config, logger *zap.SugaredLogger) *Globals {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Logger:  logger,
	}

	// Apply config values if CLI flags weren't explicitly set
	if !cli.Quiet && cfg.Quiet {
		g.Quiet = cfg.Quiet
	}
	if !cli.Verbose && cfg.Verbose {
		g.Verbose = cfg.Verbose
	}

	return g
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		_, err := io.WriteString(globals.Stdout, `{"type":"version","version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
		return err
	}
	_, err := io.WriteString(globals.Stdout, "logburst version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
