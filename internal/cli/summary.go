package cli

import (
	"fmt"

	"github.com/dpavlic/logburst/internal/filter"
	"github.com/dpavlic/logburst/internal/logfile"
	"github.com/dpavlic/logburst/internal/output"
)

// SummaryCmd summarizes level counts and repeated messages in a log file
type SummaryCmd struct {
	File    string   `arg:"" required:"" help:"Path to the log file"`
	Pattern string   `short:"p" help:"Only consider records whose message matches this regex"`
	Exclude []string `help:"Drop records whose message matches any of these regexes"`
}

// Run executes the summary command
func (c *SummaryCmd) Run(globals *Globals) error {
	recordFilter, err := buildFilters(c.Pattern, c.Exclude)
	if err != nil {
		return c.outputError(globals, "INVALID_PATTERN", fmt.Sprintf("invalid regex pattern: %s", err))
	}

	loader := logfile.NewLoader(globals.Logger)
	records, err := loader.Load(c.File)
	if err != nil {
		return c.outputError(globals, "FILE_NOT_FOUND", fmt.Sprintf("cannot open file: %s", err))
	}
	records = filter.Apply(records, recordFilter)

	if len(records) == 0 {
		if err := outputWarningCommon(globals, "no valid log entries found"); err != nil {
			return err
		}
	}

	summary := output.NewAnalyzer().Summarize(records)

	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteSummary(summary)
	}
	return output.NewTextWriter(globals.Stdout, styledOutput(globals)).WriteSummary(summary)
}

func (c *SummaryCmd) outputError(globals *Globals, code, message string) error {
	return outputErrorCommon(globals, code, message)
}
