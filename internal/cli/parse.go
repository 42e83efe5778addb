package cli

import (
	"fmt"

	"github.com/dpavlic/logburst/internal/logfile"
	"github.com/dpavlic/logburst/internal/output"
)

// ParseCmd parses a log file and dumps the valid records
type ParseCmd struct {
	File string `arg:"" required:"" help:"Path to the log file"`
}

// Run executes the parse command
func (c *ParseCmd) Run(globals *Globals) error {
	loader := logfile.NewLoader(globals.Logger)
	records, err := loader.Load(c.File)
	if err != nil {
		return c.outputError(globals, "FILE_NOT_FOUND", fmt.Sprintf("cannot open file: %s", err))
	}

	if len(records) == 0 {
		return outputWarningCommon(globals, "no valid log entries found")
	}

	if globals.Format == "ndjson" {
		writer := output.NewNDJSONWriter(globals.Stdout)
		for i := range records {
			if err := writer.WriteRecord(&records[i]); err != nil {
				return err
			}
		}
		return nil
	}

	return output.NewTextWriter(globals.Stdout, styledOutput(globals)).WriteRecords(records)
}

func (c *ParseCmd) outputError(globals *Globals, code, message string) error {
	return outputErrorCommon(globals, code, message)
}
