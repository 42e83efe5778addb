package cli

import (
	"fmt"

	"github.com/benbjohnson/clock"

	"github.com/dpavlic/logburst/internal/detect"
	"github.com/dpavlic/logburst/internal/domain"
	"github.com/dpavlic/logburst/internal/filter"
	"github.com/dpavlic/logburst/internal/logfile"
	"github.com/dpavlic/logburst/internal/output"
)

// DetectCmd analyzes a log file for bursts of a severity level
type DetectCmd struct {
	File      string   `arg:"" required:"" help:"Path to the log file"`
	Level     string   `default:"${config_level}" help:"Severity token to analyze (case-sensitive exact match)"`
	Threshold int      `default:"${config_threshold}" help:"Bucket count must strictly exceed this to be reported"`
	Interval  int      `default:"${config_interval}" help:"Bucket width in seconds"`
	Pattern   string   `short:"p" help:"Only consider records whose message matches this regex"`
	Exclude   []string `help:"Drop records whose message matches any of these regexes"`
	NoDump    bool     `help:"Suppress the full record dump"`

	clk clock.Clock
}

func (c *DetectCmd) clock() clock.Clock {
	if c.clk == nil {
		c.clk = clock.New()
	}
	return c.clk
}

// Run executes the detect command
func (c *DetectCmd) Run(globals *Globals) error {
	opts := detect.Options{
		Level:           c.Level,
		Threshold:       c.Threshold,
		IntervalSeconds: c.Interval,
	}
	if err := opts.Validate(); err != nil {
		return c.outputError(globals, "INVALID_CONFIG", err.Error())
	}

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

	anomalies, err := detect.Detect(records, opts)
	if err != nil {
		return c.outputError(globals, "INVALID_CONFIG", err.Error())
	}

	report := domain.NewReport(c.Level, c.Threshold, c.Interval)
	report.GeneratedAt = c.clock().Now().UTC()
	report.TotalRecords = len(records)
	report.MatchedRecords = detect.MatchCount(records, c.Level)
	report.AnomalyCount = len(anomalies)
	report.Anomalies = anomalies

	if globals.Format == "ndjson" {
		return c.writeNDJSON(globals, records, anomalies, report)
	}
	return c.writeText(globals, records, anomalies, report)
}

func (c *DetectCmd) writeNDJSON(globals *Globals, records []domain.LogRecord, anomalies []domain.Anomaly, report *domain.Report) error {
	writer := output.NewNDJSONWriter(globals.Stdout)

	if !c.NoDump && !globals.Quiet {
		for i := range records {
			if err := writer.WriteRecord(&records[i]); err != nil {
				return err
			}
		}
	}

	for i := range anomalies {
		if err := writer.WriteAnomaly(&anomalies[i], c.Level, c.Interval, c.Threshold); err != nil {
			return err
		}
	}

	return writer.WriteReport(report)
}

func (c *DetectCmd) writeText(globals *Globals, records []domain.LogRecord, anomalies []domain.Anomaly, report *domain.Report) error {
	writer := output.NewTextWriter(globals.Stdout, styledOutput(globals))

	if !c.NoDump && !globals.Quiet && len(records) > 0 {
		if err := writer.WriteRecords(records); err != nil {
			return err
		}
	}

	if len(anomalies) == 0 {
		if err := writer.WriteNoAnomalies(c.Level, c.Interval, c.Threshold); err != nil {
			return err
		}
	} else {
		for i := range anomalies {
			if err := writer.WriteAnomaly(&anomalies[i], c.Level, c.Interval); err != nil {
				return err
			}
		}
	}

	if globals.Quiet {
		return nil
	}
	return writer.WriteReport(report)
}

func (c *DetectCmd) outputError(globals *Globals, code, message string) error {
	return outputErrorCommon(globals, code, message)
}
