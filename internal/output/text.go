package output

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/dpavlic/logburst/internal/domain"
)

// TextWriter writes detection output as human-readable text.
// Styling is opt-in so piped output stays free of escape sequences.
type TextWriter struct {
	w      io.Writer
	styled bool
}

// NewTextWriter creates a new text writer
func NewTextWriter(w io.Writer, styled bool) *TextWriter {
	return &TextWriter{w: w, styled: styled}
}

func (w *TextWriter) level(level string) string {
	if !w.styled {
		return level
	}
	return LevelStyle(level).Render(level)
}

// WriteRecords dumps all parsed records as a table, in record order
func (w *TextWriter) WriteRecords(records []domain.LogRecord) error {
	table := tablewriter.NewWriter(w.w)
	table.Header([]string{"Timestamp", "Level", "Message"})
	for _, r := range records {
		if err := table.Append([]string{
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Level,
			r.Message,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

// WriteAnomaly outputs a single anomaly line
func (w *TextWriter) WriteAnomaly(a *domain.Anomaly, level string, intervalSeconds int) error {
	line := fmt.Sprintf("Anomaly detected! %d %s logs in %d seconds at %s",
		a.Count, level, intervalSeconds, a.BucketStart.Format("2006-01-02 15:04:05"))
	if w.styled {
		line = Styles.Danger.Render(line)
	}
	_, err := fmt.Fprintln(w.w, line)
	return err
}

// WriteNoAnomalies outputs the all-clear summary line
func (w *TextWriter) WriteNoAnomalies(level string, intervalSeconds, threshold int) error {
	line := fmt.Sprintf("No anomalies detected for %s logs over a %d-second interval (threshold: %d).",
		level, intervalSeconds, threshold)
	if w.styled {
		line = Styles.Success.Render(line)
	}
	_, err := fmt.Fprintln(w.w, line)
	return err
}

// WriteWarning outputs a non-fatal advisory line
func (w *TextWriter) WriteWarning(message string) error {
	line := "Warning: " + message
	if w.styled {
		line = Styles.Warning.Render(line)
	}
	_, err := fmt.Fprintln(w.w, line)
	return err
}

// WriteReport outputs the run parameters and counts
func (w *TextWriter) WriteReport(report *domain.Report) error {
	if _, err := fmt.Fprintf(w.w, "\nAnalyzed %d records (%d at level %s); %d anomalous bucket(s). Generated %s.\n",
		report.TotalRecords, report.MatchedRecords, report.Level,
		report.AnomalyCount, report.GeneratedAt.Format(time.RFC3339)); err != nil {
		return err
	}
	return nil
}

// WriteSummary outputs aggregated record statistics
func (w *TextWriter) WriteSummary(summary *domain.Summary) error {
	header := "Summary"
	if w.styled {
		header = Styles.Header.Render(header)
	}
	if _, err := fmt.Fprintln(w.w, header); err != nil {
		return err
	}

	if !summary.WindowStart.IsZero() && !summary.WindowEnd.IsZero() {
		duration := summary.WindowEnd.Sub(summary.WindowStart)
		if _, err := fmt.Fprintf(w.w, "Time range: %s to %s (%s)\n",
			summary.WindowStart.Format("2006-01-02 15:04:05"),
			summary.WindowEnd.Format("2006-01-02 15:04:05"),
			duration); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w.w, "Total records: %d\n", summary.TotalCount); err != nil {
		return err
	}

	levels := make([]string, 0, len(summary.LevelCounts))
	for level := range summary.LevelCounts {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	for _, level := range levels {
		if _, err := fmt.Fprintf(w.w, "  %s: %d\n", w.level(level), summary.LevelCounts[level]); err != nil {
			return err
		}
	}

	if len(summary.TopMessages) > 0 {
		if _, err := fmt.Fprintln(w.w, "\nTop messages:"); err != nil {
			return err
		}
		for _, m := range summary.TopMessages {
			if _, err := fmt.Fprintf(w.w, "  [%dx] %s\n", m.Count, m.Message); err != nil {
				return err
			}
		}
	}

	return nil
}
