package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/dpavlic/logburst/internal/domain"
)

// NDJSONWriter writes detection output as NDJSON
type NDJSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // keep log text unescaped
	return &NDJSONWriter{
		w:       w,
		encoder: enc,
	}
}

// RecordOutput is the NDJSON shape of one parsed log record
type RecordOutput struct {
	Type          string `json:"type"`          // Always "record"
	SchemaVersion int    `json:"schemaVersion"` // Schema version for compatibility
	Timestamp     string `json:"timestamp"`
	Level         string `json:"level"`
	Message       string `json:"message"`
}

// AnomalyOutput is the NDJSON shape of one detected anomaly
type AnomalyOutput struct {
	Type          string `json:"type"` // Always "anomaly"
	SchemaVersion int    `json:"schemaVersion"`
	BucketStart   string `json:"bucketStart"`
	Count         int    `json:"count"`
	Level         string `json:"level"`
	IntervalSec   int    `json:"intervalSeconds"`
	Threshold     int    `json:"threshold"`
}

// WarningOutput represents a non-fatal advisory message
type WarningOutput struct {
	Type          string `json:"type"` // Always "warning"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
}

// WriteRecord outputs a single parsed record
func (w *NDJSONWriter) WriteRecord(record *domain.LogRecord) error {
	return w.encoder.Encode(RecordOutput{
		Type:          "record",
		SchemaVersion: SchemaVersion,
		Timestamp:     record.Timestamp.Format(time.RFC3339),
		Level:         record.Level,
		Message:       record.Message,
	})
}

// WriteAnomaly outputs a single anomaly with its detection parameters
func (w *NDJSONWriter) WriteAnomaly(a *domain.Anomaly, level string, intervalSeconds, threshold int) error {
	return w.encoder.Encode(AnomalyOutput{
		Type:          "anomaly",
		SchemaVersion: SchemaVersion,
		BucketStart:   a.BucketStart.Format(time.RFC3339),
		Count:         a.Count,
		Level:         level,
		IntervalSec:   intervalSeconds,
		Threshold:     threshold,
	})
}

// WriteReport outputs the detection report trailer
func (w *NDJSONWriter) WriteReport(report *domain.Report) error {
	report.SchemaVersion = SchemaVersion
	return w.encoder.Encode(report)
}

// WriteSummary outputs an aggregated record summary
func (w *NDJSONWriter) WriteSummary(summary *domain.Summary) error {
	summary.SchemaVersion = SchemaVersion
	return w.encoder.Encode(summary)
}

// WriteWarning outputs a warning message
func (w *NDJSONWriter) WriteWarning(message string) error {
	return w.encoder.Encode(&WarningOutput{
		Type:          "warning",
		SchemaVersion: SchemaVersion,
		Message:       message,
	})
}

// WriteError outputs a structured error
func (w *NDJSONWriter) WriteError(code, message string) error {
	err := domain.NewErrorOutput(code, message)
	err.SchemaVersion = SchemaVersion
	return w.encoder.Encode(err)
}

// WriteRaw outputs raw JSON data
func (w *NDJSONWriter) WriteRaw(v interface{}) error {
	return w.encoder.Encode(v)
}
