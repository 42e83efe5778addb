package domain

import "time"

// Report aggregates the result of one detection run
type Report struct {
	Type          string `json:"type"`          // Always "detect_report"
	SchemaVersion int    `json:"schemaVersion"` // Schema version for compatibility

	GeneratedAt time.Time `json:"generatedAt"`

	// Detection parameters
	Level           string `json:"level"`
	Threshold       int    `json:"threshold"`
	IntervalSeconds int    `json:"intervalSeconds"`

	// Counts
	TotalRecords   int `json:"totalRecords"`
	MatchedRecords int `json:"matchedRecords"` // records at the requested level
	AnomalyCount   int `json:"anomalyCount"`

	Anomalies []Anomaly `json:"anomalies"`
}

// NewReport creates an empty report for the given parameters
func NewReport(level string, threshold, intervalSeconds int) *Report {
	return &Report{
		Type:            "detect_report",
		Level:           level,
		Threshold:       threshold,
		IntervalSeconds: intervalSeconds,
	}
}

// Summary provides aggregated statistics over a record set
type Summary struct {
	Type          string `json:"type"`          // Always "summary"
	SchemaVersion int    `json:"schemaVersion"` // Schema version for compatibility

	// Time window
	WindowStart time.Time `json:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd"`

	// Counts keyed by verbatim level token
	TotalCount  int            `json:"totalCount"`
	LevelCounts map[string]int `json:"levelCounts"`

	// Top repeated messages after normalization
	TopMessages []MessageCount `json:"topMessages,omitempty"`
}

// MessageCount pairs a normalized message with its occurrence count
type MessageCount struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// NewSummary creates a new empty summary
func NewSummary() *Summary {
	return &Summary{
		Type:        "summary",
		LevelCounts: make(map[string]int),
	}
}

// ErrorOutput represents a structured error for NDJSON output
type ErrorOutput struct {
	Type          string `json:"type"`          // Always "error"
	SchemaVersion int    `json:"schemaVersion"` // Schema version for compatibility
	Code          string `json:"code"`          // Machine-readable error code
	Message       string `json:"message"`       // Human-readable message
}

// NewErrorOutput creates a new error output
// Note: SchemaVersion should be set by the caller (output package)
func NewErrorOutput(code, message string) *ErrorOutput {
	return &ErrorOutput{
		Type:    "error",
		Code:    code,
		Message: message,
	}
}
