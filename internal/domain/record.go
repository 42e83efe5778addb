package domain

import "time"

// LogRecord represents one successfully parsed log line
type LogRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

// Anomaly represents a time bucket whose record count exceeded the threshold
type Anomaly struct {
	BucketStart time.Time `json:"bucketStart"`
	Count       int       `json:"count"`
}
