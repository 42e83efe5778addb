package logfile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantOK    bool
		timestamp time.Time
		level     string
		message   string
	}{
		{
			name:      "well formed line",
			line:      "2024-01-01 10:00:01 ERROR database connection failed",
			wantOK:    true,
			timestamp: time.Date(2024, 1, 1, 10, 0, 1, 0, time.UTC),
			level:     "ERROR",
			message:   "database connection failed",
		},
		{
			name:      "message keeps internal spaces verbatim",
			line:      "2024-06-15 23:59:59 WARN disk usage at 91%  (threshold 90%)",
			wantOK:    true,
			timestamp: time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC),
			level:     "WARN",
			message:   "disk usage at 91%  (threshold 90%)",
		},
		{
			name:      "level token is case sensitive and verbatim",
			line:      "2024-01-01 10:00:01 error lowercase stays lowercase",
			wantOK:    true,
			timestamp: time.Date(2024, 1, 1, 10, 0, 1, 0, time.UTC),
			level:     "error",
			message:   "lowercase stays lowercase",
		},
		{
			name:      "surrounding whitespace is tolerated",
			line:      "   2024-01-01 10:00:01 INFO started\n",
			wantOK:    true,
			timestamp: time.Date(2024, 1, 1, 10, 0, 1, 0, time.UTC),
			level:     "INFO",
			message:   "started",
		},
		{
			name:      "underscores allowed in level token",
			line:      "2024-01-01 10:00:01 APP_ERROR custom level",
			wantOK:    true,
			timestamp: time.Date(2024, 1, 1, 10, 0, 1, 0, time.UTC),
			level:     "APP_ERROR",
			message:   "custom level",
		},
		{name: "empty line", line: "", wantOK: false},
		{name: "whitespace only", line: "   \t  ", wantOK: false},
		{name: "missing message", line: "2024-01-01 10:00:01 ERROR", wantOK: false},
		{name: "missing level and message", line: "2024-01-01 10:00:01", wantOK: false},
		{name: "missing time", line: "2024-01-01 ERROR something", wantOK: false},
		{name: "free-form text", line: "this is not a log line", wantOK: false},
		{name: "wrong date separators", line: "2024/01/01 10:00:01 ERROR x", wantOK: false},
		{name: "non-digit time component", line: "2024-01-01 10:0a:01 ERROR x", wantOK: false},
		{name: "level with punctuation", line: "2024-01-01 10:00:01 ERR-OR x", wantOK: false},
		{name: "invalid month", line: "2024-13-01 10:00:00 ERROR x", wantOK: false},
		{name: "invalid day", line: "2024-02-30 10:00:00 ERROR x", wantOK: false},
		{name: "invalid hour", line: "2024-01-01 25:00:00 ERROR x", wantOK: false},
		{name: "invalid second", line: "2024-01-01 10:00:61 ERROR x", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, ok := Parse(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.timestamp, record.Timestamp)
			assert.Equal(t, tt.level, record.Level)
			assert.Equal(t, tt.message, record.Message)
		})
	}
}

func TestParse_NDJSON(t *testing.T) {
	t.Run("parses RFC3339 timestamps", func(t *testing.T) {
		record, ok := Parse(`{"timestamp":"2024-01-01T10:00:01Z","level":"ERROR","message":"boom"}`)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 1, 0, time.UTC), record.Timestamp)
		assert.Equal(t, "ERROR", record.Level)
		assert.Equal(t, "boom", record.Message)
	})

	t.Run("parses plain layout timestamps", func(t *testing.T) {
		record, ok := Parse(`{"timestamp":"2024-01-01 10:00:01","level":"WARN","message":"slow"}`)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 1, 0, time.UTC), record.Timestamp)
	})

	t.Run("ignores extra fields", func(t *testing.T) {
		record, ok := Parse(`{"timestamp":"2024-01-01T10:00:01Z","level":"INFO","message":"hi","pid":42}`)
		require.True(t, ok)
		assert.Equal(t, "hi", record.Message)
	})

	t.Run("skips objects missing fields", func(t *testing.T) {
		_, ok := Parse(`{"timestamp":"2024-01-01T10:00:01Z","message":"no level"}`)
		assert.False(t, ok)

		_, ok = Parse(`{"level":"ERROR","message":"no timestamp"}`)
		assert.False(t, ok)
	})

	t.Run("skips invalid JSON", func(t *testing.T) {
		_, ok := Parse(`{"timestamp": broken`)
		assert.False(t, ok)
	})

	t.Run("skips unparseable timestamp", func(t *testing.T) {
		_, ok := Parse(`{"timestamp":"yesterday","level":"ERROR","message":"x"}`)
		assert.False(t, ok)
	})
}
