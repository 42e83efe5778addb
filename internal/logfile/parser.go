package logfile

import (
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dpavlic/logburst/internal/domain"
)

// lineRegex matches the plain-text record shape:
// a date, a time, a level token, and the rest of the line as the message.
var lineRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (\w+) (.+)$`)

// timestampLayout is the second-resolution layout used by plain-text records.
const timestampLayout = "2006-01-02 15:04:05"

// Parse converts one raw line into a LogRecord.
// The second return value is false when the line does not match the expected
// shape or its timestamp is not a valid calendar date/time; such lines are
// skipped, never reported as errors.
func Parse(line string) (domain.LogRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.LogRecord{}, false
	}

	if line[0] == '{' {
		return parseNDJSON(line)
	}

	m := lineRegex.FindStringSubmatch(line)
	if m == nil {
		return domain.LogRecord{}, false
	}

	ts, err := time.Parse(timestampLayout, m[1])
	if err != nil {
		// Shape matched but the date/time is not a real instant (month 13 etc).
		return domain.LogRecord{}, false
	}

	return domain.LogRecord{
		Timestamp: ts,
		Level:     m[2],
		Message:   m[3],
	}, true
}

// parseNDJSON extracts timestamp/level/message from a JSON object line.
// Tolerant by design: anything missing or malformed skips the line.
func parseNDJSON(line string) (domain.LogRecord, bool) {
	if !gjson.Valid(line) {
		return domain.LogRecord{}, false
	}

	res := gjson.GetMany(line, "timestamp", "level", "message")
	tsStr, level, message := res[0].String(), res[1].String(), res[2].String()
	if tsStr == "" || level == "" || message == "" {
		return domain.LogRecord{}, false
	}

	ts, ok := parseNDJSONTimestamp(tsStr)
	if !ok {
		return domain.LogRecord{}, false
	}

	return domain.LogRecord{
		Timestamp: ts,
		Level:     level,
		Message:   message,
	}, true
}

// parseNDJSONTimestamp accepts RFC3339 variants plus the plain-text layout.
func parseNDJSONTimestamp(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		timestampLayout,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
