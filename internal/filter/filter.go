package filter

import (
	"regexp"

	"github.com/dpavlic/logburst/internal/domain"
)

// Filter determines if a log record should be included
type Filter interface {
	// Match returns true if the record passes the filter
	Match(record *domain.LogRecord) bool
}

// Chain combines multiple filters (all must pass)
type Chain struct {
	filters []Filter
}

// NewChain creates a filter chain from multiple filters
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Match returns true only if all filters pass
func (c *Chain) Match(record *domain.LogRecord) bool {
	for _, f := range c.filters {
		if !f.Match(record) {
			return false
		}
	}
	return true
}

// Add appends a filter to the chain
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// LevelFilter filters records by exact level token equality.
// Comparison is case sensitive and values are not normalized, so "ERROR"
// and "error" are distinct levels.
type LevelFilter struct {
	level string
}

// NewLevelFilter creates a level filter
func NewLevelFilter(level string) *LevelFilter {
	return &LevelFilter{level: level}
}

// Match returns true if the record level equals the requested level
func (f *LevelFilter) Match(record *domain.LogRecord) bool {
	return record.Level == f.level
}

// RegexFilter filters records by a message pattern
type RegexFilter struct {
	pattern *regexp.Regexp
}

// NewRegexFilter creates a regex filter; a nil pattern matches everything
func NewRegexFilter(pattern *regexp.Regexp) *RegexFilter {
	return &RegexFilter{pattern: pattern}
}

// Match returns true if the message matches the pattern
func (f *RegexFilter) Match(record *domain.LogRecord) bool {
	if f.pattern == nil {
		return true
	}
	return f.pattern.MatchString(record.Message)
}

// ExcludeFilter drops records whose message matches any exclude pattern
type ExcludeFilter struct {
	patterns []*regexp.Regexp
}

// NewExcludeFilter creates an exclude filter
func NewExcludeFilter(patterns []*regexp.Regexp) *ExcludeFilter {
	return &ExcludeFilter{patterns: patterns}
}

// Match returns true if no exclude pattern matches the message
func (f *ExcludeFilter) Match(record *domain.LogRecord) bool {
	for _, p := range f.patterns {
		if p.MatchString(record.Message) {
			return false
		}
	}
	return true
}

// Apply returns the records passing the filter, preserving order.
// A nil filter passes everything through.
func Apply(records []domain.LogRecord, f Filter) []domain.LogRecord {
	if f == nil {
		return records
	}
	out := make([]domain.LogRecord, 0, len(records))
	for i := range records {
		if f.Match(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
