package filter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dpavlic/logburst/internal/domain"
)

func TestLevelFilter(t *testing.T) {
	tests := []struct {
		name     string
		want     string
		level    string
		expected bool
	}{
		{"exact match", "ERROR", "ERROR", true},
		{"different level", "ERROR", "WARN", false},
		{"case sensitive lowercase", "ERROR", "error", false},
		{"case sensitive mixed", "ERROR", "Error", false},
		{"custom token match", "APP_ERROR", "APP_ERROR", true},
		{"no prefix matching", "ERROR", "ERRORS", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := NewLevelFilter(tt.want)
			record := &domain.LogRecord{Level: tt.level}
			assert.Equal(t, tt.expected, filter.Match(record))
		})
	}
}

func TestChain(t *testing.T) {
	t.Run("empty chain matches all", func(t *testing.T) {
		chain := NewChain()
		record := &domain.LogRecord{Level: "DEBUG"}
		assert.True(t, chain.Match(record))
	})

	t.Run("all filters must pass", func(t *testing.T) {
		levelFilter := NewLevelFilter("ERROR")
		regexFilter := NewRegexFilter(regexp.MustCompile("timeout"))
		chain := NewChain(levelFilter, regexFilter)

		// Wrong level
		record1 := &domain.LogRecord{Level: "INFO", Message: "timeout waiting for lock"}
		assert.False(t, chain.Match(record1))

		// Message doesn't match
		record2 := &domain.LogRecord{Level: "ERROR", Message: "connection refused"}
		assert.False(t, chain.Match(record2))

		// Both conditions pass
		record3 := &domain.LogRecord{Level: "ERROR", Message: "timeout waiting for lock"}
		assert.True(t, chain.Match(record3))
	})

	t.Run("add filter to chain", func(t *testing.T) {
		chain := NewChain()
		chain.Add(NewLevelFilter("ERROR"))

		assert.False(t, chain.Match(&domain.LogRecord{Level: "DEBUG"}))
		assert.True(t, chain.Match(&domain.LogRecord{Level: "ERROR"}))
	})
}

func TestRegexFilter(t *testing.T) {
	t.Run("nil pattern matches all", func(t *testing.T) {
		filter := NewRegexFilter(nil)
		assert.True(t, filter.Match(&domain.LogRecord{Message: "anything"}))
	})

	t.Run("matches message", func(t *testing.T) {
		filter := NewRegexFilter(regexp.MustCompile(`timeout|refused`))

		assert.True(t, filter.Match(&domain.LogRecord{Message: "request timeout"}))
		assert.True(t, filter.Match(&domain.LogRecord{Message: "connection refused"}))
		assert.False(t, filter.Match(&domain.LogRecord{Message: "all good"}))
	})
}

func TestExcludeFilter(t *testing.T) {
	t.Run("no patterns matches all", func(t *testing.T) {
		filter := NewExcludeFilter(nil)
		assert.True(t, filter.Match(&domain.LogRecord{Message: "anything"}))
	})

	t.Run("drops matching messages", func(t *testing.T) {
		filter := NewExcludeFilter([]*regexp.Regexp{
			regexp.MustCompile("heartbeat"),
			regexp.MustCompile("keepalive"),
		})

		assert.False(t, filter.Match(&domain.LogRecord{Message: "heartbeat ok"}))
		assert.False(t, filter.Match(&domain.LogRecord{Message: "keepalive ping"}))
		assert.True(t, filter.Match(&domain.LogRecord{Message: "real work"}))
	})
}

func TestApply(t *testing.T) {
	records := []domain.LogRecord{
		{Level: "ERROR", Message: "a"},
		{Level: "INFO", Message: "b"},
		{Level: "ERROR", Message: "c"},
	}

	t.Run("nil filter passes everything through", func(t *testing.T) {
		assert.Len(t, Apply(records, nil), 3)
	})

	t.Run("preserves order", func(t *testing.T) {
		out := Apply(records, NewLevelFilter("ERROR"))
		assert.Len(t, out, 2)
		assert.Equal(t, "a", out[0].Message)
		assert.Equal(t, "c", out[1].Message)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		assert.Empty(t, Apply(records, NewLevelFilter("FATAL")))
	})
}
