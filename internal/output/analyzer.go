package output

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dpavlic/logburst/internal/domain"
)

var (
	hexAddrRegex = regexp.MustCompile(`0x[0-9a-fA-F]+`)
	numberRegex  = regexp.MustCompile(`\d+`)
)

// Analyzer aggregates record sets into operator-friendly summaries
type Analyzer struct{}

// NewAnalyzer creates a new analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Summarize builds per-level counts and top repeated messages over records.
// Level tokens are counted verbatim, so "ERROR" and "error" are separate rows.
func (a *Analyzer) Summarize(records []domain.LogRecord) *domain.Summary {
	summary := domain.NewSummary()

	if len(records) == 0 {
		return summary
	}

	summary.WindowStart = records[0].Timestamp
	summary.WindowEnd = records[len(records)-1].Timestamp

	messages := make(map[string]int)
	for _, record := range records {
		summary.TotalCount++
		summary.LevelCounts[record.Level]++
		messages[a.normalizeMessage(record.Message)]++
	}

	summary.TopMessages = topMessages(messages, 5)

	return summary
}

// normalizeMessage removes variable parts to group similar messages
func (a *Analyzer) normalizeMessage(msg string) string {
	msg = hexAddrRegex.ReplaceAllString(msg, "<addr>")
	msg = numberRegex.ReplaceAllString(msg, "<n>")

	if len(msg) > 100 {
		msg = msg[:100] + "..."
	}

	return strings.TrimSpace(msg)
}

// topMessages returns the most frequent repeated messages, ties broken
// alphabetically for deterministic output. Messages seen once are omitted.
func topMessages(counts map[string]int, limit int) []domain.MessageCount {
	var pairs []domain.MessageCount
	for msg, count := range counts {
		if count < 2 {
			continue
		}
		pairs = append(pairs, domain.MessageCount{Message: msg, Count: count})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Message < pairs[j].Message
	})

	if len(pairs) > limit {
		pairs = pairs[:limit]
	}

	return pairs
}
