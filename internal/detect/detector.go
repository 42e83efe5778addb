package detect

import (
	"fmt"
	"sort"
	"time"

	"github.com/dpavlic/logburst/internal/domain"
	"github.com/dpavlic/logburst/internal/filter"
)

// Options configures one detection run
type Options struct {
	// Level is the severity token to analyze, compared case-sensitively.
	Level string
	// Threshold is the strict lower bound a bucket count must exceed.
	Threshold int
	// IntervalSeconds is the fixed bucket width. Must be positive.
	IntervalSeconds int
}

// Validate rejects configurations the bucketing math cannot support
func (o Options) Validate() error {
	if o.IntervalSeconds <= 0 {
		return fmt.Errorf("interval must be a positive number of seconds, got %d", o.IntervalSeconds)
	}
	if o.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %d", o.Threshold)
	}
	return nil
}

// Detect groups records at the requested level into fixed-width time buckets
// and returns every bucket whose count strictly exceeds the threshold.
// A count equal to the threshold does not qualify. Anomalies are returned in
// ascending bucket order; no anomalies yields an empty slice, whether the
// level never matched or all counts stayed under the threshold.
func Detect(records []domain.LogRecord, opts Options) ([]domain.Anomaly, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	matched := filter.Apply(records, filter.NewLevelFilter(opts.Level))

	counts := make(map[int64]int)
	for _, record := range matched {
		counts[BucketStart(record.Timestamp, opts.IntervalSeconds)]++
	}

	anomalies := make([]domain.Anomaly, 0)
	for start, count := range counts {
		if count > opts.Threshold {
			anomalies = append(anomalies, domain.Anomaly{
				BucketStart: time.Unix(start, 0).UTC(),
				Count:       count,
			})
		}
	}

	sort.Slice(anomalies, func(i, j int) bool {
		return anomalies[i].BucketStart.Before(anomalies[j].BucketStart)
	})

	return anomalies, nil
}

// BucketStart floors a timestamp to the start of its containing bucket,
// expressed as Unix seconds.
func BucketStart(ts time.Time, intervalSeconds int) int64 {
	interval := int64(intervalSeconds)
	sec := ts.Unix()
	start := sec / interval * interval
	// Go integer division truncates toward zero; pre-epoch timestamps still
	// have to floor downward.
	if sec < 0 && sec%interval != 0 {
		start -= interval
	}
	return start
}

// MatchCount returns how many records carry the requested level.
// It lets callers distinguish "nothing matched the level" from "counts stayed
// under the threshold" in their reporting, without changing the Detect contract.
func MatchCount(records []domain.LogRecord, level string) int {
	f := filter.NewLevelFilter(level)
	n := 0
	for i := range records {
		if f.Match(&records[i]) {
			n++
		}
	}
	return n
}
