package logfile

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dpavlic/logburst/internal/domain"
)

// Loader reads a log file into memory, keeping only parseable records
type Loader struct {
	logger *zap.SugaredLogger
}

// NewLoader creates a new loader. A nil logger disables diagnostics.
func NewLoader(logger *zap.SugaredLogger) *Loader {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Loader{logger: logger}
}

// Load reads the file at path line by line in file order, applying Parse to
// each line and keeping only successful parses. Malformed lines are dropped
// silently (debug diagnostics only). An unopenable file is the only hard
// failure; a readable file with zero valid records returns an empty slice
// and no error.
func (l *Loader) Load(path string) ([]domain.LogRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			l.logger.Debugw("failed to close file", "path", path, "error", err)
		}
	}()

	var records []domain.LogRecord
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		record, ok := Parse(scanner.Text())
		if !ok {
			l.logger.Debugw("skipping unparseable line", "line", lineNum)
			continue
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return records, nil
}
