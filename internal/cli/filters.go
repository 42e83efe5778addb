package cli

import (
	"os"
	"regexp"

	"github.com/mattn/go-isatty"

	"github.com/dpavlic/logburst/internal/filter"
)

// buildFilters compiles optional pattern/exclude predicates for record dumps
// and detection. Returns nil when nothing is configured.
func buildFilters(patternStr string, exclude []string) (filter.Filter, error) {
	var filters []filter.Filter

	if patternStr != "" {
		pattern, err := regexp.Compile(patternStr)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter.NewRegexFilter(pattern))
	}

	if len(exclude) > 0 {
		var patterns []*regexp.Regexp
		for _, excl := range exclude {
			re, err := regexp.Compile(excl)
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, re)
		}
		filters = append(filters, filter.NewExcludeFilter(patterns))
	}

	if len(filters) == 0 {
		return nil, nil
	}
	return filter.NewChain(filters...), nil
}

// styledOutput reports whether text output should carry ANSI styling.
// Only real terminals get color; buffers and pipes stay plain.
func styledOutput(globals *Globals) bool {
	f, ok := globals.Stdout.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
