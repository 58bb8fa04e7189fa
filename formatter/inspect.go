package formatter

import (
	"regexp"

	"github.com/davecgh/go-spew/spew"
)

var newlineRun = regexp.MustCompile(`\s*\n\s*`)

// SpewInspector is the default Inspector. It prints values on a single
// line with sorted map keys and no pointer addresses.
type SpewInspector struct{}

// Inspect renders v descending at most depth levels below the top value.
func (SpewInspector) Inspect(v any, depth int) string {
	cfg := spew.ConfigState{
		Indent:                  " ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
		ContinueOnMethod:        false,
	}
	if depth >= 0 {
		// spew counts the top value as a level, 0 meaning unlimited
		cfg.MaxDepth = depth + 1
	}
	return collapse(cfg.Sprintf("%+v", v))
}

// collapse keeps one record on one line.
func collapse(s string) string {
	return newlineRun.ReplaceAllString(s, " ")
}
