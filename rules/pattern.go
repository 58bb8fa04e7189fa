package rules

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipp01105/taglog/core"
)

// Pattern is a compiled tag pattern. The only wildcard is '*', which
// matches any run of characters including none. The whole tag must match.
type Pattern struct {
	source string
	re     *regexp.Regexp
	// literal patterns skip the regexp entirely
	literal bool
}

// Compile turns a wildcard string into a Pattern. Matching is case
// sensitive and anchored at both ends; the empty pattern matches only the
// empty tag.
func Compile(pattern string) (*Pattern, error) {
	if !strings.Contains(pattern, "*") {
		return &Pattern{source: pattern, literal: true}, nil
	}

	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	re, err := regexp.Compile("^" + strings.Join(parts, ".*") + "$")
	if err != nil {
		return nil, errors.Wrapf(core.ErrInvalidPattern, "%q: %v", pattern, err)
	}
	return &Pattern{source: pattern, re: re}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether tag matches the pattern.
func (p *Pattern) Match(tag string) bool {
	if p.literal {
		return tag == p.source
	}
	return p.re.MatchString(tag)
}

// String returns the source pattern
func (p *Pattern) String() string {
	return p.source
}
