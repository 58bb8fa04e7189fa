package rules

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/philipp01105/taglog/core"
)

// Directive is one token of a combined enable specification.
type Directive struct {
	Pattern string
	Enabled bool
}

// Tokens splits a pattern argument into individual patterns. It accepts a
// string separated by whitespace or commas, a []string, or a []any of
// strings; each list element is split the same way. Empty tokens are
// dropped.
func Tokens(patterns any) ([]string, error) {
	switch v := patterns.(type) {
	case nil:
		return nil, nil
	case string:
		return split(v), nil
	case []string:
		var out []string
		for _, s := range v {
			out = append(out, split(s)...)
		}
		return out, nil
	case []any:
		var out []string
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, errors.Wrapf(core.ErrInvalidPattern, "element %d is %T", i, e)
			}
			out = append(out, split(s)...)
		}
		return out, nil
	}
	return nil, errors.Wrapf(core.ErrInvalidPattern, "%T", patterns)
}

// ParseSpec parses a combined specification such as "app,!noisy db:*".
// A token starting with '!' disables the rest of the token, any other
// token enables it.
func ParseSpec(patterns any) ([]Directive, error) {
	toks, err := Tokens(patterns)
	if err != nil {
		return nil, err
	}
	out := make([]Directive, 0, len(toks))
	for _, t := range toks {
		if rest, ok := strings.CutPrefix(t, "!"); ok {
			if rest == "" {
				continue
			}
			out = append(out, Directive{Pattern: rest})
			continue
		}
		out = append(out, Directive{Pattern: t, Enabled: true})
	}
	return out, nil
}

// split returns nil when s holds no tokens.
func split(s string) []string {
	toks := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(toks) == 0 {
		return nil
	}
	return toks
}
