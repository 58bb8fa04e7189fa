package rules

import (
	"github.com/philipp01105/taglog/core"
)

// Rule governs every tag its pattern matches. HasLevel is false when the
// rule was created without a level; matching loggers then keep their own.
type Rule struct {
	Pattern  *Pattern
	Enabled  bool
	Level    core.Level
	HasLevel bool
}

// Source returns the pattern string the rule was created from
func (r Rule) Source() string {
	return r.Pattern.String()
}

// Store is the ordered rule list. Lookups are first-match-wins in
// insertion order, and updating an existing pattern keeps its position.
//
// Store is not safe for concurrent use; the owning logger context
// serializes access.
type Store struct {
	rules []*Rule
	index map[string]int
}

// NewStore creates an empty rule store
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Upsert creates or updates the rule for pattern. A nil level leaves the
// level of an existing rule untouched.
func (s *Store) Upsert(pattern string, enabled bool, level *core.Level) (Rule, error) {
	if i, ok := s.index[pattern]; ok {
		r := s.rules[i]
		r.Enabled = enabled
		if level != nil {
			r.Level = *level
			r.HasLevel = true
		}
		return *r, nil
	}

	p, err := Compile(pattern)
	if err != nil {
		return Rule{}, err
	}
	r := &Rule{Pattern: p, Enabled: enabled}
	if level != nil {
		r.Level = *level
		r.HasLevel = true
	}
	s.index[pattern] = len(s.rules)
	s.rules = append(s.rules, r)
	return *r, nil
}

// Remove deletes the rule created from pattern. It reports whether a
// rule was removed.
func (s *Store) Remove(pattern string) bool {
	i, ok := s.index[pattern]
	if !ok {
		return false
	}
	copy(s.rules[i:], s.rules[i+1:])
	s.rules[len(s.rules)-1] = nil
	s.rules = s.rules[:len(s.rules)-1]

	delete(s.index, pattern)
	for j := i; j < len(s.rules); j++ {
		s.index[s.rules[j].Pattern.String()] = j
	}
	return true
}

// Resolve returns the first rule whose pattern matches tag.
func (s *Store) Resolve(tag string) (Rule, bool) {
	for _, r := range s.rules {
		if r.Pattern.Match(tag) {
			return *r, true
		}
	}
	return Rule{}, false
}

// Get returns the rule created from exactly pattern.
func (s *Store) Get(pattern string) (Rule, bool) {
	i, ok := s.index[pattern]
	if !ok {
		return Rule{}, false
	}
	return *s.rules[i], true
}

// Rules returns a snapshot of all rules in match order
func (s *Store) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		out[i] = *r
	}
	return out
}

// Len returns the number of rules
func (s *Store) Len() int {
	return len(s.rules)
}
