package rules

import (
	"testing"
)

func TestCompile_Match(t *testing.T) {
	tests := []struct {
		pattern string
		tag     string
		want    bool
	}{
		{"app", "app", true},
		{"app", "apps", false},
		{"app", "App", false},
		{"app", "my app", false},
		{"module*", "moduleA", true},
		{"module*", "module", true},
		{"module*", "other", false},
		{"*A*", "module A", true},
		{"*A*", "module B", false},
		{"*", "", true},
		{"*", "anything at all", true},
		{"db:*:pool", "db:main:pool", true},
		{"db:*:pool", "db:pool", false},
		{"a.b", "a.b", true},
		{"a.b", "axb", false},
		{"a.*", "axb", false},
		{"(x)+[y]?", "(x)+[y]?", true},
		{"$*^", "$ ^", true},
		{"", "", true},
		{"", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.tag, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
			}
			if got := p.Match(tt.tag); got != tt.want {
				t.Errorf("Compile(%q).Match(%q) = %v, want %v", tt.pattern, tt.tag, got, tt.want)
			}
			if p.String() != tt.pattern {
				t.Errorf("String() = %q, want %q", p.String(), tt.pattern)
			}
		})
	}
}

func BenchmarkPatternMatch(b *testing.B) {
	literal := MustCompile("service:http")
	wild := MustCompile("service:*")

	b.Run("literal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			literal.Match("service:http")
		}
	})
	b.Run("wildcard", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			wild.Match("service:http")
		}
	})
}
