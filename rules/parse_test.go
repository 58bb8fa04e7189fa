package rules

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/taglog/core"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, nil},
		{"empty", "", nil},
		{"separators only", " , ,\t", nil},
		{"empty slice elements", []string{"", " "}, nil},
		{"commas", "a,b,,c", []string{"a", "b", "c"}},
		{"spaces and commas", " a ,\tb\nc ", []string{"a", "b", "c"}},
		{"slice", []string{"a b", "c"}, []string{"a", "b", "c"}},
		{"any slice", []any{"a", "b,c"}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokens(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokens_Invalid(t *testing.T) {
	for _, in := range []any{42, []any{"a", 1}, map[string]bool{"a": true}} {
		_, err := Tokens(in)
		assert.True(t, errors.Is(err, core.ErrInvalidPattern), "Tokens(%v) error = %v", in, err)
	}
}

func TestParseSpec(t *testing.T) {
	got, err := ParseSpec("app,!noisy *A* !")
	require.NoError(t, err)
	assert.Equal(t, []Directive{
		{Pattern: "app", Enabled: true},
		{Pattern: "noisy", Enabled: false},
		{Pattern: "*A*", Enabled: true},
	}, got)
}
