package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/taglog/core"
)

func lvl(l core.Level) *core.Level { return &l }

func TestStore_FirstMatchWins(t *testing.T) {
	s := NewStore()
	_, err := s.Upsert("*", true, nil)
	require.NoError(t, err)
	_, err = s.Upsert("noisy", false, nil)
	require.NoError(t, err)

	r, ok := s.Resolve("noisy")
	require.True(t, ok)
	assert.Equal(t, "*", r.Source())
	assert.True(t, r.Enabled)
}

func TestStore_UpsertUpdatesInPlace(t *testing.T) {
	s := NewStore()
	_, _ = s.Upsert("app", true, nil)
	_, _ = s.Upsert("db", true, nil)
	_, _ = s.Upsert("app", true, nil)

	assert.Equal(t, 2, s.Len())

	r, err := s.Upsert("app", false, lvl(core.WarnLevel))
	require.NoError(t, err)
	assert.False(t, r.Enabled)
	assert.True(t, r.HasLevel)
	assert.Equal(t, core.WarnLevel, r.Level)

	// absent level keeps the stored one
	r, err = s.Upsert("app", true, nil)
	require.NoError(t, err)
	assert.True(t, r.Enabled)
	assert.True(t, r.HasLevel)
	assert.Equal(t, core.WarnLevel, r.Level)

	rules := s.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "app", rules[0].Source())
	assert.Equal(t, "db", rules[1].Source())
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	for _, p := range []string{"a", "b*", "c"} {
		_, err := s.Upsert(p, true, nil)
		require.NoError(t, err)
	}

	assert.True(t, s.Remove("b*"))
	assert.False(t, s.Remove("b*"))
	assert.False(t, s.Remove("missing"))
	assert.Equal(t, 2, s.Len())

	_, ok := s.Resolve("bee")
	assert.False(t, ok)

	// index stays consistent after the shift
	r, err := s.Upsert("c", false, nil)
	require.NoError(t, err)
	assert.False(t, r.Enabled)
	got, ok := s.Get("c")
	require.True(t, ok)
	assert.False(t, got.Enabled)
	assert.Equal(t, 2, s.Len())
}

func TestStore_ResolveNoMatch(t *testing.T) {
	s := NewStore()
	_, _ = s.Upsert("app", true, nil)

	_, ok := s.Resolve("other")
	assert.False(t, ok)
}

func TestStore_RulesSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	_, _ = s.Upsert("app", true, nil)

	snap := s.Rules()
	snap[0].Enabled = false

	r, _ := s.Get("app")
	assert.True(t, r.Enabled)
}
