package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/taglog/core"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(DebugEnv, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv(DebugEnv, "app,!app:noisy")
	t.Setenv("TAGLOG_LEVEL", "warn")
	t.Setenv("TAGLOG_COLORS", "false")
	t.Setenv("TAGLOG_DEPTH", "4")
	t.Setenv("TAGLOG_TRACE", "true")
	t.Setenv("TAGLOG_FD", "1")
	t.Setenv("TAGLOG_TAG_WIDTH", "20")
	t.Setenv("TAGLOG_LEVEL_WIDTH", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "app,!app:noisy", cfg.Debug)
	assert.Equal(t, 4, cfg.Depth)
	assert.True(t, cfg.Trace)
	assert.Equal(t, 1, cfg.FD)
	assert.Equal(t, 20, cfg.TagWidth)
	assert.Equal(t, 5, cfg.LevelWidth)

	lvl, err := cfg.DefaultLevel()
	require.NoError(t, err)
	assert.Equal(t, core.WarnLevel, lvl)

	opts := cfg.Options(true)
	assert.False(t, opts.UseColors)
	assert.True(t, opts.Trace)
	assert.Equal(t, 4, opts.Depth)
}

func TestLoad_MalformedKeepsDebug(t *testing.T) {
	t.Setenv(DebugEnv, "db:*")
	t.Setenv("TAGLOG_DEPTH", "deep")

	cfg, err := Load()
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "db:*", cfg.Debug)
	assert.Equal(t, Defaults().Depth, cfg.Depth)
}

func TestConfig_UseColors(t *testing.T) {
	tests := []struct {
		mode     string
		terminal bool
		want     bool
	}{
		{ColorsAuto, true, true},
		{ColorsAuto, false, false},
		{"", true, true},
		{ColorsAlways, false, true},
		{"ON", false, true},
		{ColorsNever, true, false},
		{"0", true, false},
	}
	for _, tt := range tests {
		c := &Config{Colors: tt.mode}
		assert.Equal(t, tt.want, c.UseColors(tt.terminal), "mode %q terminal %v", tt.mode, tt.terminal)
	}
}

func TestConfig_DefaultLevel(t *testing.T) {
	c := &Config{Level: "loud"}
	lvl, err := c.DefaultLevel()
	assert.Error(t, err)
	assert.Equal(t, core.VerboseLevel, lvl)

	c.Level = ""
	lvl, err = c.DefaultLevel()
	assert.NoError(t, err)
	assert.Equal(t, core.VerboseLevel, lvl)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TAGLOG_TEST_DOTENV=from-file\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("TAGLOG_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("TAGLOG_TEST_DOTENV"))

	// nothing to load is not an error
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "none")))
}
