package config

import (
	"strings"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/formatter"
	"github.com/philipp01105/taglog/handler"
)

// Color modes accepted by TAGLOG_COLORS
const (
	ColorsAuto   = "auto"
	ColorsAlways = "true"
	ColorsNever  = "false"
)

// Config holds the environment driven settings of a logging context.
type Config struct {
	// Debug is the initial enable specification, e.g. "app,db:*,!db:noisy"
	Debug string `mapstructure:"debug"`
	// Level is the default threshold for loggers no rule gives a level
	Level string `mapstructure:"level"`
	// Colors is auto, true or false
	Colors string `mapstructure:"colors"`
	// Depth limits object inspection
	Depth int `mapstructure:"depth"`
	// Trace appends the call site to every line
	Trace bool `mapstructure:"trace"`
	// FD is the output file descriptor used while no sink is registered
	FD int `mapstructure:"fd"`
	// TagWidth is the tag column width
	TagWidth int `mapstructure:"tag_width"`
	// LevelWidth is the level column width
	LevelWidth int `mapstructure:"level_width"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	o := formatter.DefaultOptions()
	return &Config{
		Level:      core.VerboseLevel.String(),
		Colors:     ColorsAuto,
		Depth:      o.Depth,
		FD:         2,
		TagWidth:   o.TagWidth,
		LevelWidth: o.LevelWidth,
	}
}

// DefaultLevel parses Level. An invalid value yields VerboseLevel and the
// parse error.
func (c *Config) DefaultLevel() (core.Level, error) {
	if strings.TrimSpace(c.Level) == "" {
		return core.VerboseLevel, nil
	}
	l, err := core.ParseLevel(c.Level)
	if err != nil {
		return core.VerboseLevel, err
	}
	return l, nil
}

// Sink opens the console sink for FD.
func (c *Config) Sink() (*handler.ConsoleSink, error) {
	return handler.NewFD(c.FD)
}

// UseColors resolves the color mode; auto colors only terminals.
func (c *Config) UseColors(terminal bool) bool {
	switch strings.ToLower(strings.TrimSpace(c.Colors)) {
	case ColorsAlways, "1", "yes", "on":
		return true
	case ColorsNever, "0", "no", "off":
		return false
	}
	return terminal
}

// Options returns the render options described by the config.
func (c *Config) Options(terminal bool) formatter.Options {
	o := formatter.DefaultOptions()
	o.UseColors = c.UseColors(terminal)
	o.Depth = c.Depth
	o.Trace = c.Trace
	o.TagWidth = c.TagWidth
	o.LevelWidth = c.LevelWidth
	return o
}
