package logger

import (
	"time"

	"github.com/philipp01105/taglog/config"
	"github.com/philipp01105/taglog/formatter"
	"github.com/philipp01105/taglog/handler"
	"github.com/philipp01105/taglog/rules"
)

// Builder provides a fluent API for building Context instances
type Builder struct {
	fallback  handler.Sink
	sinks     []handler.Sink
	formatter formatter.Formatter
	options   formatter.Options
	level     Level
	clock     func() time.Time
	spec      string
}

// NewBuilder creates a new context builder
func NewBuilder() *Builder {
	return &Builder{
		options: formatter.DefaultOptions(),
		level:   VerboseLevel, // every severity is live once enabled
		clock:   time.Now,
	}
}

// WithFallback sets the sink used while no sink is registered
// (default: stderr)
func (b *Builder) WithFallback(s handler.Sink) *Builder {
	b.fallback = s
	return b
}

// WithSinks registers sinks up front
func (b *Builder) WithSinks(sinks ...handler.Sink) *Builder {
	b.sinks = append(b.sinks, sinks...)
	return b
}

// WithFormatter sets the formatter (default: TextFormatter with the spew
// inspector)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithOptions sets the context-wide render options
func (b *Builder) WithOptions(o formatter.Options) *Builder {
	b.options = o
	return b
}

// WithLevel sets the threshold of loggers no rule gives a level
func (b *Builder) WithLevel(level Level) *Builder {
	b.level = level
	return b
}

// WithClock replaces time.Now, mainly for tests
func (b *Builder) WithClock(clock func() time.Time) *Builder {
	if clock != nil {
		b.clock = clock
	}
	return b
}

// WithSpec sets the initial enable specification, e.g. "app,!app:noisy"
func (b *Builder) WithSpec(spec string) *Builder {
	b.spec = spec
	return b
}

// WithConfig applies an environment configuration: the DEBUG rules, the
// default level, render options and the output descriptor. Invalid
// values keep the builder's current setting.
func (b *Builder) WithConfig(cfg *config.Config) *Builder {
	if cfg == nil {
		return b
	}
	b.spec = cfg.Debug
	if lvl, err := cfg.DefaultLevel(); err == nil {
		b.level = lvl
	}
	terminal := false
	if s, err := cfg.Sink(); err == nil {
		b.fallback = s
		terminal = s.IsTerminal()
	}
	b.options = cfg.Options(terminal)
	return b
}

// Build creates the Context instance
func (b *Builder) Build() *Context {
	f := b.formatter
	if f == nil {
		f = formatter.NewTextFormatter(nil)
	}
	c := &Context{
		rules:        rules.NewStore(),
		loggers:      make(map[string]*Logger),
		writer:       handler.NewWriter(b.fallback, b.sinks...),
		formatter:    f,
		defaultLevel: b.level,
		clock:        b.clock,
	}
	c.SetOptions(b.options)
	if b.spec != "" {
		// a rule string without a level cannot fail
		_ = c.Enable(b.spec)
	}
	return c
}
