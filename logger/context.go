package logger

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/formatter"
	"github.com/philipp01105/taglog/handler"
	"github.com/philipp01105/taglog/rules"
)

// GlobalTag replaces an empty tag.
const GlobalTag = "global"

// Context owns the rule store and the logger registry. One mutex guards
// both, so a logger is never created against a half-applied rule change
// and every rule change has resynchronized all loggers when it returns.
type Context struct {
	mu        sync.Mutex
	rules     *rules.Store
	loggers   map[string]*Logger
	order     []*Logger
	nextColor int

	writer       *handler.Writer
	formatter    formatter.Formatter
	options      atomic.Pointer[formatter.Options]
	defaultLevel Level
	clock        func() time.Time
}

// Get returns the logger for tag, creating it on first use. A new
// logger takes its state from the first matching rule (disabled when
// none matches) and the next palette color.
func (c *Context) Get(tag string) *Logger {
	if tag == "" {
		tag = GlobalTag
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.loggers[tag]; ok {
		return l
	}
	l := newLogger(c, tag, c.nextColor%formatter.PaletteSize)
	c.nextColor++
	c.sync(l)
	c.loggers[tag] = l
	c.order = append(c.order, l)
	return l
}

// Enable adds or updates enable rules. patterns is a string of patterns
// separated by whitespace or commas, or a list of such strings; a '!'
// prefix turns a token into a disable. The optional level (name, alias
// or rank) is attached to the enable rules. An invalid level is reported
// after the rules have been applied without it.
func (c *Context) Enable(patterns any, level ...any) error {
	dirs, err := rules.ParseSpec(patterns)
	if err != nil {
		return err
	}

	var lvl *Level
	var errs error
	if len(level) > 0 && level[0] != nil {
		l, err := core.ParseLevel(level[0])
		if err != nil {
			errs = err
		} else {
			lvl = &l
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range dirs {
		if d.Enabled {
			_, err = c.rules.Upsert(d.Pattern, true, lvl)
		} else {
			_, err = c.rules.Upsert(d.Pattern, false, nil)
		}
		errs = multierr.Append(errs, err)
	}
	c.resync()
	return errs
}

// Disable adds or updates disable rules for the given patterns.
func (c *Context) Disable(patterns any) error {
	toks, err := rules.Tokens(patterns)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	var errs error
	for _, t := range toks {
		t = strings.TrimPrefix(t, "!")
		if t == "" {
			continue
		}
		_, err := c.rules.Upsert(t, false, nil)
		errs = multierr.Append(errs, err)
	}
	c.resync()
	return errs
}

// Remove deletes the rules created from the given patterns.
func (c *Context) Remove(patterns any) error {
	toks, err := rules.Tokens(patterns)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range toks {
		c.rules.Remove(strings.TrimPrefix(t, "!"))
	}
	c.resync()
	return nil
}

// IsEnabled reports whether the first rule matching tag enables it.
func (c *Context) IsEnabled(tag string) bool {
	if tag == "" {
		tag = GlobalTag
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.rules.Resolve(tag)
	return ok && r.Enabled
}

// Rules returns a snapshot of the rules in match order
func (c *Context) Rules() []rules.Rule {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rules.Rules()
}

// Loggers returns the registered loggers in creation order
func (c *Context) Loggers() []*Logger {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Logger(nil), c.order...)
}

// AddWriter registers an output sink
func (c *Context) AddWriter(s handler.Sink) {
	c.writer.Add(s)
}

// RemoveWriter unregisters an output sink
func (c *Context) RemoveWriter(s handler.Sink) bool {
	return c.writer.Remove(s)
}

// Writer returns the fan-out writer
func (c *Context) Writer() *handler.Writer {
	return c.writer
}

// Options returns the context-wide render options
func (c *Context) Options() formatter.Options {
	return *c.options.Load()
}

// SetOptions replaces the context-wide render options
func (c *Context) SetOptions(o formatter.Options) {
	c.options.Store(&o)
}

// DefaultLevel returns the threshold of loggers no rule gives a level
func (c *Context) DefaultLevel() Level {
	return c.defaultLevel
}

// resync re-resolves every registered logger. Callers hold c.mu.
func (c *Context) resync() {
	for _, l := range c.order {
		c.sync(l)
	}
}

func (c *Context) sync(l *Logger) {
	r, ok := c.rules.Resolve(l.tag)
	level := l.Level()
	if ok && r.HasLevel {
		level = r.Level
	}
	l.apply(ok && r.Enabled, level)
}

func (c *Context) now() time.Time {
	return c.clock()
}

// render never panics; a failing formatter degrades to the raw arguments.
func (c *Context) render(entry *core.Entry, args []any, opts formatter.Options) (line string) {
	defer func() {
		if r := recover(); r != nil {
			line = entry.Tag + " " + entry.Level.Upper() + " " + strings.TrimSuffix(fmt.Sprintln(args...), "\n")
		}
	}()
	return c.formatter.Render(entry, args, opts)
}
