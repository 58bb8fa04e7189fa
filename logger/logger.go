package logger

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/formatter"
	"github.com/philipp01105/taglog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is the per-tag logger. There is exactly one Logger per tag in a
// Context; every reference observes rule changes immediately.
//
// Each severity has a full-name method and a one-letter alias taking a
// template-or-value followed by positional arguments. A suppressed
// method does nothing at all, not even a timestamp update, and returns
// nil. A live method returns the sink errors of the write, if any.
type Logger struct {
	ctx   *Context
	tag   string
	color int
	table atomic.Pointer[table]

	mu        sync.Mutex // protects the fields below
	last      time.Time
	hasLast   bool
	overrides formatter.Overrides
	sink      handler.Sink
}

func newLogger(ctx *Context, tag string, color int) *Logger {
	l := &Logger{ctx: ctx, tag: tag, color: color}
	l.table.Store(newTable(false, ctx.defaultLevel))
	return l
}

// Tag returns the logger's tag
func (l *Logger) Tag() string {
	return l.tag
}

// Color returns the palette index assigned at creation
func (l *Logger) Color() int {
	return l.color
}

// Enabled reports whether the logger is enabled at all
func (l *Logger) Enabled() bool {
	return l.table.Load().enabled
}

// Level returns the current threshold
func (l *Logger) Level() Level {
	return l.table.Load().level
}

// IsLive reports whether a call at level would produce output.
func (l *Logger) IsLive(level Level) bool {
	t := l.table.Load()
	if i := level.Index(); i >= 0 {
		return t.live[i]
	}
	return t.enabled && t.level.Enables(level)
}

// SetLevel sets the threshold from a name, alias or numeric rank. A rule
// carrying a level replaces it again on the next rule change.
func (l *Logger) SetLevel(level any) error {
	lvl, err := core.ParseLevel(level)
	if err != nil {
		return err
	}
	l.ctx.mu.Lock()
	l.apply(l.Enabled(), lvl)
	l.ctx.mu.Unlock()
	return nil
}

// apply swaps the dispatch table when the state changed. Callers hold
// the context lock.
func (l *Logger) apply(enabled bool, level Level) {
	cur := l.table.Load()
	if cur.enabled == enabled && cur.level == level {
		return
	}
	l.table.Store(newTable(enabled, level))
}

// SetOptions replaces the logger's render overrides, e.g. to turn on
// call-site tracing for one tag.
func (l *Logger) SetOptions(o formatter.Overrides) {
	l.mu.Lock()
	l.overrides = o
	l.mu.Unlock()
}

// Options returns the logger's render overrides
func (l *Logger) Options() formatter.Overrides {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.overrides
}

// SetWriter routes this logger's lines to s instead of the context
// writer. A nil sink restores the context writer.
func (l *Logger) SetWriter(s handler.Sink) {
	l.mu.Lock()
	l.sink = s
	l.mu.Unlock()
}

// LastEmit returns the time of the most recent emitted line.
func (l *Logger) LastEmit() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last, l.hasLast
}

func (l *Logger) call(i int, args []any) error {
	return l.table.Load().fns[i](l, args)
}

// Verbose logs at verbose level
func (l *Logger) Verbose(args ...any) error { return l.call(0, args) }

// V is an alias for Verbose
func (l *Logger) V(args ...any) error { return l.call(0, args) }

// Debug logs at debug level
func (l *Logger) Debug(args ...any) error { return l.call(1, args) }

// D is an alias for Debug
func (l *Logger) D(args ...any) error { return l.call(1, args) }

// Info logs at info level
func (l *Logger) Info(args ...any) error { return l.call(2, args) }

// I is an alias for Info
func (l *Logger) I(args ...any) error { return l.call(2, args) }

// Warn logs at warn level
func (l *Logger) Warn(args ...any) error { return l.call(3, args) }

// W is an alias for Warn
func (l *Logger) W(args ...any) error { return l.call(3, args) }

// Error logs at error level
func (l *Logger) Error(args ...any) error { return l.call(4, args) }

// E is an alias for Error
func (l *Logger) E(args ...any) error { return l.call(4, args) }

// Fatal logs at fatal level. Unlike Die it does not exit.
func (l *Logger) Fatal(args ...any) error { return l.call(5, args) }

// F is an alias for Fatal
func (l *Logger) F(args ...any) error { return l.call(5, args) }

// Method looks up a severity method by full name or one-letter alias.
func (l *Logger) Method(name string) (func(args ...any) error, bool) {
	i := accessorIndex(name)
	if i < 0 {
		return nil, false
	}
	return func(args ...any) error { return l.call(i, args) }, true
}

// Die writes a fatal line regardless of the enabled flag and level, then
// exits the process with code.
func (l *Logger) Die(code int, args ...any) {
	_ = l.emit(FatalLevel, args, 2, 0)
	osExit(code)
}

// emit renders and writes one line. skip is the number of frames between
// emit and the user's call site; pc, when non-zero, is used instead.
func (l *Logger) emit(level Level, args []any, skip int, pc uintptr) error {
	c := l.ctx
	now := c.now()

	l.mu.Lock()
	var diff time.Duration
	if l.hasLast {
		diff = now.Sub(l.last)
	}
	l.last, l.hasLast = now, true
	overrides := l.overrides
	sink := l.sink
	l.mu.Unlock()

	opts := c.Options().Merge(overrides)
	entry := core.Entry{
		Time:  now,
		Level: level,
		Tag:   l.tag,
		Color: l.color,
		Diff:  diff,
	}
	if opts.Trace {
		if pc != 0 {
			entry.Caller = callerFromPC(pc)
		} else {
			entry.Caller = core.GetCaller(skip + 1)
		}
	}

	line := c.render(&entry, args, opts)
	if sink != nil {
		return handler.Deliver(sink, level, line)
	}
	return c.writer.Write(level, line)
}

func callerFromPC(pc uintptr) core.CallerInfo {
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return core.CallerInfo{}
	}
	return core.CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}
