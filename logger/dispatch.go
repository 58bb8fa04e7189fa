package logger

import (
	"github.com/philipp01105/taglog/core"
)

// emitFunc is one slot of a logger's dispatch table.
type emitFunc func(l *Logger, args []any) error

// table is the immutable per-state dispatch table of a Logger. A state
// change builds a new table and swaps it in, so a log call is a single
// indirect call with no enabled or level check.
type table struct {
	enabled bool
	level   Level
	live    [core.NumLevels]bool
	fns     [core.NumLevels]emitFunc
}

// callDepth is the number of frames between the caller of a severity
// method and emit.
const callDepth = 4

func suppressed(*Logger, []any) error { return nil }

var liveFns = [core.NumLevels]emitFunc{
	func(l *Logger, args []any) error { return l.emit(VerboseLevel, args, callDepth, 0) },
	func(l *Logger, args []any) error { return l.emit(DebugLevel, args, callDepth, 0) },
	func(l *Logger, args []any) error { return l.emit(InfoLevel, args, callDepth, 0) },
	func(l *Logger, args []any) error { return l.emit(WarnLevel, args, callDepth, 0) },
	func(l *Logger, args []any) error { return l.emit(ErrorLevel, args, callDepth, 0) },
	func(l *Logger, args []any) error { return l.emit(FatalLevel, args, callDepth, 0) },
}

func newTable(enabled bool, level Level) *table {
	t := &table{enabled: enabled, level: level}
	for i, s := range core.Levels {
		if enabled && level.Enables(s) {
			t.live[i] = true
			t.fns[i] = liveFns[i]
		} else {
			t.fns[i] = suppressed
		}
	}
	return t
}
