package handler

import (
	"github.com/philipp01105/taglog/core"
)

// Sink receives rendered lines. A line never contains the trailing
// newline; sinks that need one add it. Sinks are compared by identity
// when removed from a Writer, so implementations should be pointers.
type Sink interface {
	Write(line string) error
}

// LevelSink is an optional interface for sinks that route by severity.
// Writer detects it and calls WriteLevel instead of Write.
type LevelSink interface {
	Sink
	WriteLevel(level core.Level, line string) error
}
