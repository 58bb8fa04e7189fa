package logger

import (
	"github.com/philipp01105/taglog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	VerboseLevel = core.VerboseLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarnLevel    = core.WarnLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
)

// ParseLevel converts a name, one-letter alias or numeric rank to a Level
func ParseLevel(v any) (Level, error) {
	return core.ParseLevel(v)
}

// accessor names one severity method and its single-letter alias.
type accessor struct {
	Name  string
	Alias string
	Level Level
}

// accessors is indexed like core.Levels.
var accessors = [core.NumLevels]accessor{
	{"verbose", "v", VerboseLevel},
	{"debug", "d", DebugLevel},
	{"info", "i", InfoLevel},
	{"warn", "w", WarnLevel},
	{"error", "e", ErrorLevel},
	{"fatal", "f", FatalLevel},
}

func accessorIndex(name string) int {
	for i, a := range accessors {
		if a.Name == name || a.Alias == name {
			return i
		}
	}
	return -1
}
