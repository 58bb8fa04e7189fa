package core

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity of a log call. Ranks are sparse so that
// numeric thresholds between named levels remain meaningful.
type Level int8

const (
	// VerboseLevel for tracing noise
	VerboseLevel Level = 0
	// DebugLevel for detailed debugging information
	DebugLevel Level = 10
	// InfoLevel for general informational messages
	InfoLevel Level = 20
	// WarnLevel for warning messages
	WarnLevel Level = 30
	// ErrorLevel for error messages
	ErrorLevel Level = 40
	// FatalLevel for fatal messages, also used by Die
	FatalLevel Level = 90
)

// Levels lists every named level in ascending rank.
var Levels = [...]Level{VerboseLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}

// NumLevels is the number of named levels.
const NumLevels = len(Levels)

// String returns the lower-case name of the level
func (l Level) String() string {
	switch l {
	case VerboseLevel:
		return "verbose"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	default:
		return strconv.Itoa(int(l))
	}
}

// Upper returns the upper-case name used in the level column.
func (l Level) Upper() string {
	return strings.ToUpper(l.String())
}

// Index returns the position of a named level in Levels, or -1.
func (l Level) Index() int {
	for i, lv := range Levels {
		if lv == l {
			return i
		}
	}
	return -1
}

// Enables reports whether a call at severity s passes a threshold of l.
func (l Level) Enables(s Level) bool {
	return s >= l
}

// ParseLevel converts a level name, a one-letter alias or a numeric rank
// into a Level. Accepted values are strings and any Go integer type.
func ParseLevel(v any) (Level, error) {
	switch x := v.(type) {
	case Level:
		return rankLevel(int64(x))
	case string:
		return parseLevelName(x)
	case int:
		return rankLevel(int64(x))
	case int8:
		return rankLevel(int64(x))
	case int16:
		return rankLevel(int64(x))
	case int32:
		return rankLevel(int64(x))
	case int64:
		return rankLevel(x)
	case uint:
		return rankLevel(int64(x))
	case uint8:
		return rankLevel(int64(x))
	case uint16:
		return rankLevel(int64(x))
	case uint32:
		return rankLevel(int64(x))
	}
	return 0, errors.Wrapf(ErrInvalidLevel, "%T %v", v, v)
}

func parseLevelName(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "verbose", "v":
		return VerboseLevel, nil
	case "debug", "d":
		return DebugLevel, nil
	case "info", "i":
		return InfoLevel, nil
	case "warn", "warning", "w":
		return WarnLevel, nil
	case "error", "e":
		return ErrorLevel, nil
	case "fatal", "f":
		return FatalLevel, nil
	}
	if n, err := strconv.ParseInt(name, 10, 64); err == nil {
		return rankLevel(n)
	}
	return 0, errors.Wrapf(ErrInvalidLevel, "%q", s)
}

func rankLevel(n int64) (Level, error) {
	if n < int64(VerboseLevel) || n > int64(FatalLevel) {
		return 0, errors.Wrapf(ErrInvalidLevel, "rank %d out of range", n)
	}
	return Level(n), nil
}
