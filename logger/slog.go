package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger. Records pass the logger's enabled flag and level like any
// other call; attributes are appended to the message as key=value.
type SlogHandler struct {
	logger *Logger
	attrs  []string
	group  string
}

// NewSlogHandler creates a new slog.Handler writing through l.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Slog returns a *slog.Logger writing through l.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(NewSlogHandler(l))
}

// Enabled reports whether the logger is live at the mapped level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.IsLive(slogLevelToCore(level))
}

// Handle writes the record through the logger, using the record's PC as
// the call site.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !s.logger.IsLive(level) {
		return nil
	}

	var b strings.Builder
	b.WriteString(record.Message)
	for _, a := range s.attrs {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	return s.logger.emit(level, []any{"%s", b.String()}, 0, record.PC)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	newAttrs := make([]string, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	if b.Len() > 0 {
		newAttrs = append(newAttrs, strings.TrimPrefix(b.String(), " "))
	}
	return &SlogHandler{logger: s.logger, attrs: newAttrs, group: s.group}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{logger: s.logger, attrs: s.attrs, group: newGroup}
}

// slogLevelToCore converts a slog.Level to a Level.
func slogLevelToCore(level slog.Level) Level {
	switch {
	case level > slog.LevelError:
		return FatalLevel
	case level >= slog.LevelError:
		return ErrorLevel
	case level >= slog.LevelWarn:
		return WarnLevel
	case level >= slog.LevelInfo:
		return InfoLevel
	case level >= slog.LevelDebug:
		return DebugLevel
	default:
		return VerboseLevel
	}
}

// appendAttr writes " key=value", flattening groups with a dotted prefix.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Any())
}
