package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/taglog/core"
)

// Sink forwards rendered lines into a zap logger, so taglog output can
// share a pipeline with services that already log through zap. The line
// becomes the zap message; the severity maps onto the zap level.
type Sink struct {
	logger *zap.Logger
}

// New creates a sink writing to l. A nil logger selects zap.L().
func New(l *zap.Logger) *Sink {
	if l == nil {
		l = zap.L()
	}
	return &Sink{logger: l.WithOptions(zap.AddCallerSkip(1))}
}

// Write logs line at info level
func (s *Sink) Write(line string) error {
	return s.WriteLevel(core.InfoLevel, line)
}

// WriteLevel logs line at the zap level matching level. Fatal lines are
// written at error level so zap never exits the process behind the
// caller's back; Die does that itself.
func (s *Sink) WriteLevel(level core.Level, line string) error {
	if ce := s.logger.Check(ZapLevel(level), line); ce != nil {
		ce.Write()
	}
	return nil
}

// Sync flushes the underlying zap core
func (s *Sink) Sync() error {
	return s.logger.Sync()
}

// ZapLevel maps a severity onto zap's scale.
func ZapLevel(level core.Level) zapcore.Level {
	switch {
	case level >= core.ErrorLevel:
		return zapcore.ErrorLevel
	case level >= core.WarnLevel:
		return zapcore.WarnLevel
	case level >= core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
