package logger

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/taglog/formatter"
)

func TestSlogHandler_Levels(t *testing.T) {
	ctx, sink, _ := newTestContext(t)
	require.NoError(t, ctx.Enable("app", "info"))
	sl := ctx.Get("app").Slog()

	sl.Debug("hidden")
	sl.Info("shown", "count", 3)
	sl.Error("failed", slog.String("err", "timeout"))

	lines := sink.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "app INFO shown count=3"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "app ERROR failed err=timeout"), lines[1])
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	ctx, sink, _ := newTestContext(t)
	require.NoError(t, ctx.Enable("app"))

	sl := ctx.Get("app").Slog().With("req", 7).WithGroup("db")
	sl.Info("query", "rows", 2, slog.Group("conn", "id", 1))

	lines := sink.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "query req=7 db.rows=2 db.conn.id=1"), lines[0])
}

func TestSlogHandler_PercentIsLiteral(t *testing.T) {
	ctx, sink, _ := newTestContext(t)
	require.NoError(t, ctx.Enable("app"))

	ctx.Get("app").Slog().Info("100%d done")
	require.Len(t, sink.Lines(), 1)
	assert.True(t, strings.HasSuffix(sink.Lines()[0], "100%d done"))
}

func TestSlogHandler_DisabledLogger(t *testing.T) {
	ctx, sink, _ := newTestContext(t)
	h := NewSlogHandler(ctx.Get("app"))

	assert.False(t, h.Enabled(context.Background(), slog.LevelError))
	require.NoError(t, h.Handle(context.Background(), slog.Record{Level: slog.LevelError}))
	assert.Empty(t, sink.Lines())
}

func TestSlogHandler_TraceUsesRecordPC(t *testing.T) {
	ctx, sink, _ := newTestContext(t)
	require.NoError(t, ctx.Enable("app"))
	l := ctx.Get("app")
	l.SetOptions(formatter.Overrides{Trace: formatter.Bool(true)})

	l.Slog().Warn("here")

	require.Len(t, sink.Lines(), 1)
	assert.Contains(t, sink.Lines()[0], "(slog_test.go:")
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want Level
	}{
		{slog.LevelDebug - 4, VerboseLevel},
		{slog.LevelDebug, DebugLevel},
		{slog.LevelInfo, InfoLevel},
		{slog.LevelWarn, WarnLevel},
		{slog.LevelError, ErrorLevel},
		{slog.LevelError + 4, FatalLevel},
	}
	for _, tt := range tests {
		if got := slogLevelToCore(tt.in); got != tt.want {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
