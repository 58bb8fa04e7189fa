package zaphandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/taglog/core"
)

func TestSink_WriteLevel(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	s := New(zap.New(obs))

	require.NoError(t, s.WriteLevel(core.WarnLevel, "disk low"))
	require.NoError(t, s.WriteLevel(core.FatalLevel, "gone"))
	require.NoError(t, s.Write("plain"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "disk low", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
}

func TestSink_RespectsZapLevel(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	s := New(zap.New(obs))

	_ = s.WriteLevel(core.DebugLevel, "hidden")
	_ = s.WriteLevel(core.ErrorLevel, "shown")

	assert.Equal(t, 1, logs.Len())
}

func TestZapLevel(t *testing.T) {
	tests := []struct {
		in   core.Level
		want zapcore.Level
	}{
		{core.VerboseLevel, zapcore.DebugLevel},
		{core.DebugLevel, zapcore.DebugLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.Level(25), zapcore.InfoLevel},
		{core.WarnLevel, zapcore.WarnLevel},
		{core.ErrorLevel, zapcore.ErrorLevel},
		{core.FatalLevel, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZapLevel(tt.in), "ZapLevel(%v)", tt.in)
	}
}
