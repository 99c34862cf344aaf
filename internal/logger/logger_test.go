package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"WARN":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got, s)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestSetLevelName rejects unknown names without touching the current level.
func TestSetLevelName(t *testing.T) {
	t.Parallel()

	before := Level()

	require.Error(t, SetLevelName("loud"))
	require.Equal(t, before, Level())
}

// TestContextHelpers ensures named and annotated loggers travel through the context.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)

	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "addon-builder")
	ctx = WithKV(ctx, "addon", "sample")

	InfoKV(ctx, "Build completed successfully", "path", "/tmp/build/sample.xml")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "addon-builder", entries[0].LoggerName)
	require.Equal(t, "Build completed successfully", entries[0].Message)
	require.Equal(t, "sample", entries[0].ContextMap()["addon"])
	require.Equal(t, "/tmp/build/sample.xml", entries[0].ContextMap()["path"])
}

// TestFromContextFallsBackToGlobal returns the global logger for a bare context.
func TestFromContextFallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}
