package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("verbose")
	require.False(t, ok)
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, zapcore.DebugLevel)

	ctx := ToContext(context.Background(), l)
	ctx = WithName(ctx, "ingest")
	ctx = WithKV(ctx, "file", "hh.yaml")
	InfoKV(ctx, "parsed document", "components", 2)

	out := buf.String()
	require.Contains(t, out, "INFO")
	require.Contains(t, out, "ingest")
	require.Contains(t, out, "parsed document")
	require.Contains(t, out, "hh.yaml")
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, global, FromContext(context.Background()))
}

func TestErrorKVAndLevel(t *testing.T) {
	var buf bytes.Buffer
	ctx := ToContext(context.Background(), New(&buf, nil))

	SetLevel(zapcore.ErrorLevel)
	t.Cleanup(func() { SetLevel(zapcore.WarnLevel) })

	WarnKV(ctx, "hidden warning")
	ErrorKV(ctx, "ingest failed", "file", "broken.yaml")

	out := buf.String()
	require.NotContains(t, out, "hidden warning")
	require.Contains(t, out, "ERROR")
	require.Contains(t, out, "broken.yaml")
}
