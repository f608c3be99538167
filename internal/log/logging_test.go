package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Alia5/xkeymap/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {

	type testCase struct {
		input    string
		expected slog.Level
		wantErr  bool
	}

	testCases := []testCase{
		{input: "trace", expected: log.LevelTrace},
		{input: "debug", expected: slog.LevelDebug},
		{input: "info", expected: slog.LevelInfo},
		{input: "", expected: slog.LevelInfo},
		{input: "warn", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "verbose", expected: slog.LevelInfo, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := log.ParseLevel(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestNewConsoleOnStderr(t *testing.T) {
	var stderr bytes.Buffer
	logger, closers, err := log.New(log.Options{Level: "debug", Stderr: &stderr})
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Log(context.Background(), log.LevelTrace, "hidden")
	logger.Debug("dbg")
	logger.Info("hello", "key", "KeyA")
	logger.Warn("careful")
	logger.Error("boom")

	out := stderr.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=dbg")
	assert.Contains(t, out, "msg=hello key=KeyA")
	assert.Contains(t, out, "msg=careful")
	assert.Contains(t, out, "msg=boom")
}

func TestNewWithFile(t *testing.T) {
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "xkeymap.log")

	logger, closers, err := log.New(log.Options{Level: "info", File: path, Stderr: &stderr})
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("skipped")
	logger.Info("kept")
	logger.Error("failed")
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=kept")
	assert.Contains(t, string(data), "msg=failed")
	assert.NotContains(t, string(data), "skipped")
	assert.Contains(t, stderr.String(), "msg=kept")
	assert.Contains(t, stderr.String(), "msg=failed")
	assert.NotContains(t, stderr.String(), "skipped")
}

func TestLevelsParse(t *testing.T) {
	for _, name := range strings.Split(log.Levels, ",") {
		_, err := log.ParseLevel(name)
		assert.NoError(t, err, name)
	}
}

func TestNewErrors(t *testing.T) {
	_, _, err := log.New(log.Options{Level: "loud"})
	assert.Error(t, err)

	_, _, err = log.New(log.Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	trace := log.NewTrace(&buf)
	trace.Log("scancode", "30", "KeyA")
	trace.Log("keysym", "Shift_L", "Shift")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Regexp(t, `^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} scancode 30 -> KeyA$`, string(lines[0]))
	assert.Regexp(t, `keysym Shift_L -> Shift$`, string(lines[1]))
}

func TestTraceLoggerNil(t *testing.T) {
	trace := log.NewTrace(nil)
	assert.NotPanics(t, func() { trace.Log("scancode", 1, 2) })
}
