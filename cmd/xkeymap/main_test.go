package main

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUserConfig(t *testing.T) {

	type testCase struct {
		name     string
		args     []string
		env      string
		expected string
	}

	testCases := []testCase{
		{name: "equals form", args: []string{"table", "--config=a.yaml", "hid"}, expected: "a.yaml"},
		{name: "separate value", args: []string{"--config", "b.toml", "table", "hid"}, expected: "b.toml"},
		{name: "dangling flag", args: []string{"--config"}, env: "c.json", expected: "c.json"},
		{name: "env fallback", args: []string{"table", "hid"}, env: "d.json", expected: "d.json"},
		{name: "none", args: []string{"table", "hid"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("XKEYMAP_CONFIG", tc.env)
			assert.Equal(t, tc.expected, findUserConfig(tc.args))
		})
	}
}

type recordingCloser struct {
	closed bool
}

func (c *recordingCloser) Close() error {
	c.closed = true
	return nil
}

func TestRunAndCloseOnError(t *testing.T) {
	logFile, traceFile := &recordingCloser{}, &recordingCloser{}
	failure := errors.New("unknown keysym")

	err := runAndClose(func() error {
		assert.False(t, logFile.closed)
		return failure
	}, []io.Closer{logFile, traceFile})

	assert.ErrorIs(t, err, failure)
	assert.True(t, logFile.closed)
	assert.True(t, traceFile.closed)
}

func TestRunAndCloseOnSuccess(t *testing.T) {
	c := &recordingCloser{}
	assert.NoError(t, runAndClose(func() error { return nil }, []io.Closer{c}))
	assert.True(t, c.closed)
}
