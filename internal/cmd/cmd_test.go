package cmd_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/xkeymap/internal/cmd"
	"github.com/Alia5/xkeymap/internal/log"
	"github.com/Alia5/xkeymap/keymap"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScancodeFormats(t *testing.T) {
	expected := []cmd.ScancodeResult{
		{Scancode: 1, Keycode: 9, Physical: "Escape", Usage: "Escape", RoundTrip: true},
		{Scancode: 30, Keycode: 38, Physical: "KeyA", Usage: "A", RoundTrip: true},
		{Scancode: 0, Keycode: 8, Physical: "Unidentified(Xkb(0))", RoundTrip: true},
		{Scancode: 240, Keycode: 248, Physical: "Unidentified", RoundTrip: true},
	}

	type testCase struct {
		format string
		decode func([]byte) ([]cmd.ScancodeResult, error)
	}

	testCases := []testCase{
		{format: "json", decode: func(b []byte) ([]cmd.ScancodeResult, error) {
			var out []cmd.ScancodeResult
			return out, json.Unmarshal(b, &out)
		}},
		{format: "auto", decode: func(b []byte) ([]cmd.ScancodeResult, error) {
			var out []cmd.ScancodeResult
			return out, json.Unmarshal(b, &out)
		}},
		{format: "yaml", decode: func(b []byte) ([]cmd.ScancodeResult, error) {
			var out []cmd.ScancodeResult
			return out, yaml.Unmarshal(b, &out)
		}},
		{format: "toml", decode: func(b []byte) ([]cmd.ScancodeResult, error) {
			var doc struct {
				Entries []cmd.ScancodeResult `toml:"entries"`
			}
			err := toml.Unmarshal(b, &doc)
			return doc.Entries, err
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			var out bytes.Buffer
			c := cmd.Scancode{Codes: []string{"1", "0x1e", "0", "240"}, Native: true, Out: cmd.Output{Format: tc.format}}
			require.NoError(t, c.Run(discardLogger(), log.NewTrace(nil), &out))

			got, err := tc.decode(out.Bytes())
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}
}

func TestScancodeKeycodes(t *testing.T) {
	var out, trace bytes.Buffer
	c := cmd.Scancode{Codes: []string{"9", "65"}, Out: cmd.Output{Format: "json"}}
	require.NoError(t, c.Run(discardLogger(), log.NewTrace(&trace), &out))

	var got []cmd.ScancodeResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Escape", got[0].Physical)
	assert.Equal(t, uint32(1), got[0].Scancode)
	assert.Equal(t, "Space", got[1].Physical)
	assert.Equal(t, uint32(57), got[1].Scancode)
	assert.Contains(t, trace.String(), "scancode 9 -> Escape")
}

func TestScancodeKeycodeSaturates(t *testing.T) {
	var out bytes.Buffer
	c := cmd.Scancode{Codes: []string{"4294967295", "4294967287"}, Native: true, Out: cmd.Output{Format: "json"}}
	require.NoError(t, c.Run(discardLogger(), log.NewTrace(nil), &out))

	var got []cmd.ScancodeResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, uint32(math.MaxUint32), got[0].Keycode)
	assert.Equal(t, uint32(math.MaxUint32), got[1].Keycode)
	assert.Equal(t, "Unidentified(Xkb(4294967295))", got[0].Physical)
	assert.True(t, got[0].RoundTrip)
}

func TestScancodeInvalid(t *testing.T) {
	c := cmd.Scancode{Codes: []string{"abc"}}
	assert.Error(t, c.Run(discardLogger(), log.NewTrace(nil), io.Discard))
}

func TestScancodeText(t *testing.T) {
	var out bytes.Buffer
	c := cmd.Scancode{Codes: []string{"30"}, Native: true, Out: cmd.Output{Format: "text"}}
	require.NoError(t, c.Run(discardLogger(), log.NewTrace(nil), &out))
	assert.Contains(t, out.String(), "KeyA")
	assert.Contains(t, out.String(), "38")
}

func TestPhysical(t *testing.T) {
	var out bytes.Buffer
	c := cmd.Physical{Names: []string{"KeyA", "Fn"}, Out: cmd.Output{Format: "json"}}
	require.NoError(t, c.Run(discardLogger(), log.NewTrace(nil), &out))

	var got []cmd.PhysicalResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []cmd.PhysicalResult{
		{Physical: "KeyA", Defined: true, Scancode: 30, Keycode: 38, Usage: "A"},
		{Physical: "Fn"},
	}, got)

	c = cmd.Physical{Names: []string{"NotAKey"}}
	assert.Error(t, c.Run(discardLogger(), log.NewTrace(nil), io.Discard))
}

func TestResultsStayParseableWithLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, closers, err := log.New(log.Options{Level: "debug", Stderr: &stderr})
	require.NoError(t, err)
	require.Empty(t, closers)

	c := cmd.Physical{Names: []string{"Fn", "KeyA"}, Out: cmd.Output{Format: "json"}}
	require.NoError(t, c.Run(logger, log.NewTrace(nil), &stdout))

	var got []cmd.PhysicalResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got), stdout.String())
	assert.Len(t, got, 2)
	assert.Contains(t, stderr.String(), "level=WARN")

	stdout.Reset()
	stderr.Reset()
	k := cmd.Keysym{Syms: []string{"Shift_L"}, Out: cmd.Output{Format: "yaml"}}
	require.NoError(t, k.Run(logger, log.NewTrace(nil), &stdout))

	var syms []cmd.KeysymResult
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &syms), stdout.String())
	assert.Equal(t, "Shift", syms[0].Logical)
	assert.Contains(t, stderr.String(), "level=DEBUG")
}

func TestKeysym(t *testing.T) {
	var out bytes.Buffer
	c := cmd.Keysym{Syms: []string{"Shift_R", "0xff95", "KP_7"}, Out: cmd.Output{Format: "yaml"}}
	require.NoError(t, c.Run(discardLogger(), log.NewTrace(nil), &out))

	var got []cmd.KeysymResult
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []cmd.KeysymResult{
		{Keysym: 0xffe2, Name: "Shift_R", Logical: "Shift", Location: "Right"},
		{Keysym: 0xff95, Name: "KP_Home", Logical: "Home", Location: "Numpad"},
		{Keysym: 0xffb7, Name: "KP_7", Logical: "Unidentified", Location: "Numpad"},
	}, got)

	c = cmd.Keysym{Syms: []string{"NoSuchSym"}}
	assert.Error(t, c.Run(discardLogger(), log.NewTrace(nil), io.Discard))
}

func TestTableScancodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "scancodes.toml")
	c := cmd.Table{Name: "scancodes", Out: cmd.Output{Format: "toml", Output: path}}
	require.NoError(t, c.Run(discardLogger(), io.Discard))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc struct {
		Entries []keymap.ScancodeEntry `toml:"entries"`
	}
	require.NoError(t, toml.Unmarshal(data, &doc))
	require.Len(t, doc.Entries, len(keymap.ScancodeEntries()))
	assert.Equal(t, uint32(1), doc.Entries[0].Scancode)
	assert.Equal(t, "Escape", doc.Entries[0].Name)
}

func TestTableKeysyms(t *testing.T) {
	var out bytes.Buffer
	c := cmd.Table{Name: "keysyms", Out: cmd.Output{Format: "json"}}
	require.NoError(t, c.Run(discardLogger(), &out))

	var got []keymap.KeysymEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got, len(keymap.KeysymEntries()))
}

func TestTableHID(t *testing.T) {
	var out bytes.Buffer
	c := cmd.Table{Name: "hid", Out: cmd.Output{Format: "json"}}
	require.NoError(t, c.Run(discardLogger(), &out))

	var got []cmd.HIDEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, cmd.HIDEntry{Usage: 0x04, Name: "A", Physical: "KeyA"}, got[0])

	c = cmd.Table{Name: "bogus"}
	assert.Error(t, c.Run(discardLogger(), io.Discard))
}
