package keymap_test

import (
	"testing"

	"github.com/Alia5/xkeymap/keyboard"
	"github.com/Alia5/xkeymap/keymap"
	"github.com/Alia5/xkeymap/keysym"
	"github.com/stretchr/testify/assert"
)

func TestKeysymToLogical(t *testing.T) {

	type testCase struct {
		name     string
		sym      keysym.Keysym
		expected keyboard.LogicalKey
	}

	testCases := []testCase{
		{name: "return", sym: keysym.Return, expected: keyboard.Named(keyboard.NamedEnter)},
		{name: "keypad enter", sym: keysym.KPEnter, expected: keyboard.Named(keyboard.NamedEnter)},
		{name: "escape", sym: keysym.Escape, expected: keyboard.Named(keyboard.NamedEscape)},
		{name: "left shift", sym: keysym.ShiftL, expected: keyboard.Named(keyboard.NamedShift)},
		{name: "right shift", sym: keysym.ShiftR, expected: keyboard.Named(keyboard.NamedShift)},
		{name: "right control", sym: keysym.ControlR, expected: keyboard.Named(keyboard.NamedControl)},
		{name: "home", sym: keysym.Home, expected: keyboard.Named(keyboard.NamedHome)},
		{name: "keypad home", sym: keysym.KPHome, expected: keyboard.Named(keyboard.NamedHome)},
		{name: "space", sym: keysym.Space, expected: keyboard.Named(keyboard.NamedSpace)},
		{name: "audio mute", sym: keysym.XF86AudioMute, expected: keyboard.Named(keyboard.NamedAudioVolumeMute)},
		{name: "keypad 7", sym: keysym.KP7, expected: keyboard.UnidentifiedKey},
		{name: "latin a", sym: 0x0061, expected: keyboard.UnidentifiedKey},
		{name: "zero", sym: 0, expected: keyboard.UnidentifiedKey},
		{name: "unknown", sym: 0x12345678, expected: keyboard.UnidentifiedKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, keymap.KeysymToLogical(tc.sym))
		})
	}
}

func TestKeysymEntries(t *testing.T) {
	entries := keymap.KeysymEntries()
	assert.NotEmpty(t, entries)
	for i, e := range entries {
		if i > 0 {
			assert.Less(t, entries[i-1].Keysym, e.Keysym)
		}
		named, ok := keymap.KeysymToLogical(e.Keysym).Named()
		assert.True(t, ok, "%s", e.Name)
		assert.Equal(t, e.Named, named)
		assert.Equal(t, named.String(), e.Logical)
		_, hasName := e.Keysym.Name()
		assert.True(t, hasName, "keysym 0x%x has no name", uint32(e.Keysym))
	}
}
