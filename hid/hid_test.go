package hid_test

import (
	"testing"

	"github.com/Alia5/xkeymap/hid"
	"github.com/Alia5/xkeymap/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageBijection(t *testing.T) {
	defined := 0
	for u := 0; u < 256; u++ {
		usage := hid.Usage(u)
		key := hid.ToPhysical(usage)
		code, ok := key.KeyCode()
		if !ok {
			assert.Equal(t, keyboard.Unidentified(keyboard.NativeKeyCode{}), key, "usage %s", usage)
			continue
		}
		defined++
		back, ok := hid.FromPhysical(keyboard.Code(code))
		require.True(t, ok, "usage %s", usage)
		assert.Equal(t, usage, back)
	}
	assert.Greater(t, defined, 100)
}

func TestFromPhysical(t *testing.T) {

	type testCase struct {
		name     string
		key      keyboard.PhysicalKey
		expected hid.Usage
		ok       bool
	}

	testCases := []testCase{
		{name: "letter a", key: keyboard.Code(keyboard.KeyA), expected: hid.KeyA, ok: true},
		{name: "escape", key: keyboard.Code(keyboard.KeyEscape), expected: hid.KeyEscape, ok: true},
		{name: "right alt", key: keyboard.Code(keyboard.KeyAltRight), expected: hid.KeyRightAlt, ok: true},
		{name: "numpad 7", key: keyboard.Code(keyboard.KeyNumpad7), expected: hid.KeyKp7, ok: true},
		{name: "lang1", key: keyboard.Code(keyboard.KeyLang1), expected: hid.KeyHangeul, ok: true},
		{name: "fn", key: keyboard.Code(keyboard.KeyFn)},
		{name: "sentinel", key: keyboard.Unidentified(keyboard.NativeKeyCode{})},
		{name: "raw scan code", key: keyboard.Unidentified(keyboard.Xkb(30))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, ok := hid.FromPhysical(tc.key)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, u)
		})
	}
}

func TestUnmappedUsages(t *testing.T) {
	for _, u := range []hid.Usage{0, hid.KeyExecute, hid.KeyMenu, hid.KeyStop, hid.KeyNonUSHash} {
		assert.Equal(t, keyboard.Unidentified(keyboard.NativeKeyCode{}), hid.ToPhysical(u), "usage %s", u)
	}
}

func TestModifierBit(t *testing.T) {

	type testCase struct {
		usage    hid.Usage
		expected uint8
		ok       bool
	}

	testCases := []testCase{
		{usage: hid.KeyLeftCtrl, expected: hid.ModLeftCtrl, ok: true},
		{usage: hid.KeyLeftShift, expected: hid.ModLeftShift, ok: true},
		{usage: hid.KeyLeftAlt, expected: hid.ModLeftAlt, ok: true},
		{usage: hid.KeyLeftGUI, expected: hid.ModLeftGUI, ok: true},
		{usage: hid.KeyRightCtrl, expected: hid.ModRightCtrl, ok: true},
		{usage: hid.KeyRightShift, expected: hid.ModRightShift, ok: true},
		{usage: hid.KeyRightAlt, expected: hid.ModRightAlt, ok: true},
		{usage: hid.KeyRightGUI, expected: hid.ModRightGUI, ok: true},
		{usage: hid.KeyA},
		{usage: hid.KeyMediaPlayPause},
	}

	for _, tc := range testCases {
		t.Run(tc.usage.String(), func(t *testing.T) {
			bit, ok := hid.ModifierBit(tc.usage)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, bit)
		})
	}
}

func TestUsageString(t *testing.T) {
	assert.Equal(t, "A", hid.KeyA.String())
	assert.Equal(t, "LeftShift", hid.KeyLeftShift.String())
	assert.Equal(t, "Kp7", hid.KeyKp7.String())
	assert.Equal(t, "0xA5", hid.Usage(0xA5).String())
}
