package keyboard_test

import (
	"testing"

	"github.com/Alia5/xkeymap/keyboard"
	"github.com/stretchr/testify/assert"
)

func TestKeyCodeNames(t *testing.T) {
	for k := keyboard.KeyCode(1); int(k) < keyboard.KeyCodeCount; k++ {
		name := k.String()
		parsed, ok := keyboard.ParseKeyCode(name)
		assert.True(t, ok, name)
		assert.Equal(t, k, parsed, name)
	}

	_, ok := keyboard.ParseKeyCode("NoSuchKey")
	assert.False(t, ok)
	assert.Equal(t, "KeyCode(65535)", keyboard.KeyCode(65535).String())
}

func TestNamedKeyNames(t *testing.T) {
	for n := keyboard.NamedKey(1); int(n) < keyboard.NamedKeyCount; n++ {
		name := n.String()
		parsed, ok := keyboard.ParseNamedKey(name)
		assert.True(t, ok, name)
		assert.Equal(t, n, parsed, name)
	}

	_, ok := keyboard.ParseNamedKey("")
	assert.False(t, ok)
}

func TestPhysicalKey(t *testing.T) {

	type testCase struct {
		name       string
		key        keyboard.PhysicalKey
		str        string
		identified bool
	}

	testCases := []testCase{
		{name: "code", key: keyboard.Code(keyboard.KeyA), str: "KeyA", identified: true},
		{name: "escape", key: keyboard.Code(keyboard.KeyEscape), str: "Escape", identified: true},
		{name: "sentinel", key: keyboard.Unidentified(keyboard.NativeKeyCode{}), str: "Unidentified"},
		{name: "xkb", key: keyboard.Unidentified(keyboard.Xkb(5)), str: "Unidentified(Xkb(5))"},
		{name: "android", key: keyboard.Unidentified(keyboard.Android(7)), str: "Unidentified(Android(7))"},
		{name: "macos", key: keyboard.Unidentified(keyboard.MacOS(9)), str: "Unidentified(MacOS(9))"},
		{name: "windows", key: keyboard.Unidentified(keyboard.Windows(11)), str: "Unidentified(Windows(11))"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.str, tc.key.String())
			_, identified := tc.key.KeyCode()
			assert.Equal(t, tc.identified, identified)
			_, native := tc.key.Native()
			assert.Equal(t, !tc.identified, native)
		})
	}
}

func TestPhysicalKeyEquality(t *testing.T) {
	assert.Equal(t, keyboard.Code(keyboard.KeyUnknown), keyboard.Unidentified(keyboard.NativeKeyCode{}))
	assert.NotEqual(t, keyboard.Unidentified(keyboard.Xkb(0)), keyboard.Unidentified(keyboard.NativeKeyCode{}))
	assert.NotEqual(t, keyboard.Unidentified(keyboard.Xkb(3)), keyboard.Unidentified(keyboard.Android(3)))
}

func TestLogicalKey(t *testing.T) {
	assert.Equal(t, "Unidentified", keyboard.UnidentifiedKey.String())
	_, ok := keyboard.UnidentifiedKey.Named()
	assert.False(t, ok)

	shift := keyboard.Named(keyboard.NamedShift)
	n, ok := shift.Named()
	assert.True(t, ok)
	assert.Equal(t, keyboard.NamedShift, n)
	assert.Equal(t, "Shift", shift.String())
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "Standard", keyboard.LocationStandard.String())
	assert.Equal(t, "Left", keyboard.LocationLeft.String())
	assert.Equal(t, "Right", keyboard.LocationRight.String())
	assert.Equal(t, "Numpad", keyboard.LocationNumpad.String())
	assert.Equal(t, "Location(9)", keyboard.Location(9).String())
}
