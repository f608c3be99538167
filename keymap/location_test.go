package keymap_test

import (
	"testing"

	"github.com/Alia5/xkeymap/keyboard"
	"github.com/Alia5/xkeymap/keymap"
	"github.com/Alia5/xkeymap/keysym"
	"github.com/stretchr/testify/assert"
)

func TestKeysymToLocation(t *testing.T) {

	type testCase struct {
		name     string
		sym      keysym.Keysym
		expected keyboard.Location
	}

	testCases := []testCase{
		{name: "left shift", sym: keysym.ShiftL, expected: keyboard.LocationLeft},
		{name: "right shift", sym: keysym.ShiftR, expected: keyboard.LocationRight},
		{name: "left control", sym: keysym.ControlL, expected: keyboard.LocationLeft},
		{name: "right control", sym: keysym.ControlR, expected: keyboard.LocationRight},
		{name: "left meta", sym: keysym.MetaL, expected: keyboard.LocationLeft},
		{name: "left alt", sym: keysym.AltL, expected: keyboard.LocationLeft},
		{name: "right super", sym: keysym.SuperR, expected: keyboard.LocationRight},
		{name: "right hyper", sym: keysym.HyperR, expected: keyboard.LocationRight},
		{name: "keypad home", sym: keysym.KPHome, expected: keyboard.LocationNumpad},
		{name: "keypad 7", sym: keysym.KP7, expected: keyboard.LocationNumpad},
		{name: "keypad enter", sym: keysym.KPEnter, expected: keyboard.LocationNumpad},
		{name: "keypad divide", sym: keysym.KPDivide, expected: keyboard.LocationNumpad},
		{name: "keypad equal", sym: keysym.KPEqual, expected: keyboard.LocationNumpad},
		{name: "home", sym: keysym.Home, expected: keyboard.LocationStandard},
		{name: "return", sym: keysym.Return, expected: keyboard.LocationStandard},
		{name: "latin a", sym: 0x0061, expected: keyboard.LocationStandard},
		{name: "unknown", sym: 0xdeadbeef, expected: keyboard.LocationStandard},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, keymap.KeysymToLocation(tc.sym))
		})
	}
}

func TestKeysymToLocationPartition(t *testing.T) {
	counts := map[keyboard.Location]int{}
	for sym := keysym.Keysym(0xff00); sym <= 0xffff; sym++ {
		loc := keymap.KeysymToLocation(sym)
		assert.Contains(t, []keyboard.Location{
			keyboard.LocationStandard,
			keyboard.LocationLeft,
			keyboard.LocationRight,
			keyboard.LocationNumpad,
		}, loc)
		counts[loc]++
	}
	assert.Equal(t, 6, counts[keyboard.LocationLeft])
	assert.Equal(t, 6, counts[keyboard.LocationRight])
	assert.Positive(t, counts[keyboard.LocationNumpad])
}

func TestLocationIndependentOfLogical(t *testing.T) {
	assert.Equal(t, keymap.KeysymToLogical(keysym.Home), keymap.KeysymToLogical(keysym.KPHome))
	assert.NotEqual(t, keymap.KeysymToLocation(keysym.Home), keymap.KeysymToLocation(keysym.KPHome))
	assert.Equal(t, keyboard.UnidentifiedKey, keymap.KeysymToLogical(keysym.KP7))
	assert.Equal(t, keyboard.LocationNumpad, keymap.KeysymToLocation(keysym.KP7))
}
