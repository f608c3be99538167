package keysym_test

import (
	"testing"

	"github.com/Alia5/xkeymap/keysym"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {

	type testCase struct {
		name        string
		input       string
		expected    keysym.Keysym
		expectedErr error
		anyErr      bool
	}

	testCases := []testCase{
		{name: "xkb name", input: "Shift_L", expected: keysym.ShiftL},
		{name: "vendor name", input: "XF86AudioMute", expected: keysym.XF86AudioMute},
		{name: "alias", input: "Prior", expected: keysym.Prior},
		{name: "hex", input: "0xffe1", expected: keysym.ShiftL},
		{name: "upper hex prefix", input: "0XFF1B", expected: keysym.Escape},
		{name: "decimal", input: "65505", expected: keysym.ShiftL},
		{name: "undeclared hex", input: "0x61", expected: 0x61},
		{name: "unknown name", input: "NotAKeysym", expectedErr: keysym.ErrUnknownName},
		{name: "empty", input: "", expectedErr: keysym.ErrUnknownName},
		{name: "bad hex", input: "0xzz", anyErr: true},
		{name: "overflow", input: "99999999999", anyErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sym, err := keysym.Parse(tc.input)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			if tc.anyErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, sym)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "Shift_L", keysym.ShiftL.String())
	assert.Equal(t, "KP_Home", keysym.KPHome.String())
	assert.Equal(t, "Page_Up", keysym.Prior.String())
	assert.Equal(t, "0x0061", keysym.Keysym(0x61).String())

	_, ok := keysym.Keysym(0x61).Name()
	assert.False(t, ok)
}

func TestNameRoundTrip(t *testing.T) {
	for _, sym := range []keysym.Keysym{keysym.BackSpace, keysym.ShiftR, keysym.KP7, keysym.XF86AudioMute, keysym.Space} {
		name, ok := sym.Name()
		assert.True(t, ok)
		parsed, err := keysym.Parse(name)
		assert.NoError(t, err)
		assert.Equal(t, sym, parsed)
	}
}
