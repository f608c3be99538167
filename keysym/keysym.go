// Package keysym declares the X keyboard symbols understood by the key
// tables, with their canonical xkb names.
package keysym

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Keysym is a layout resolved key symbol as produced by xkbcommon.
type Keysym uint32

// ErrUnknownName is returned by Parse for a name that is not declared in
// this package.
var ErrUnknownName = errors.New("unknown keysym name")

var byName = func() map[string]Keysym {
	m := make(map[string]Keysym, len(names)+len(aliasNames))
	for sym, name := range names {
		m[name] = sym
	}
	for name, sym := range aliasNames {
		m[name] = sym
	}
	return m
}()

// Name returns the canonical xkb name of s.
func (s Keysym) Name() (string, bool) {
	n, ok := names[s]
	return n, ok
}

func (s Keysym) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("0x%04x", uint32(s))
}

// Parse accepts an xkb name ("Shift_L", "XF86AudioMute"), a hex value
// ("0xffe1") or a decimal value ("65505").
func Parse(s string) (Keysym, error) {
	if sym, ok := byName[s]; ok {
		return sym, nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid keysym %q: %w", s, err)
		}
		return Keysym(v), nil
	}
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid keysym %q: %w", s, err)
		}
		return Keysym(v), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, s)
}
