package keymap

import (
	"cmp"
	"slices"

	"github.com/Alia5/xkeymap/keyboard"
	"github.com/Alia5/xkeymap/keysym"
)

// ScancodeEntry is one row of the scan code table.
type ScancodeEntry struct {
	Scancode uint32           `json:"scancode" yaml:"scancode" toml:"scancode"`
	Keycode  uint32           `json:"keycode" yaml:"keycode" toml:"keycode"`
	Key      keyboard.KeyCode `json:"-" yaml:"-" toml:"-"`
	Name     string           `json:"key" yaml:"key" toml:"key"`
}

// ScancodeEntries returns the defined scan codes in ascending order.
func ScancodeEntries() []ScancodeEntry {
	var out []ScancodeEntry
	for sc, k := range scancodes {
		if k == keyboard.KeyUnknown {
			continue
		}
		out = append(out, ScancodeEntry{
			Scancode: uint32(sc),
			Keycode:  uint32(sc) + xkbOffset,
			Key:      k,
			Name:     k.String(),
		})
	}
	return out
}

// KeysymEntry is one row of the logical key table.
type KeysymEntry struct {
	Keysym   keysym.Keysym     `json:"keysym" yaml:"keysym" toml:"keysym"`
	Name     string            `json:"name" yaml:"name" toml:"name"`
	Named    keyboard.NamedKey `json:"-" yaml:"-" toml:"-"`
	Logical  string            `json:"logical" yaml:"logical" toml:"logical"`
	Location string            `json:"location" yaml:"location" toml:"location"`
}

// KeysymEntries returns the named key symbols ordered by value.
func KeysymEntries() []KeysymEntry {
	out := make([]KeysymEntry, 0, len(namedKeysyms))
	for sym, n := range namedKeysyms {
		out = append(out, KeysymEntry{
			Keysym:   sym,
			Name:     sym.String(),
			Named:    n,
			Logical:  n.String(),
			Location: KeysymToLocation(sym).String(),
		})
	}
	slices.SortFunc(out, func(a, b KeysymEntry) int {
		return cmp.Compare(a.Keysym, b.Keysym)
	})
	return out
}
