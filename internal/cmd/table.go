package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/Alia5/xkeymap/hid"
	"github.com/Alia5/xkeymap/keymap"
)

// Table dumps one of the translation tables.
type Table struct {
	Name string `arg:"" name:"table" help:"Table to dump" enum:"scancodes,keysyms,hid"`
	Out  Output `embed:""`
}

// HIDEntry is one row of the HID usage table.
type HIDEntry struct {
	Usage    uint8  `json:"usage" yaml:"usage" toml:"usage"`
	Name     string `json:"name" yaml:"name" toml:"name"`
	Physical string `json:"physical" yaml:"physical" toml:"physical"`
}

// Run is called by Kong when the table command is executed.
func (t *Table) Run(logger *slog.Logger, stdout io.Writer) error {
	logger.Debug("dumping table", "table", t.Name, "format", t.Out.Format)
	switch t.Name {
	case "scancodes":
		return writeResults(t.Out, stdout,
			[]string{"Scancode", "Keycode", "Physical"},
			func(e keymap.ScancodeEntry) []string {
				return []string{
					strconv.FormatUint(uint64(e.Scancode), 10),
					strconv.FormatUint(uint64(e.Keycode), 10),
					e.Name,
				}
			},
			keymap.ScancodeEntries())
	case "keysyms":
		return writeResults(t.Out, stdout,
			[]string{"Keysym", "Name", "Logical", "Location"},
			func(e keymap.KeysymEntry) []string {
				return []string{fmt.Sprintf("0x%04x", uint32(e.Keysym)), e.Name, e.Logical, e.Location}
			},
			keymap.KeysymEntries())
	case "hid":
		return writeResults(t.Out, stdout,
			[]string{"Usage", "Name", "Physical"},
			func(e HIDEntry) []string {
				return []string{fmt.Sprintf("0x%02X", e.Usage), e.Name, e.Physical}
			},
			hidEntries())
	default:
		return fmt.Errorf("unknown table %q", t.Name)
	}
}

func hidEntries() []HIDEntry {
	var out []HIDEntry
	for u := 0; u < 256; u++ {
		usage := hid.Usage(u)
		key := hid.ToPhysical(usage)
		if _, ok := key.KeyCode(); !ok {
			continue
		}
		out = append(out, HIDEntry{Usage: uint8(u), Name: usage.String(), Physical: key.String()})
	}
	return out
}
