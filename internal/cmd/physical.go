package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/Alia5/xkeymap/hid"
	"github.com/Alia5/xkeymap/internal/log"
	"github.com/Alia5/xkeymap/keyboard"
	"github.com/Alia5/xkeymap/keymap"
)

// Physical looks up the scan code and HID usage of physical keys.
type Physical struct {
	Names []string `arg:"" name:"name" help:"Physical key names such as KeyA, Escape or NumpadEnter"`
	Out   Output   `embed:""`
}

// PhysicalResult describes one physical key.
type PhysicalResult struct {
	Physical string `json:"physical" yaml:"physical" toml:"physical"`
	Defined  bool   `json:"defined" yaml:"defined" toml:"defined"`
	Scancode uint32 `json:"scancode" yaml:"scancode" toml:"scancode"`
	Keycode  uint32 `json:"keycode" yaml:"keycode" toml:"keycode"`
	Usage    string `json:"usage,omitempty" yaml:"usage,omitempty" toml:"usage,omitempty"`
}

// Run is called by Kong when the physical command is executed.
func (p *Physical) Run(logger *slog.Logger, trace log.TraceLogger, stdout io.Writer) error {
	results := make([]PhysicalResult, 0, len(p.Names))
	for _, name := range p.Names {
		code, ok := keyboard.ParseKeyCode(name)
		if !ok {
			return fmt.Errorf("unknown physical key %q", name)
		}
		key := keyboard.Code(code)
		res := PhysicalResult{Physical: code.String()}
		if sc, ok := keymap.PhysicalToScancode(key); ok {
			res.Defined = true
			res.Scancode = sc
			res.Keycode, _ = keymap.PhysicalToKeycode(key)
		} else {
			logger.Warn("physical key has no Linux scan code", "key", name)
		}
		if u, ok := hid.FromPhysical(key); ok {
			res.Usage = u.String()
		}
		trace.Log("physical", name, res.Scancode)
		results = append(results, res)
	}
	return writeResults(p.Out, stdout,
		[]string{"Physical", "Scancode", "Keycode", "HID"},
		func(r PhysicalResult) []string {
			if !r.Defined {
				return []string{r.Physical, "-", "-", r.Usage}
			}
			return []string{
				r.Physical,
				strconv.FormatUint(uint64(r.Scancode), 10),
				strconv.FormatUint(uint64(r.Keycode), 10),
				r.Usage,
			}
		},
		results)
}
