package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/Alia5/xkeymap/hid"
	"github.com/Alia5/xkeymap/internal/log"
	"github.com/Alia5/xkeymap/keyboard"
	"github.com/Alia5/xkeymap/keymap"
)

// Scancode translates scan codes to physical keys.
type Scancode struct {
	Codes  []string `arg:"" name:"code" help:"Scan codes, decimal or 0x hex"`
	Native bool     `help:"Codes are kernel scan codes instead of X11/Wayland keycodes" env:"XKEYMAP_NATIVE"`
	Out    Output   `embed:""`
}

// ScancodeResult is the translation of one scan code.
type ScancodeResult struct {
	Scancode  uint32 `json:"scancode" yaml:"scancode" toml:"scancode"`
	Keycode   uint32 `json:"keycode" yaml:"keycode" toml:"keycode"`
	Physical  string `json:"physical" yaml:"physical" toml:"physical"`
	Usage     string `json:"usage,omitempty" yaml:"usage,omitempty" toml:"usage,omitempty"`
	RoundTrip bool   `json:"roundTrip" yaml:"roundTrip" toml:"roundTrip"`
}

// Run is called by Kong when the scancode command is executed.
func (s *Scancode) Run(logger *slog.Logger, trace log.TraceLogger, stdout io.Writer) error {
	results := make([]ScancodeResult, 0, len(s.Codes))
	for _, arg := range s.Codes {
		v, err := parseCode(arg)
		if err != nil {
			return err
		}
		res := translateScancode(v, s.Native)
		trace.Log("scancode", arg, res.Physical)
		logger.Debug("translated scan code", "input", arg, "native", s.Native, "physical", res.Physical)
		results = append(results, res)
	}
	return writeResults(s.Out, stdout,
		[]string{"Scancode", "Keycode", "Physical", "HID", "Round trip"},
		func(r ScancodeResult) []string {
			return []string{
				strconv.FormatUint(uint64(r.Scancode), 10),
				strconv.FormatUint(uint64(r.Keycode), 10),
				r.Physical,
				r.Usage,
				strconv.FormatBool(r.RoundTrip),
			}
		},
		results)
}

func translateScancode(v uint32, native bool) ScancodeResult {
	var key keyboard.PhysicalKey
	res := ScancodeResult{}
	if native {
		key = keymap.NativeScancodeToPhysical(v)
		res.Scancode = v
		res.Keycode = keycodeOf(v)
	} else {
		key = keymap.ScancodeToPhysical(v)
		res.Keycode = v
		if v >= 8 {
			res.Scancode = v - 8
		}
	}
	res.Physical = key.String()
	if u, ok := hid.FromPhysical(key); ok {
		res.Usage = u.String()
	}
	if back, ok := keymap.PhysicalToScancode(key); ok {
		res.RoundTrip = back == res.Scancode
	}
	return res
}

// keycodeOf adds the X11 offset, saturating at math.MaxUint32.
func keycodeOf(scancode uint32) uint32 {
	if scancode > math.MaxUint32-8 {
		return math.MaxUint32
	}
	return scancode + 8
}

// parseCode accepts decimal or 0x prefixed hex values.
func parseCode(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid scan code %q: %w", s, err)
	}
	return uint32(v), nil
}
