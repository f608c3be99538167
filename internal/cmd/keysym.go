package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/xkeymap/internal/log"
	"github.com/Alia5/xkeymap/keymap"
	"github.com/Alia5/xkeymap/keysym"
)

// Keysym resolves XKB key symbols to logical keys.
type Keysym struct {
	Syms []string `arg:"" name:"sym" help:"Key symbols by xkb name, 0x hex or decimal value"`
	Out  Output   `embed:""`
}

// KeysymResult is the translation of one key symbol.
type KeysymResult struct {
	Keysym   uint32 `json:"keysym" yaml:"keysym" toml:"keysym"`
	Name     string `json:"name" yaml:"name" toml:"name"`
	Logical  string `json:"logical" yaml:"logical" toml:"logical"`
	Location string `json:"location" yaml:"location" toml:"location"`
}

// Run is called by Kong when the keysym command is executed.
func (k *Keysym) Run(logger *slog.Logger, trace log.TraceLogger, stdout io.Writer) error {
	results := make([]KeysymResult, 0, len(k.Syms))
	for _, arg := range k.Syms {
		sym, err := keysym.Parse(arg)
		if err != nil {
			return fmt.Errorf("keysym: %w", err)
		}
		logical := keymap.KeysymToLogical(sym)
		res := KeysymResult{
			Keysym:   uint32(sym),
			Name:     sym.String(),
			Logical:  logical.String(),
			Location: keymap.KeysymToLocation(sym).String(),
		}
		trace.Log("keysym", sym, logical)
		logger.Debug("translated keysym", "input", arg, "logical", res.Logical, "location", res.Location)
		results = append(results, res)
	}
	return writeResults(k.Out, stdout,
		[]string{"Keysym", "Name", "Logical", "Location"},
		func(r KeysymResult) []string {
			return []string{fmt.Sprintf("0x%04x", r.Keysym), r.Name, r.Logical, r.Location}
		},
		results)
}
