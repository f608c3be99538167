package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Alia5/xkeymap/internal/configpaths"

	"github.com/olekukonko/tablewriter"
	toml "github.com/pelletier/go-toml"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"
)

// Output selects how command results are printed.
type Output struct {
	Format string `help:"Output format (auto picks text on a terminal, json otherwise)" enum:"auto,text,json,yaml,toml" default:"auto" env:"XKEYMAP_FORMAT"`
	Output string `help:"Write results to this file instead of stdout" type:"path"`
}

// tomlDocument wraps results since a TOML document cannot be an array.
type tomlDocument[T any] struct {
	Entries []T `toml:"entries"`
}

// resolveFormat turns "auto" into text or json depending on whether w is
// a terminal.
func resolveFormat(format string, w io.Writer) string {
	switch format {
	case "auto", "":
	case "text":
		return "text"
	default:
		return normalizeFormat(format)
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "text"
	}
	return "json"
}

// writeResults prints items in the selected format. Text output renders a
// table with header and one row per item.
func writeResults[T any](o Output, stdout io.Writer, header []string, row func(T) []string, items []T) (err error) {
	w := stdout
	if o.Output != "" {
		if err := configpaths.EnsureDir(o.Output); err != nil {
			return err
		}
		var f *os.File
		f, err = os.Create(o.Output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	format := resolveFormat(o.Format, w)
	switch format {
	case "text":
		table := tablewriter.NewWriter(w)
		cols := make([]any, len(header))
		for i, h := range header {
			cols[i] = h
		}
		table.Header(cols...)
		for _, it := range items {
			if err := table.Append(row(it)); err != nil {
				return err
			}
		}
		return table.Render()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		data, err := toml.Marshal(tomlDocument[T]{Entries: items})
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.New("unsupported format: " + o.Format)
	}
}
