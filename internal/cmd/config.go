package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/Alia5/xkeymap/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ErrDestinationExists is returned by config init when the target file
// exists and --force is not set.
var ErrDestinationExists = errors.New("destination exists; use --force to overwrite")

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a specific command.
// Its flags are named apart from the command flags it writes, so a loaded
// template cannot feed "format" or "output" back into config init.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"scancode,physical,keysym,table"`
	Type    string `help:"Template file type" enum:"json,yaml,toml" default:"json"`
	Dest    string `help:"Destination file path (defaults to <command>.<type> in the current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

var configCommands = map[string]reflect.Type{
	"scancode": reflect.TypeOf((*Scancode)(nil)).Elem(),
	"physical": reflect.TypeOf((*Physical)(nil)).Elem(),
	"keysym":   reflect.TypeOf((*Keysym)(nil)).Elem(),
	"table":    reflect.TypeOf((*Table)(nil)).Elem(),
}

// Run builds the template from the flag tags of the command struct.
//
// Keys are laid out the way each loader resolves them: the JSON loader
// and the TOML loader look flags up by flag name at the top level (the
// TOML loader also rejects keys that are not flag names), while the YAML
// loader walks the command path first.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Type)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Type)
	}
	t, ok := configCommands[c.Command]
	if !ok {
		return fmt.Errorf("unknown command %q", c.Command)
	}
	flags := templateFromStruct(t, "")
	root := flags
	if format == "yaml" {
		root = map[string]any{c.Command: flags}
	}

	dest := c.Dest
	if dest == "" {
		dest = c.Command + "." + configpaths.Extension(format)
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return ErrDestinationExists
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(root, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(root)
	case "toml":
		data, err = toml.Marshal(root)
	}
	if err != nil {
		return fmt.Errorf("encode %s template: %w", format, err)
	}
	return os.WriteFile(dest, data, 0o644)
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// flagName returns the kong flag name of a struct field: the name tag, or
// the field name in lower kebab case.
func flagName(f reflect.StructField) string {
	if name := f.Tag.Get("name"); name != "" {
		return name
	}
	var b strings.Builder
	r := []rune(f.Name)
	for i, c := range r {
		if unicode.IsUpper(c) {
			if i > 0 && (unicode.IsLower(r[i-1]) || unicode.IsDigit(r[i-1])) {
				b.WriteByte('-')
			}
			c = unicode.ToLower(c)
		}
		b.WriteRune(c)
	}
	return b.String()
}

// templateFromStruct maps the flags of a kong command struct to their
// defaults, keyed by full flag name. Positional arguments, slices and
// paths without a default are skipped; an empty path would expand to the
// working directory when loaded.
func templateFromStruct(t reflect.Type, prefix string) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("kong") == "-" {
			continue
		}
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}
		if _, ok := f.Tag.Lookup("embed"); ok {
			for k, v := range templateFromStruct(f.Type, prefix+f.Tag.Get("prefix")) {
				out[k] = v
			}
			continue
		}
		def := f.Tag.Get("default")
		if f.Tag.Get("type") == "path" && def == "" {
			continue
		}
		if v := defaultValue(f.Type, def); v != nil {
			out[prefix+flagName(f)] = v
		}
	}
	return out
}

func defaultValue(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return int64(0)
		}
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(def, 10, 64)
		if err != nil {
			return uint64(0)
		}
		return n
	default:
		return nil
	}
}
