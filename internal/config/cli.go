// Package config holds the root command line definition of xkeymap.
package config

import (
	"github.com/Alia5/xkeymap/internal/cmd"
	"github.com/Alia5/xkeymap/internal/log"

	"github.com/alecthomas/kong"
)

// Log configures logging for every command.
type Log struct {
	Level     string `help:"Log level" enum:"${log_levels}" default:"info" env:"XKEYMAP_LOG_LEVEL"`
	File      string `help:"Also write logs to this file" type:"path" env:"XKEYMAP_LOG_FILE"`
	TraceFile string `help:"Write one line per table lookup to this file" type:"path" env:"XKEYMAP_LOG_TRACE_FILE"`
}

// CLI is the root kong grammar.
type CLI struct {
	Config string `help:"Path to a json, yaml or toml config file" type:"path" env:"XKEYMAP_CONFIG"`
	Log    Log    `embed:"" prefix:"log."`

	Scancode cmd.Scancode      `cmd:"" help:"Translate Linux scan codes to physical keys"`
	Physical cmd.Physical      `cmd:"" help:"Translate physical key names to scan codes and HID usages"`
	Keysym   cmd.Keysym        `cmd:"" help:"Translate XKB key symbols to logical keys and locations"`
	Table    cmd.Table         `cmd:"" help:"Dump a translation table"`
	Cfg      cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}

// Vars are the kong variables interpolated into the CLI tags.
func Vars() kong.Vars {
	return kong.Vars{"log_levels": log.Levels}
}
