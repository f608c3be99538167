package main

import (
	"io"
	"os"
	"strings"

	"github.com/Alia5/xkeymap/internal/config"
	"github.com/Alia5/xkeymap/internal/configpaths"
	"github.com/Alia5/xkeymap/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	paths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("xkeymap"),
		kong.Description("Translate Linux scan codes and XKB key symbols to portable keys"),
		kong.UsageOnError(),
		config.Vars(),
		// Config files are loaded in priority order; flags and env override them.
		kong.Configuration(kong.JSON, paths.JSON...),
		kong.Configuration(kongyaml.Loader, paths.YAML...),
		kong.Configuration(kongtoml.Loader, paths.TOML...),
	)

	logger, closers, err := log.New(log.Options{Level: cli.Log.Level, File: cli.Log.File})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}

	var traceOut io.Writer
	if cli.Log.TraceFile != "" {
		f, err := os.OpenFile(cli.Log.TraceFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open trace file", "file", cli.Log.TraceFile, "error", err)
		} else {
			traceOut = f
			closers = append(closers, f)
		}
	} else if cli.Log.Level == "trace" {
		traceOut = os.Stderr
	}

	ctx.Bind(logger)
	ctx.BindTo(log.NewTrace(traceOut), (*log.TraceLogger)(nil))
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))

	err = runAndClose(func() error { return ctx.Run() }, closers)
	ctx.FatalIfErrorf(err)
}

// runAndClose runs the selected command and closes the log and trace
// files before returning, since the caller may exit right after.
func runAndClose(run func() error, closers []io.Closer) error {
	err := run()
	for _, c := range closers {
		_ = c.Close()
	}
	return err
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv(configpaths.EnvConfig)
}
