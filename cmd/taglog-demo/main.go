// Command taglog-demo prints a few lines through taglog so the output
// format, the rule syntax and the environment settings can be tried out.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/philipp01105/taglog/config"
	"github.com/philipp01105/taglog/formatter"
	"github.com/philipp01105/taglog/handler"
	"github.com/philipp01105/taglog/handler/filehandler"
	"github.com/philipp01105/taglog/handler/zaphandler"
	"github.com/philipp01105/taglog/logger"
)

func main() {
	debug := pflag.String("debug", "app,*A*", "enable specification, overrides $DEBUG")
	colors := pflag.String("colors", "", "auto, true or false, overrides $TAGLOG_COLORS")
	envFile := pflag.String("env-file", "", "load variables from this .env file first")
	file := pflag.String("file", "", "also append every line to this file")
	mirrorZap := pflag.Bool("zap", false, "also mirror every line to a zap development logger")
	pflag.Parse()

	var err error
	if *envFile != "" {
		err = config.LoadDotEnv(*envFile)
	} else {
		err = config.LoadDotEnv()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring invalid configuration: %v\n", err)
	}
	if pflag.CommandLine.Changed("debug") || cfg.Debug == "" {
		cfg.Debug = *debug
	}
	if *colors != "" {
		cfg.Colors = *colors
	}

	ctx := logger.NewBuilder().WithConfig(cfg).Build()
	logger.SetDefault(ctx)

	sinks, closeSinks, err := openSinks(*file, *mirrorZap)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeSinks()
	for _, s := range sinks {
		logger.AddWriter(s)
	}

	testLogger("app")
	testLogger("module A")
	testLogger("module B")

	_ = logger.Enable("Module")
	mod := newModule()
	mod.Say()
}

func testLogger(tag string) {
	l := logger.Get(tag)

	_ = l.V("Verbose")
	_ = l.D("Debug")
	_ = l.I("Info")
	_ = l.W("Warning")
	_ = l.E("Error")
	_ = l.F("Fatal")

	_ = l.D("something: %d %s %o", 123, "more", map[string]any{
		"hello": "world",
		"other": map[string]bool{"more": true},
	})
}

type module struct {
	Name string
	l    *logger.Logger
}

func newModule() *module {
	l := logger.Get("Module")
	l.SetOptions(formatter.Overrides{
		Trace: formatter.Bool(true),
		Depth: formatter.Int(0),
	})
	return &module{Name: "demo", l: l}
}

func (m *module) Say() {
	_ = m.l.D("Hello: %o", m)
}

// openSinks opens the optional file and zap sinks. Registering any sink
// replaces the stderr fallback, so stderr is added first whenever there
// is at least one extra sink.
func openSinks(file string, mirrorZap bool) ([]handler.Sink, func(), error) {
	var sinks []handler.Sink
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if file != "" {
		fs, err := filehandler.NewFileSink(filehandler.FileConfig{Filename: file})
		if err != nil {
			return nil, closeAll, err
		}
		closers = append(closers, func() { _ = fs.Close() })
		sinks = append(sinks, fs)
	}
	if mirrorZap {
		zl, err := zap.NewDevelopment()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		zs := zaphandler.New(zl)
		closers = append(closers, func() { _ = zs.Sync() })
		sinks = append(sinks, zs)
	}

	if len(sinks) > 0 {
		sinks = append([]handler.Sink{handler.Stderr()}, sinks...)
	}
	return sinks, closeAll, nil
}
