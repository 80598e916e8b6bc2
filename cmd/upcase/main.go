// Package main is the entry point for the upcase host.
//
// It loads a document from a file or stdin, registers the
// text.to_uppercase command, executes it, and writes the result to stdout
// or back in place. An optional Lua script drives the extension instead,
// through the upcase module.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/upcase/internal/command"
	"github.com/dshills/upcase/internal/config"
	"github.com/dshills/upcase/internal/editor"
	"github.com/dshills/upcase/internal/extension"
	"github.com/dshills/upcase/internal/extension/luamod"
	"github.com/dshills/upcase/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, input, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.Watch {
		return runWatch(opts, input)
	}

	if err := runOnce(opts, input); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runOnce converts the document a single time.
func runOnce(opts config.Options, input string) error {
	buf, err := loadBuffer(input)
	if err != nil {
		return err
	}

	reg := command.NewRegistry()

	if opts.Script != "" {
		if err := runScript(opts.Script, buf, reg); err != nil {
			return err
		}
	} else {
		ext := extension.New(buf, reg)
		if err := ext.Setup(); err != nil {
			return fmt.Errorf("setting up extension: %w", err)
		}
		defer ext.Teardown()
	}

	if err := reg.Execute(extension.CommandID, nil); err != nil {
		return fmt.Errorf("executing %s: %w", extension.CommandID, err)
	}

	return writeResult(opts, input, buf)
}

// runScript executes a Lua script against the upcase module.
// The script is expected to call upcase.setup().
func runScript(path string, buf editor.BufferProvider, reg *command.Registry) error {
	state := script.NewState()
	defer state.Close()

	if err := state.Install(luamod.NewModule(buf, reg)); err != nil {
		return err
	}
	if err := state.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// runWatch re-runs the conversion whenever the script changes.
func runWatch(opts config.Options, input string) int {
	if opts.Script == "" {
		fmt.Fprintln(os.Stderr, "Error: -watch requires -script")
		return 1
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: -watch requires an input file")
		return 1
	}

	rerun := func() {
		if err := runOnce(opts, input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	rerun()

	w, err := script.NewWatcher(opts.Script, rerun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: watching %s: %v\n", opts.Script, err)
		return 1
	}
	defer w.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	return 0
}

// loadBuffer reads the document from a file, or stdin when input is empty.
func loadBuffer(input string) (*editor.LineBuffer, error) {
	if input == "" {
		buf, err := editor.NewLineBufferFromReader(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return buf, nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", input, err)
	}
	defer f.Close()

	buf, err := editor.NewLineBufferFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", input, err)
	}
	return buf, nil
}

// writeResult emits the converted document in place or to stdout.
func writeResult(opts config.Options, input string, buf *editor.LineBuffer) error {
	if opts.Write {
		if input == "" {
			return fmt.Errorf("cannot write in place when reading from stdin")
		}
		if err := os.WriteFile(input, []byte(buf.Text()), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", input, err)
		}
		return nil
	}

	_, err := fmt.Print(buf.Text())
	return err
}

func parseFlags() (config.Options, string, error) {
	var configPath string
	var showVersion bool
	var flagOpts config.Options

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&flagOpts.Script, "script", "", "Lua script to run against the upcase module")
	flag.BoolVar(&flagOpts.Watch, "watch", false, "Re-run the script when it changes (requires -script)")
	flag.BoolVar(&flagOpts.Write, "w", false, "Rewrite the input file in place")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("upcase %s (%s)\n", version, commit)
		os.Exit(0)
	}

	opts := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return opts, "", err
		}
		opts = loaded
	}

	// Command-line flags override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "script":
			opts.Script = flagOpts.Script
		case "watch":
			opts.Watch = flagOpts.Watch
		case "w":
			opts.Write = flagOpts.Write
		}
	})

	return opts, flag.Arg(0), nil
}
