package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rgonek/markwp/converter"
	"github.com/rgonek/markwp/internal/config"
)

// Version is set at build time via ldflags.
var Version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if err := execute(args, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func execute(args []string, stdout, stderr io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	switch {
	case flags.help:
		printUsage(stdout)
		return nil
	case flags.version:
		fmt.Fprintf(stdout, "markwp %s\n", Version)
		return nil
	}

	cfg, err := config.Load(flags.config)
	if err != nil {
		return err
	}
	flags.apply(cfg)

	logger := newLogger(stderr, cfg.Convert.Debug)

	convCfg := cfg.ConverterConfig()
	convCfg.Logger = logger
	conv, err := converter.New(convCfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	switch {
	case flags.mcp:
		return serveStdio(conv, logger)
	case flags.http:
		return serveHTTP(conv, cfg, flags.addr, logger)
	}

	if len(positional) == 0 {
		printUsage(stdout)
		return nil
	}
	return convert(conv, flags, positional, stdout, logger)
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
