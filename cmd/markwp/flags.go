package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/rgonek/markwp/internal/config"
)

type cliFlags struct {
	file    bool
	debug   bool
	pretty  bool
	mcp     bool
	http    bool
	addr    string
	config  string
	help    bool
	version bool

	tokenizer    string
	tokenizerSet bool
}

// parseFlags parses args (without the program name) and returns the flags
// and the remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("markwp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&f.file, "file", "f", false, "treat input as a file path instead of text")
	fs.BoolVarP(&f.debug, "debug", "d", false, "enable debug logging")
	fs.BoolVarP(&f.pretty, "pretty", "p", false, "pretty print output")
	fs.BoolVar(&f.mcp, "mcp", false, "run as MCP server over stdio")
	fs.BoolVar(&f.http, "http", false, "run as MCP server over HTTP")
	fs.StringVar(&f.addr, "addr", "", "HTTP listen address (host:port)")
	fs.StringVar(&f.config, "config", "", "path to a YAML config file")
	fs.StringVar(&f.tokenizer, "tokenizer", "", "markdown tokenizer: goldmark, commonmark")
	fs.BoolVarP(&f.version, "version", "v", false, "print version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	f.tokenizerSet = fs.Changed("tokenizer")

	positional := fs.Args()
	if len(positional) > 2 {
		return nil, nil, fmt.Errorf("%w: too many arguments", ErrUsage)
	}
	if f.mcp && f.http {
		return nil, nil, fmt.Errorf("%w: --mcp and --http are mutually exclusive", ErrUsage)
	}
	return f, positional, nil
}

// apply overlays flags that were given onto cfg.
func (f *cliFlags) apply(cfg *config.Config) {
	if f.pretty {
		cfg.Convert.Pretty = true
	}
	if f.debug {
		cfg.Convert.Debug = true
	}
	if f.tokenizerSet {
		cfg.Convert.Tokenizer = f.tokenizer
	}
}
