package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: markwp [flags] [input] [output]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown to WordPress Gutenberg blocks format.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown text, or a file path with --file")
	fmt.Fprintln(w, "  output    Output file path (default: stdout)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -f, --file                Treat input as a file path instead of text")
	fmt.Fprintln(w, "  -p, --pretty              Pretty print output")
	fmt.Fprintln(w, "  -d, --debug               Enable debug logging on stderr")
	fmt.Fprintln(w, "      --tokenizer <name>    Markdown tokenizer: goldmark, commonmark")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "      --mcp                 Run as MCP server over stdio")
	fmt.Fprintln(w, "      --http                Run as MCP server over HTTP")
	fmt.Fprintln(w, "      --addr <host:port>    HTTP listen address (default from config, :3000)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --config <path>       YAML config file")
	fmt.Fprintln(w, "  -v, --version             Print version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  API_TOKEN                 Bearer token required by the HTTP server")
	fmt.Fprintln(w, "  MARKWP_HOST, MARKWP_PORT  HTTP listen address")
	fmt.Fprintln(w, "  MARKWP_TOKENIZER          Markdown tokenizer")
}
