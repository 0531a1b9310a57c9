// Package mcpserver exposes the converter as Model Context Protocol tools
// over stdio and streamable HTTP.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgonek/markwp/converter"
)

const (
	// Name is the implementation name reported to clients.
	Name = "markwp-mcp"
	// Version is the implementation version reported to clients.
	Version = "1.0.0"
)

// ConvertMarkdownInput is the argument of the convert_markdown tool.
type ConvertMarkdownInput struct {
	Markdown string `json:"markdown" jsonschema:"The Markdown text to convert"`
	Pretty   bool   `json:"pretty,omitempty" jsonschema:"Whether to pretty print the output"`
}

// ConvertFileInput is the argument of the convert_file tool.
type ConvertFileInput struct {
	FilePath   string `json:"filePath" jsonschema:"Path to the Markdown file to convert"`
	OutputPath string `json:"outputPath,omitempty" jsonschema:"Optional path to save the converted output"`
	Pretty     bool   `json:"pretty,omitempty" jsonschema:"Whether to pretty print the output"`
}

type tools struct {
	conv   *converter.Converter
	logger *slog.Logger
}

// New returns a server with the conversion tools registered. A nil logger
// discards output.
func New(conv *converter.Converter, logger *slog.Logger) *mcp.Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	server := mcp.NewServer(&mcp.Implementation{Name: Name, Version: Version}, nil)
	t := &tools{conv: conv, logger: logger}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_markdown",
		Description: "Convert Markdown text to WordPress Gutenberg block format",
	}, t.convertMarkdown)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_file",
		Description: "Convert a Markdown file to WordPress Gutenberg block format",
	}, t.convertFile)

	return server
}

func (t *tools) convertMarkdown(_ context.Context, _ *mcp.CallToolRequest, in ConvertMarkdownInput) (*mcp.CallToolResult, any, error) {
	result, err := t.conv.ConvertWith(in.Markdown, converter.ConvertOptions{Pretty: in.Pretty})
	if err != nil {
		t.logger.Error("convert_markdown failed", "error", err)
		return errorResult("Error converting markdown: %v", err), nil, nil
	}
	t.logCall("convert_markdown", len(in.Markdown), result)
	return textResult(result.Content), nil, nil
}

func (t *tools) convertFile(_ context.Context, _ *mcp.CallToolRequest, in ConvertFileInput) (*mcp.CallToolResult, any, error) {
	content, err := t.convertPath(in)
	if err != nil {
		t.logger.Error("convert_file failed", "path", in.FilePath, "error", err)
		return errorResult("Error converting file: %v", err), nil, nil
	}
	return textResult(content), nil, nil
}

// convertPath converts the input file and, when an output path is given,
// writes the result there and returns a confirmation instead.
func (t *tools) convertPath(in ConvertFileInput) (string, error) {
	inputPath, err := filepath.Abs(in.FilePath)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(inputPath) // #nosec G304 -- path is supplied by the tool caller
	if err != nil {
		return "", err
	}

	result, err := t.conv.ConvertWith(string(data), converter.ConvertOptions{Pretty: in.Pretty})
	if err != nil {
		return "", err
	}
	t.logCall("convert_file", len(data), result)

	if in.OutputPath == "" {
		return result.Content, nil
	}

	outputPath, err := filepath.Abs(in.OutputPath)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputPath, []byte(result.Content), 0o644); err != nil { // #nosec G306 -- converted output is not sensitive
		return "", err
	}
	return fmt.Sprintf("Successfully converted %s to %s", in.FilePath, in.OutputPath), nil
}

func (t *tools) logCall(tool string, inputBytes int, result converter.Result) {
	t.logger.Info("tool call",
		"tool", tool,
		"input_bytes", inputBytes,
		"output_bytes", len(result.Content),
		"warnings", len(result.Warnings),
	)
	for _, w := range result.Warnings {
		t.logger.Warn("conversion warning", "tool", tool, "type", w.Type, "node", w.NodeType, "line", w.Line)
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	result := textResult(fmt.Sprintf(format, args...))
	result.IsError = true
	return result
}
