package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rgonek/markwp/converter"
)

// convert converts the input argument and writes the result to the output
// path, or to stdout when no output path is given.
func convert(conv *converter.Converter, flags *cliFlags, args []string, stdout io.Writer, logger *slog.Logger) error {
	markdown := args[0]
	if flags.file {
		data, err := os.ReadFile(args[0]) // #nosec G304 -- input path is user-provided
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		markdown = string(data)
	}

	result, err := conv.Convert(markdown)
	if err != nil {
		return err
	}

	if len(args) < 2 {
		_, err := fmt.Fprintln(stdout, result.Content)
		return err
	}

	outputPath, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(result.Content), 0o644); err != nil { // #nosec G306 -- output is a public document
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Debug("output written", "path", outputPath)
	return nil
}
