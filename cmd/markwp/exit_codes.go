package main

import (
	"errors"

	"github.com/rgonek/markwp/internal/config"
)

// Exit codes for the markwp CLI.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Conversion, I/O or server error
	ExitUsage   = 2 // Invalid flags or config
)

// ErrUsage marks command line errors.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInputTooLarge) ||
		errors.Is(err, config.ErrInvalidConfig) {
		return ExitUsage
	}

	return ExitGeneral
}
