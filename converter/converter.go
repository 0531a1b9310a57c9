// Package converter turns Markdown, extended with ":::name" custom block
// fences, into WordPress Gutenberg block markup.
package converter

import (
	"log/slog"

	"github.com/rgonek/markwp/gutenberg"
	"github.com/rgonek/markwp/tokenstream"
)

// Converter converts Markdown to Gutenberg blocks. It holds no per-call
// state and is safe for concurrent use.
type Converter struct {
	config    Config
	tokenizer tokenstream.Tokenizer
}

type state struct {
	tokenizer tokenstream.Tokenizer
	logger    *slog.Logger
	debug     bool
	pretty    bool
	warnings  []gutenberg.Warning
}

// ConvertOptions overrides converter settings for a single call.
type ConvertOptions struct {
	Pretty bool
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tokenizer, err := tokenstream.New(cfg.Tokenizer, cfg.tokenizerOptions())
	if err != nil {
		return nil, err
	}

	return &Converter{
		config:    cfg,
		tokenizer: tokenizer,
	}, nil
}

// Convert takes a Markdown document and returns Gutenberg block markup.
func (c *Converter) Convert(markdown string) (Result, error) {
	return c.ConvertWith(markdown, ConvertOptions{Pretty: c.config.Pretty})
}

// ConvertWith is Convert with per-call options.
func (c *Converter) ConvertWith(markdown string, opts ConvertOptions) (Result, error) {
	s := &state{
		tokenizer: c.tokenizer,
		logger:    c.config.Logger,
		debug:     c.config.Debug,
		pretty:    opts.Pretty,
	}
	return s.convert(markdown)
}

// Convert converts markdown with a one-off Converter built from config.
func Convert(markdown string, config Config) (string, error) {
	conv, err := New(config)
	if err != nil {
		return "", err
	}
	result, err := conv.Convert(markdown)
	if err != nil {
		return "", err
	}
	return result.Content, nil
}

func (s *state) logDebug(msg string, args ...any) {
	if s.debug {
		s.logger.Debug(msg, args...)
	}
}
