package converter

import (
	"fmt"
	"log/slog"

	"github.com/rgonek/markwp/tokenstream"
)

// Config configures Markdown to Gutenberg conversion behavior.
type Config struct {
	// Pretty puts block comments and block markup on separate lines.
	Pretty bool `json:"pretty,omitempty"`
	// Debug logs each conversion stage at debug level.
	Debug bool `json:"debug,omitempty"`
	// Tokenizer selects the Markdown parser. Defaults to goldmark.
	Tokenizer tokenstream.Backend `json:"tokenizer,omitempty"`

	DisableTypographer bool `json:"disableTypographer,omitempty"`
	DisableLinkify     bool `json:"disableLinkify,omitempty"`

	Logger *slog.Logger `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.Tokenizer == "" {
		c.Tokenizer = tokenstream.BackendGoldmark
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.Tokenizer != tokenstream.BackendGoldmark &&
		c.Tokenizer != tokenstream.BackendCommonMark {
		return fmt.Errorf("invalid tokenizer %q", c.Tokenizer)
	}
	return nil
}

func (c Config) tokenizerOptions() tokenstream.Options {
	return tokenstream.Options{
		Typographer: !c.DisableTypographer,
		Linkify:     !c.DisableLinkify,
	}
}
