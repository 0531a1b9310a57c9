package tokenstream

import (
	"fmt"
	"strings"
)

// Tokenizer turns a Markdown document into a well-nested token sequence.
// Implementations must be safe for concurrent use.
type Tokenizer interface {
	Tokenize(markdown string) ([]Token, error)
}

// Backend names a Tokenizer implementation.
type Backend string

const (
	BackendGoldmark   Backend = "goldmark"
	BackendCommonMark Backend = "commonmark"
)

// Options tune the Markdown dialect shared by every backend.
type Options struct {
	// Typographer replaces straight quotes, dashes and ellipses with
	// their typographic forms.
	Typographer bool
	// Linkify turns bare URLs into links.
	Linkify bool
}

// New returns the tokenizer for backend.
func New(backend Backend, opts Options) (Tokenizer, error) {
	switch backend {
	case BackendGoldmark, "":
		return NewGoldmark(opts), nil
	case BackendCommonMark:
		return NewCommonMark(opts), nil
	default:
		return nil, fmt.Errorf("unknown tokenizer backend %q", backend)
	}
}

// codeContent ends non-empty code with a newline, the way a closed fence
// does, so an unclosed fence at the end of input reads the same on every
// backend.
func codeContent(content string) string {
	if content != "" && !strings.HasSuffix(content, "\n") {
		return content + "\n"
	}
	return content
}
