package renderer

import (
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/rgonek/markwp/tokenstream"
)

const (
	protocolOpen  = "[[GUTENBERG:"
	protocolClose = "[[/GUTENBERG:"
)

// renderHTMLBlock passes existing block markup through and wraps any other
// raw HTML in a custom HTML block.
func (s *state) renderHTMLBlock(tok tokenstream.Token) {
	if isBlockMarkup(tok.Content) {
		s.out.WriteString(tok.Content)
		return
	}
	s.block("html", nil, tok.Content)
}

// isBlockMarkup reports whether raw HTML is already Gutenberg output: it
// starts with a block comment, or carries placeholder protocol markers.
func isBlockMarkup(raw string) bool {
	if strings.Contains(raw, protocolOpen) || strings.Contains(raw, protocolClose) {
		return true
	}

	z := xhtml.NewTokenizer(strings.NewReader(raw))
	for {
		switch z.Next() {
		case xhtml.TextToken:
			if strings.TrimSpace(string(z.Text())) != "" {
				return false
			}
		case xhtml.CommentToken:
			data := strings.TrimSpace(string(z.Text()))
			return strings.HasPrefix(data, "wp:") || strings.HasPrefix(data, "/wp:")
		default:
			return false
		}
	}
}
