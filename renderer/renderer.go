// Package renderer turns a Markdown token stream into serialized Gutenberg
// blocks.
//
// Every token kind has a handler. Tokens whose content a block cannot hold
// are dropped and reported as warnings rather than silently lost.
package renderer

import (
	"fmt"
	"strings"

	"github.com/rgonek/markwp/gutenberg"
	"github.com/rgonek/markwp/tokenstream"
)

// Options controls block serialization.
type Options struct {
	// Pretty puts block comments and markup on separate lines.
	Pretty bool
}

// Render serializes tokens as Gutenberg blocks. The returned warnings list
// every token that could not be represented.
func Render(tokens []tokenstream.Token, opts Options) (string, []gutenberg.Warning) {
	s := &state{pretty: opts.Pretty}
	s.renderBlocks(tokens)
	return s.out.String(), s.warnings
}

type state struct {
	pretty   bool
	out      strings.Builder
	warnings []gutenberg.Warning
}

func (s *state) addWarning(warnType gutenberg.WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, gutenberg.Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}

// drop records a token that has no place in the current context.
func (s *state) drop(tok tokenstream.Token, context string) {
	s.addWarning(gutenberg.WarningDroppedToken, tok.Kind.String(),
		fmt.Sprintf("%s dropped inside %s", tok.Kind, context))
}

func (s *state) block(name string, attrs *gutenberg.Attrs, html string) {
	s.out.WriteString(gutenberg.Wrap(name, attrs, html, s.pretty))
}

func (s *state) renderBlocks(tokens []tokenstream.Token) {
	cur := tokenstream.NewCursor(tokens)
	for !cur.Done() {
		tok := cur.Current()
		switch tok.Kind {
		case tokenstream.KindHeadingOpen:
			s.renderHeading(tok, cur.Enclosed())
		case tokenstream.KindParagraphOpen:
			s.renderParagraph(cur.Enclosed())
		case tokenstream.KindBulletListOpen, tokenstream.KindOrderedListOpen:
			s.renderList(tok, cur.Enclosed())
		case tokenstream.KindBlockquoteOpen:
			s.renderBlockquote(cur.Enclosed())
		case tokenstream.KindTableOpen:
			s.renderTable(cur.Enclosed())
		case tokenstream.KindCodeBlock, tokenstream.KindFence:
			s.renderCode(tok)
		case tokenstream.KindHr:
			s.block("separator", nil, `<hr class="wp-block-separator has-alpha-channel-opacity"/>`)
		case tokenstream.KindHTMLBlock:
			s.renderHTMLBlock(tok)
		case tokenstream.KindInline:
			// An inline run outside any container reads as a paragraph.
			s.renderParagraph([]tokenstream.Token{tok})
		case tokenstream.KindHeadingClose, tokenstream.KindParagraphClose,
			tokenstream.KindBulletListClose, tokenstream.KindOrderedListClose,
			tokenstream.KindListItemClose, tokenstream.KindBlockquoteClose,
			tokenstream.KindTableClose, tokenstream.KindTheadClose, tokenstream.KindTbodyClose,
			tokenstream.KindTrClose, tokenstream.KindThClose, tokenstream.KindTdClose:
			// stray close
		case tokenstream.KindListItemOpen, tokenstream.KindTheadOpen, tokenstream.KindTbodyOpen,
			tokenstream.KindTrOpen, tokenstream.KindThOpen, tokenstream.KindTdOpen:
			s.drop(tok, "document")
		default:
			// Inline kinds never appear at block level in a well-formed stream.
			s.drop(tok, "document")
		}
		cur.Skip()
	}
}
