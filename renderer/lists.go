package renderer

import (
	"strings"

	"github.com/rgonek/markwp/gutenberg"
	"github.com/rgonek/markwp/tokenstream"
)

func (s *state) renderList(open tokenstream.Token, inner []tokenstream.Token) {
	ordered := open.Kind == tokenstream.KindOrderedListOpen

	var attrs *gutenberg.Attrs
	if ordered {
		attrs = gutenberg.NewAttrs()
		attrs.Set("ordered", gutenberg.Bool(true))
	}
	s.block("list", attrs, s.listHTML(ordered, inner))
}

// listHTML renders a list element. Nested lists become nested elements of
// the same block.
func (s *state) listHTML(ordered bool, inner []tokenstream.Token) string {
	tag := "ul"
	if ordered {
		tag = "ol"
	}

	var sb strings.Builder
	sb.WriteString("<" + tag + ">")
	cur := tokenstream.NewCursor(inner)
	for !cur.Done() {
		tok := cur.Current()
		if tok.Kind == tokenstream.KindListItemOpen {
			sb.WriteString("<li>" + s.listItemHTML(cur.Enclosed()) + "</li>")
		} else {
			s.drop(tok, "list")
		}
		cur.Skip()
	}
	sb.WriteString("</" + tag + ">")
	return sb.String()
}

// listItemHTML renders the body of a list item. Images inside an item are
// rendered in place rather than split out.
func (s *state) listItemHTML(inner []tokenstream.Token) string {
	var sb strings.Builder
	cur := tokenstream.NewCursor(inner)
	for !cur.Done() {
		tok := cur.Current()
		switch tok.Kind {
		case tokenstream.KindParagraphOpen:
			if inline, ok := inlineOf(cur.Enclosed()); ok {
				sb.WriteString(s.renderInline(inline.Children, nil))
			}
		case tokenstream.KindInline:
			sb.WriteString(s.renderInline(tok.Children, nil))
		case tokenstream.KindBulletListOpen, tokenstream.KindOrderedListOpen:
			sb.WriteString(s.listHTML(tok.Kind == tokenstream.KindOrderedListOpen, cur.Enclosed()))
		default:
			s.drop(tok, "list item")
		}
		cur.Skip()
	}
	return sb.String()
}
