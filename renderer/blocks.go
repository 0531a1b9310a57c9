package renderer

import (
	"strconv"
	"strings"

	"github.com/rgonek/markwp/gutenberg"
	"github.com/rgonek/markwp/tokenstream"
)

// inlineOf returns the first inline token among a container's children.
func inlineOf(inner []tokenstream.Token) (tokenstream.Token, bool) {
	for _, tok := range inner {
		if tok.Kind == tokenstream.KindInline {
			return tok, true
		}
	}
	return tokenstream.Token{}, false
}

// renderHeading emits a heading block. Images found in the heading are
// emitted as blocks of their own right after it.
func (s *state) renderHeading(open tokenstream.Token, inner []tokenstream.Token) {
	level := open.Level
	if level < 1 || level > 6 {
		level = 1
	}

	var images []string
	content := ""
	if inline, ok := inlineOf(inner); ok {
		content = s.renderInline(inline.Children, &images)
		if len(images) > 0 {
			content = strings.TrimSpace(strings.ReplaceAll(content, imagePlaceholder, ""))
		}
	}

	attrs := gutenberg.NewAttrs()
	attrs.Set("level", gutenberg.Number(float64(level)))
	tag := "h" + strconv.Itoa(level)
	s.block("heading", attrs, "<"+tag+">"+content+"</"+tag+">")

	for _, image := range images {
		s.out.WriteString(image)
	}
}

// renderParagraph emits a paragraph, split around any images it contains.
func (s *state) renderParagraph(inner []tokenstream.Token) {
	inline, ok := inlineOf(inner)
	if !ok {
		return
	}

	var images []string
	content := s.renderInline(inline.Children, &images)
	for _, part := range splitParagraph(content, images, s.pretty) {
		s.out.WriteString(part)
	}
}

// splitParagraph turns rendered paragraph content into blocks. Each
// placeholder in content stands for the image at the same position in
// images; the text between placeholders becomes its own paragraph, trimmed,
// and empty runs are skipped.
func splitParagraph(content string, images []string, pretty bool) []string {
	if len(images) == 0 || !strings.Contains(content, imagePlaceholder) {
		if strings.TrimSpace(content) == "" {
			return nil
		}
		return []string{gutenberg.Wrap("paragraph", nil, "<p>"+content+"</p>", pretty)}
	}

	var out []string
	for idx, part := range strings.Split(content, imagePlaceholder) {
		if text := strings.TrimSpace(part); text != "" {
			out = append(out, gutenberg.Wrap("paragraph", nil, "<p>"+text+"</p>", pretty))
		}
		if idx < len(images) {
			out = append(out, images[idx])
		}
	}
	return out
}

func (s *state) renderBlockquote(inner []tokenstream.Token) {
	paragraphs := s.quoteParagraphs(inner, nil)
	var sb strings.Builder
	sb.WriteString(`<blockquote class="wp-block-quote">`)
	if len(paragraphs) > 0 {
		sb.WriteString("<p>" + strings.Join(paragraphs, "</p><p>") + "</p>")
	}
	sb.WriteString("</blockquote>")
	s.block("quote", nil, sb.String())
}

// quoteParagraphs collects the inline content of every paragraph in a
// quote. Nested quotes are flattened into the outer one.
func (s *state) quoteParagraphs(inner []tokenstream.Token, out []string) []string {
	cur := tokenstream.NewCursor(inner)
	for !cur.Done() {
		tok := cur.Current()
		switch tok.Kind {
		case tokenstream.KindParagraphOpen:
			if inline, ok := inlineOf(cur.Enclosed()); ok {
				out = append(out, s.renderInline(inline.Children, nil))
			}
		case tokenstream.KindBlockquoteOpen:
			out = s.quoteParagraphs(cur.Enclosed(), out)
		default:
			s.drop(tok, "quote")
		}
		cur.Skip()
	}
	return out
}

func (s *state) renderCode(tok tokenstream.Token) {
	class := ""
	if tok.Kind == tokenstream.KindFence {
		if lang := tok.Language(); lang != "" {
			class = ` class="language-` + gutenberg.EscapeHTML(lang) + `"`
		}
	}
	s.block("code", nil,
		`<pre class="wp-block-code"><code`+class+`>`+gutenberg.EscapeHTML(tok.Content)+`</code></pre>`)
}
