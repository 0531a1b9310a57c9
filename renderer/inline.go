package renderer

import (
	"strings"

	"github.com/rgonek/markwp/gutenberg"
	"github.com/rgonek/markwp/tokenstream"
)

// imagePlaceholder marks where an image sat inside paragraph text until the
// paragraph is split.
const imagePlaceholder = "<!-- wp:image-placeholder -->"

var inlineTags = map[tokenstream.Kind]string{
	tokenstream.KindSoftbreak:          "\n",
	tokenstream.KindHardbreak:          "<br/>",
	tokenstream.KindStrongOpen:         "<strong>",
	tokenstream.KindStrongClose:        "</strong>",
	tokenstream.KindEmOpen:             "<em>",
	tokenstream.KindEmClose:            "</em>",
	tokenstream.KindStrikethroughOpen:  "<s>",
	tokenstream.KindStrikethroughClose: "</s>",
	tokenstream.KindLinkClose:          "</a>",
}

// renderInline renders inline children as HTML. When images is non-nil each
// image is collected there and a placeholder written in its place;
// otherwise images are rendered in place.
func (s *state) renderInline(children []tokenstream.Token, images *[]string) string {
	var sb strings.Builder
	for _, tok := range children {
		if tag, ok := inlineTags[tok.Kind]; ok {
			sb.WriteString(tag)
			continue
		}

		switch tok.Kind {
		case tokenstream.KindText:
			sb.WriteString(gutenberg.EscapeHTML(tok.Content))
		case tokenstream.KindLinkOpen:
			sb.WriteString(`<a href="` + gutenberg.EscapeHTML(tok.Href) + `">`)
		case tokenstream.KindCodeInline:
			sb.WriteString("<code>" + gutenberg.EscapeHTML(tok.Content) + "</code>")
		case tokenstream.KindHTMLInline:
			sb.WriteString(tok.Content)
		case tokenstream.KindImage:
			image := s.renderImage(tok)
			if images == nil {
				sb.WriteString(image)
				continue
			}
			*images = append(*images, image)
			sb.WriteString(imagePlaceholder)
		default:
			s.drop(tok, "inline content")
		}
	}
	return sb.String()
}
