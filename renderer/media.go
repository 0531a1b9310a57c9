package renderer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rgonek/markwp/gutenberg"
	"github.com/rgonek/markwp/tokenstream"
)

// imageIDPattern finds the attachment id WordPress puts at the end of
// uploaded file names, as in photo-123.jpg.
var imageIDPattern = regexp.MustCompile(`(?:^|\D)(\d+)\.[^.]+$`)

// imageID returns the attachment id encoded in an image URL.
func imageID(src string) (int64, bool) {
	match := imageIDPattern.FindStringSubmatch(src)
	if match == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// renderImage returns a complete image block.
func (s *state) renderImage(tok tokenstream.Token) string {
	attrs := gutenberg.NewAttrs()
	attrs.Set("url", gutenberg.String(tok.Src))
	id, hasID := imageID(tok.Src)
	if hasID {
		attrs.Set("id", gutenberg.Number(float64(id)))
	}
	attrs.Set("sizeSlug", gutenberg.String("large"))
	if tok.Alt != "" {
		attrs.Set("alt", gutenberg.String(tok.Alt))
	}
	if tok.Title != "" {
		attrs.Set("caption", gutenberg.String(tok.Title))
	}

	var sb strings.Builder
	sb.WriteString(`<figure class="wp-block-image size-large">`)
	sb.WriteString(`<img src="` + gutenberg.EscapeHTML(tok.Src) + `" alt="` + gutenberg.EscapeHTML(tok.Alt) + `"`)
	if hasID && id != 0 {
		sb.WriteString(` class="wp-image-` + strconv.FormatInt(id, 10) + `"`)
	}
	if tok.Title != "" {
		sb.WriteString(` title="` + gutenberg.EscapeHTML(tok.Title) + `"`)
	}
	sb.WriteString(">")
	if tok.Title != "" {
		sb.WriteString("<figcaption>" + gutenberg.EscapeHTML(tok.Title) + "</figcaption>")
	}
	sb.WriteString("</figure>")

	return gutenberg.Wrap("image", attrs, sb.String(), s.pretty)
}
