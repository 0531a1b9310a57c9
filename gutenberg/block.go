// Package gutenberg produces the WordPress block-editor comment format:
// HTML fragments delimited by <!-- wp:name {attrs} --> and <!-- /wp:name -->.
package gutenberg

import (
	"strings"
)

const (
	// OpenPrefix starts every block opening comment.
	OpenPrefix = "<!-- wp:"
	// ClosePrefix starts every block closing comment.
	ClosePrefix = "<!-- /wp:"
)

// Block is a single rendered block before serialization.
type Block struct {
	Name  string
	Attrs *Attrs
	HTML  string
}

// Open returns the opening comment. The attrs segment is omitted when attrs is empty.
func (b Block) Open() string {
	var sb strings.Builder
	sb.WriteString(OpenPrefix)
	sb.WriteString(b.Name)
	if b.Attrs.Len() > 0 {
		data, err := b.Attrs.MarshalJSON()
		if err == nil {
			sb.WriteByte(' ')
			sb.Write(data)
		}
	}
	sb.WriteString(" -->")
	return sb.String()
}

// Close returns the closing comment.
func (b Block) Close() string {
	return ClosePrefix + b.Name + " -->"
}

// Render serializes the block. Compact output has no separators at all;
// pretty output puts each part on its own line and ends with a newline.
func (b Block) Render(pretty bool) string {
	if pretty {
		return b.Open() + "\n" + b.HTML + "\n" + b.Close() + "\n"
	}
	return b.Open() + b.HTML + b.Close()
}

// RenderStandalone serializes the block on lines of its own, surrounded by
// newlines, so it survives being spliced into the middle of Markdown text.
func (b Block) RenderStandalone() string {
	return "\n" + b.Open() + "\n" + b.HTML + "\n" + b.Close() + "\n"
}

// Wrap is shorthand for Block{...}.Render.
func Wrap(name string, attrs *Attrs, html string, pretty bool) string {
	return Block{Name: name, Attrs: attrs, HTML: html}.Render(pretty)
}

// ButtonsHTML returns the markup of a buttons block holding a single button.
func ButtonsHTML(text, href string) string {
	return "<div class=\"wp-block-buttons\">\n" +
		"<div class=\"wp-block-button\">\n" +
		"<a class=\"wp-block-button__link\" href=\"" + href + "\">" + text + "</a>\n" +
		"</div>\n" +
		"</div>"
}

// IsOpenComment reports whether a trimmed line starts a block.
func IsOpenComment(line string) bool {
	return strings.HasPrefix(line, OpenPrefix)
}

// IsCloseComment reports whether a trimmed line ends a block.
func IsCloseComment(line string) bool {
	return strings.HasPrefix(line, ClosePrefix)
}
