package customblock

import (
	"strings"

	"github.com/rgonek/markwp/gutenberg"
)

// blockNames maps fence names to block names. Other names map to themselves.
var blockNames = map[string]string{
	"columns":      "columns",
	"column":       "column",
	"group":        "group",
	"media-text":   "media-text",
	"cover":        "cover",
	"button":       "buttons",
	"custom-block": "group",
}

type kindRenderer func(content string, attrs *gutenberg.Attrs) string

// kindRenderers is keyed by block name, so ":::buttons" renders like ":::button".
var kindRenderers = map[string]kindRenderer{
	"columns":    divRenderer("wp-block-columns"),
	"column":     divRenderer("wp-block-column"),
	"group":      renderGroup,
	"media-text": renderMediaText,
	"cover":      renderCover,
	"buttons":    renderButtons,
}

// BlockName returns the block name for a fence name and whether the fence
// name is one of the known shorthands.
func BlockName(fenceName string) (string, bool) {
	if name, ok := blockNames[fenceName]; ok {
		return name, true
	}
	return fenceName, false
}

func renderKind(blockName, content string, attrs *gutenberg.Attrs) string {
	render, ok := kindRenderers[blockName]
	if !ok {
		return content
	}
	return render(content, attrs)
}

func divRenderer(class string) kindRenderer {
	return func(content string, _ *gutenberg.Attrs) string {
		return `<div class="` + class + `">` + content + `</div>`
	}
}

func renderGroup(content string, attrs *gutenberg.Attrs) string {
	class := "wp-block-group"
	if className, ok := attrs.Get("className"); ok && className.Truthy() {
		class += " " + className.Text()
	}
	return `<div class="` + class + `">` + content + `</div>`
}

func renderCover(content string, attrs *gutenberg.Attrs) string {
	style := ""
	if background, ok := attrs.Get("background"); ok && background.Truthy() {
		style = ` style="background-image:url(` + background.Text() + `)"`
	}
	return `<div class="wp-block-cover"` + style + ">\n" +
		`<div class="wp-block-cover__inner-container">` + content + "</div>\n" +
		"</div>"
}

// renderMediaText puts the first image on the media side and every
// non-empty line after it on the text side.
func renderMediaText(content string, _ *gutenberg.Attrs) string {
	var figure string
	var text strings.Builder
	found := false

	for _, line := range strings.Split(content, "\n") {
		if !found {
			if match := imagePattern.FindStringSubmatch(line); match != nil && strings.HasPrefix(line, "![") {
				figure = `<figure class="wp-block-media-text__media"><img src="` +
					gutenberg.EscapeHTML(match[2]) + `" alt="` + gutenberg.EscapeHTML(match[1]) + `"></figure>`
				found = true
			}
			continue
		}
		if strings.TrimSpace(line) != "" {
			text.WriteString(line)
			text.WriteByte('\n')
		}
	}

	var sb strings.Builder
	sb.WriteString("<div class=\"wp-block-media-text\">\n")
	if figure != "" {
		sb.WriteString(figure)
		sb.WriteByte('\n')
	}
	sb.WriteString(`<div class="wp-block-media-text__content">`)
	sb.WriteString(strings.TrimSpace(text.String()))
	sb.WriteString("</div>\n</div>")
	return sb.String()
}

func renderButtons(content string, _ *gutenberg.Attrs) string {
	match := linkPattern.FindStringSubmatch(content)
	if match == nil {
		return content
	}
	return gutenberg.ButtonsHTML(match[1], match[2])
}
