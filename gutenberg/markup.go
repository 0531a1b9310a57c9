package gutenberg

import (
	"regexp"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes text for use in element content and attribute values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var commentPattern = regexp.MustCompile(`<!-- (/?)wp:[\w/-]+.*?(/?)-->`)

// CommentBalance returns the number of block comments a line opens minus the
// number it closes. Self-closing comments (<!-- wp:name /-->) count as neither.
func CommentBalance(line string) int {
	balance := 0
	for _, match := range commentPattern.FindAllStringSubmatch(line, -1) {
		switch {
		case match[1] == "/":
			balance--
		case match[2] == "/":
		default:
			balance++
		}
	}
	return balance
}
