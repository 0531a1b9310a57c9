package customblock

import (
	"regexp"
	"strings"
)

var (
	heading3Pattern = regexp.MustCompile(`(?m)^### (.+)$`)
	heading2Pattern = regexp.MustCompile(`(?m)^## (.+)$`)
	heading1Pattern = regexp.MustCompile(`(?m)^# (.+)$`)
	boldPattern     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern   = regexp.MustCompile(`\*([^*]+)\*`)
	codePattern     = regexp.MustCompile("`([^`]+)`")
	imagePattern    = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// renderContent turns block content into basic HTML: headings 1-3, bold,
// italic, inline code and a paragraph around every line that is not already
// markup or an image. Content from nested blocks passes through unchanged.
func renderContent(content string) string {
	html := heading3Pattern.ReplaceAllString(content, "<h3>$1</h3>")
	html = heading2Pattern.ReplaceAllString(html, "<h2>$1</h2>")
	html = heading1Pattern.ReplaceAllString(html, "<h1>$1</h1>")
	html = boldPattern.ReplaceAllString(html, "<strong>$1</strong>")
	html = italicPattern.ReplaceAllString(html, "<em>$1</em>")
	html = codePattern.ReplaceAllString(html, "<code>$1</code>")

	lines := strings.Split(html, "\n")
	for idx, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "<") || strings.HasPrefix(trimmed, "![") {
			continue
		}
		lines[idx] = "<p>" + trimmed + "</p>"
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
