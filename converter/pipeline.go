package converter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rgonek/markwp/customblock"
	"github.com/rgonek/markwp/gutenberg"
	"github.com/rgonek/markwp/renderer"
	"github.com/rgonek/markwp/tokenstream"
)

var (
	buttonPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)\{\.wp-block-button\}`)
	blankRuns     = regexp.MustCompile(`\n{3,}`)
)

func (s *state) convert(markdown string) (Result, error) {
	s.logDebug("starting conversion", "bytes", len(markdown), "pretty", s.pretty)

	pre := customblock.Process(markdown)
	s.warnings = append(s.warnings, pre.Warnings...)

	lines, err := s.convertLines(strings.Split(expandButtons(pre.Markdown), "\n"))
	if err != nil {
		return Result{}, err
	}

	content := blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	content = strings.TrimSpace(content)

	for _, w := range s.warnings {
		s.logDebug("conversion warning",
			"type", w.Type, "node", w.NodeType, "line", w.Line, "message", w.Message)
	}
	s.logDebug("conversion complete", "bytes", len(content), "warnings", len(s.warnings))

	return Result{Content: content, Warnings: s.warnings}, nil
}

// expandButtons rewrites [text](href){.wp-block-button} into a buttons block
// on lines of its own, splitting any surrounding text away from it.
func expandButtons(text string) string {
	return buttonPattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := buttonPattern.FindStringSubmatch(match)
		block := gutenberg.Block{Name: "buttons", HTML: gutenberg.ButtonsHTML(parts[1], parts[2])}
		return block.RenderStandalone()
	})
}

// convertLines passes block markup through untouched and renders the
// Markdown between it. A region that starts with a block comment lasts
// until every block opened in it has been closed again.
func (s *state) convertLines(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	depth := 0

	for index := 0; index < len(lines); index++ {
		line := lines[index]
		trimmed := strings.TrimSpace(line)

		switch {
		case depth > 0:
			depth = max(depth+gutenberg.CommentBalance(line), 0)
			out = append(out, line)
		case gutenberg.IsOpenComment(trimmed):
			depth = max(gutenberg.CommentBalance(line), 0)
			out = append(out, line)
		case trimmed == "", gutenberg.IsCloseComment(trimmed):
			out = append(out, line)
		default:
			end := batchEnd(lines, index)
			rendered, err := s.renderBatch(strings.Join(lines[index:end], "\n"))
			if err != nil {
				return nil, err
			}
			out = append(out, rendered)
			index = end - 1
		}
	}

	return out, nil
}

// batchEnd returns the index just past the Markdown batch starting at
// start. A batch runs until a blank line, a block comment or a level-2
// heading.
func batchEnd(lines []string, start int) int {
	end := start + 1
	for end < len(lines) {
		next := strings.TrimSpace(lines[end])
		if next == "" || gutenberg.IsOpenComment(next) || strings.HasPrefix(next, "## ") {
			break
		}
		end++
	}
	return end
}

func (s *state) renderBatch(batch string) (string, error) {
	tokens, err := s.tokenizer.Tokenize(batch)
	if err != nil {
		return "", fmt.Errorf("failed to tokenize markdown: %w", err)
	}
	s.logDebug("tokenized batch", "kinds", tokenstream.Kinds(tokens))

	html, warnings := renderer.Render(tokens, renderer.Options{Pretty: s.pretty})
	s.warnings = append(s.warnings, warnings...)
	return html, nil
}
