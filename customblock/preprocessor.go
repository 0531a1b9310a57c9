// Package customblock rewrites ":::name{attrs} ... :::" fenced regions into
// block markup before the rest of a document is parsed as Markdown.
package customblock

import (
	"fmt"
	"strings"

	"github.com/rgonek/markwp/gutenberg"
)

// MaxNestingDepth is the tallest stack of nested blocks that is converted.
// Taller stacks and every block around them stay as literal text.
const MaxNestingDepth = 10

// Result holds the rewritten text and any fences that were left unconverted.
type Result struct {
	Markdown string
	Warnings []gutenberg.Warning
}

// Process converts every custom block fence in markdown. Malformed fences
// never fail: they are left in place and reported as warnings.
func Process(markdown string) Result {
	if !strings.Contains(markdown, fenceMarker) {
		return Result{Markdown: markdown}
	}

	s := &scanner{}
	lines, _ := s.resolve(strings.Split(markdown, "\n"), 1)
	return Result{
		Markdown: strings.Join(lines, "\n"),
		Warnings: s.warnings,
	}
}

type scanner struct {
	warnings []gutenberg.Warning
}

// resolve converts the blocks found in lines, innermost first, and returns
// the resulting lines together with the height of the tallest block seen.
func (s *scanner) resolve(lines []string, firstLine int) ([]string, int) {
	out := make([]string, 0, len(lines))
	height := 0

	for index := 0; index < len(lines); {
		open, ok := parseOpener(lines[index])
		if !ok {
			out = append(out, lines[index])
			index++
			continue
		}

		lineNo := firstLine + index
		end := findCloser(lines, index)
		if end < 0 {
			s.addWarning(gutenberg.WarningUnclosedFence, open.name, lineNo,
				fmt.Sprintf("custom block %q has no closing fence", open.name))
			out = append(out, lines[index])
			index++
			continue
		}

		body, childHeight := s.resolve(lines[index+1:end], lineNo+1)
		blockHeight := childHeight + 1
		height = max(height, blockHeight)

		switch {
		case blockHeight > MaxNestingDepth:
			if blockHeight == MaxNestingDepth+1 {
				s.addWarning(gutenberg.WarningNestingLimit, open.name, lineNo,
					fmt.Sprintf("custom block %q nests more than %d levels deep", open.name, MaxNestingDepth))
			}
			out = appendLiteral(out, lines[index], body, lines[end])
		case hasFenceLine(body):
			s.addWarning(gutenberg.WarningUnresolvedFence, open.name, lineNo,
				fmt.Sprintf("custom block %q contains an unresolved fence", open.name))
			out = appendLiteral(out, lines[index], body, lines[end])
		default:
			out = append(out, s.convert(open, body, lineNo))
		}
		index = end + 1
	}

	return out, height
}

func (s *scanner) convert(open opener, body []string, lineNo int) string {
	attrs := ParseAttributes(open.rawAttrs)
	blockName, known := BlockName(open.name)
	if !known {
		s.addWarning(gutenberg.WarningUnknownBlock, open.name, lineNo,
			fmt.Sprintf("custom block %q has no shorthand, emitted as wp:%s", open.name, blockName))
	}

	content := renderContent(strings.TrimSpace(strings.Join(body, "\n")))
	html := renderKind(blockName, content, attrs)
	attrs.Delete("background")

	return gutenberg.Block{Name: blockName, Attrs: attrs, HTML: html}.RenderStandalone()
}

func (s *scanner) addWarning(warnType gutenberg.WarningType, nodeType string, line int, message string) {
	s.warnings = append(s.warnings, gutenberg.Warning{
		Type:     warnType,
		NodeType: nodeType,
		Line:     line,
		Message:  message,
	})
}

func appendLiteral(out []string, openLine string, body []string, closeLine string) []string {
	out = append(out, openLine)
	out = append(out, body...)
	return append(out, closeLine)
}

func hasFenceLine(lines []string) bool {
	for _, line := range lines {
		if isFenceLine(line) {
			return true
		}
	}
	return false
}
