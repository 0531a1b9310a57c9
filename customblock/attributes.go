package customblock

import (
	"regexp"
	"strings"

	"github.com/rgonek/markwp/gutenberg"
)

var (
	singleQuotedAttrPattern = regexp.MustCompile(`(\w+)='([^']*)'`)
	doubleQuotedAttrPattern = regexp.MustCompile(`(\w+)="([^"]*)"`)
	quotedSpanPattern       = regexp.MustCompile(`["'][^"']*["']`)
	classShorthandPattern   = regexp.MustCompile(`\.([\w-]+)`)
)

// ParseAttributes parses the inside of a {...} attribute block.
//
// Single-quoted values are decoded as JSON when they parse and kept as literal
// strings otherwise. Double-quoted values are always strings and overwrite a
// single-quoted value of the same key. Dot-prefixed tokens outside quotes are
// appended to className.
func ParseAttributes(raw string) *gutenberg.Attrs {
	attrs := gutenberg.NewAttrs()
	if raw == "" {
		return attrs
	}

	for _, match := range singleQuotedAttrPattern.FindAllStringSubmatch(raw, -1) {
		value, err := gutenberg.ParseJSON(match[2])
		if err != nil {
			value = gutenberg.String(match[2])
		}
		attrs.Set(match[1], value)
	}

	for _, match := range doubleQuotedAttrPattern.FindAllStringSubmatch(raw, -1) {
		attrs.Set(match[1], gutenberg.String(match[2]))
	}

	classes := classShorthands(raw)
	if len(classes) > 0 {
		joined := strings.Join(classes, " ")
		if existing, ok := attrs.Get("className"); ok && existing.Truthy() {
			joined = existing.Text() + " " + joined
		}
		attrs.Set("className", gutenberg.String(joined))
	}

	return attrs
}

func classShorthands(raw string) []string {
	unquoted := quotedSpanPattern.ReplaceAllString(raw, "")
	matches := classShorthandPattern.FindAllStringSubmatch(unquoted, -1)
	if len(matches) == 0 {
		return nil
	}
	classes := make([]string, 0, len(matches))
	for _, match := range matches {
		classes = append(classes, match[1])
	}
	return classes
}

// readAttrBlock reads a {...} block starting at line[start], skipping braces
// inside quoted values. It returns the inner text and the index after '}'.
func readAttrBlock(line string, start int) (string, int, bool) {
	if start < 0 || start >= len(line) || line[start] != '{' {
		return "", 0, false
	}

	var quote byte
	escaped := false
	for idx := start + 1; idx < len(line); idx++ {
		ch := line[idx]
		if quote != 0 {
			if escaped {
				escaped = false
				continue
			}
			if ch == '\\' {
				escaped = true
				continue
			}
			if ch == quote {
				quote = 0
			}
			continue
		}
		if ch == '"' || ch == '\'' {
			quote = ch
			continue
		}
		if ch == '}' {
			return line[start+1 : idx], idx + 1, true
		}
	}

	return "", 0, false
}
