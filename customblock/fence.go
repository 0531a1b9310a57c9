package customblock

import (
	"strings"
)

const fenceMarker = ":::"

// opener is a parsed ":::name{attrs}" line.
type opener struct {
	name     string
	rawAttrs string
}

// parseOpener recognizes ":::name", ":::name{...}" and ":::name {...}" at the
// start of a line. Trailing whitespace is allowed; anything else is not.
func parseOpener(line string) (opener, bool) {
	if !strings.HasPrefix(line, fenceMarker) {
		return opener{}, false
	}
	rest := trimLineEnding(line[len(fenceMarker):])

	nameEnd := 0
	for nameEnd < len(rest) && isNameByte(rest[nameEnd]) {
		nameEnd++
	}
	if nameEnd == 0 {
		return opener{}, false
	}
	open := opener{name: rest[:nameEnd]}

	tail := strings.TrimLeft(rest[nameEnd:], " \t")
	if tail == "" {
		return open, true
	}
	if tail[0] != '{' {
		return opener{}, false
	}

	raw, end, ok := readAttrBlock(tail, 0)
	if !ok {
		// Unbalanced quotes: fall back to the first closing brace.
		closing := strings.IndexByte(tail, '}')
		if closing < 0 {
			return opener{}, false
		}
		raw, end = tail[1:closing], closing+1
	}
	if strings.TrimSpace(tail[end:]) != "" {
		return opener{}, false
	}
	open.rawAttrs = raw
	return open, true
}

// isCloser reports whether line is a bare ":::" terminator.
func isCloser(line string) bool {
	return strings.HasPrefix(line, fenceMarker) && strings.TrimSpace(line[len(fenceMarker):]) == ""
}

func isFenceLine(line string) bool {
	return strings.HasPrefix(line, fenceMarker)
}

func isNameByte(ch byte) bool {
	return ch == '_' || ch == '-' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

// findCloser returns the index of the line closing the block opened at
// lines[start], counting nested openers, or -1 when the block never closes.
func findCloser(lines []string, start int) int {
	openDepth := 1
	for idx := start + 1; idx < len(lines); idx++ {
		line := lines[idx]
		if _, ok := parseOpener(line); ok {
			openDepth++
			continue
		}
		if isCloser(line) {
			openDepth--
			if openDepth == 0 {
				return idx
			}
		}
	}
	return -1
}

func trimLineEnding(line string) string {
	return strings.TrimRight(line, "\r")
}
