package sketch

import (
	"regexp"
	"strings"
)

var lineCommentPrefix = regexp.MustCompile(`^\s*//\s?`)

// leadingComment extracts the comment block at the very top of the sketch,
// if any, with the comment delimiters stripped. It is a lookahead only; the
// commented lines are still visible to the rest of the analyzer.
func leadingComment(src string) string {
	i := 0
	for i < len(src) && (src[i] == ' ' || src[i] == '\t' || src[i] == '\r' || src[i] == '\n') {
		i++
	}
	if i >= len(src) {
		return ""
	}

	if strings.HasPrefix(src[i:], "/*") {
		body := src[i+2:]
		if end := strings.Index(body, "*/"); end >= 0 {
			body = body[:end]
		}
		return strings.TrimSpace(body)
	}

	if strings.HasPrefix(src[i:], "//") {
		var lines []string
		rest := src[i:]
		for rest != "" {
			line := rest
			if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
				line, rest = rest[:nl], rest[nl+1:]
			} else {
				rest = ""
			}
			if !strings.HasPrefix(strings.TrimSpace(line), "//") {
				break
			}
			lines = append(lines, strings.TrimRight(lineCommentPrefix.ReplaceAllString(line, ""), " \t\r"))
		}
		return strings.TrimSpace(strings.Join(lines, "\n"))
	}

	return ""
}
