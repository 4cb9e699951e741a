package nlp

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reSpaces   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(` *\n+ *`)
)

// CollapseWhitespace squeezes runs of spaces and newlines while keeping
// line structure intact (line-based heuristics depend on it).
func CollapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// Truncate caps s at limit bytes without splitting a multi-byte rune:
// the cut backs up to the nearest rune boundary so the result is
// always valid UTF-8.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// Normalize lowercases and trims a value for case-insensitive comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NonEmptyLines splits text into trimmed, non-empty lines.
func NonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			out = append(out, l)
		}
	}
	return out
}
