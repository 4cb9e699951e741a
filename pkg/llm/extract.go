package llm

import (
	"regexp"
	"strings"
)

var reFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls a JSON payload out of model output. The first fenced
// code block wins; otherwise the greedy first-{ to last-} span; otherwise
// the input comes back unchanged. Best-effort only: the result can still
// be invalid JSON and callers must handle parse failures.
func ExtractJSON(text string) string {
	if m := reFence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	i := strings.Index(text, "{")
	if i >= 0 {
		if j := strings.LastIndex(text, "}"); j > i {
			return text[i : j+1]
		}
	}
	return text
}
