package nlp

import (
	"regexp"
	"strings"
)

var (
	reScript = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	reStyle  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	reBreak  = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</li>`)
	reTag    = regexp.MustCompile(`<[^>]+>`)
)

// entityDecoder handles the small set of named entities that survive in
// job posting markup. Single pass, so double-encoded text stays encoded.
var entityDecoder = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// ExtractText turns raw HTML into plain text. It is not a parser:
// script/style blocks are dropped, break-like tags become newlines,
// every other tag is removed by textual substitution, and whitespace is
// collapsed. Always returns a string, possibly empty.
func ExtractText(html string) string {
	s := reScript.ReplaceAllString(html, "")
	s = reStyle.ReplaceAllString(s, "")
	s = reBreak.ReplaceAllString(s, "\n")
	s = reTag.ReplaceAllString(s, " ")
	s = entityDecoder.Replace(s)
	return CollapseWhitespace(s)
}
