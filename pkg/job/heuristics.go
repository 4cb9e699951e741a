package job

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/careeragentpro/backend/pkg/nlp"
)

// Defaults used when no pattern matches.
const (
	DefaultTitle   = "Untitled Position"
	DefaultCompany = "Unknown Company"
)

const (
	maxTitleLen       = 100
	maxFieldLen       = 120
	maxLineLen        = 200
	maxListEntries    = 10
	maxDescriptionLen = 2000
)

// Field patterns are tried in order; the first capture wins. No
// scoring, no candidate ranking.
var (
	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*(?:job title|position|role)\s*[:\-]\s*(.+)$`),
		regexp.MustCompile(`(?m)^([A-Z][A-Za-z+#/. ]*(?:Engineer|Developer|Manager|Designer|Analyst|Architect|Scientist|Consultant|Lead|Intern)\b[^\n]*)`),
	}

	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*(?:company|employer|organization)\s*[:\-]\s*(.+)$`),
		regexp.MustCompile(`(?im)^\s*about\s+([A-Z][\w&.\- ]{1,40})\s*$`),
	}

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*location\s*[:\-]\s*(.+)$`),
		regexp.MustCompile(`(?i)\b(remote|hybrid|on-?site)\b`),
	}

	salaryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*(?:salary|compensation|pay)(?:\s+range)?\s*[:\-]\s*(.+)$`),
		regexp.MustCompile(`(?i)(\$\s?\d[\d,]*k?\s*(?:-|–|to)\s*\$?\s?\d[\d,]*k?)`),
	}

	jobTypePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*(?:employment|job)\s+type\s*[:\-]\s*(.+)$`),
		regexp.MustCompile(`(?i)\b(full[\s\-]?time|part[\s\-]?time|contract|internship|freelance|temporary)\b`),
	}

	requirementLine    = regexp.MustCompile(`(?i)required|must have|qualifications`)
	responsibilityLine = regexp.MustCompile(`(?i)responsibilities|duties|you will`)
)

// HeuristicExtract builds a posting from plain text using regex
// matching alone. It is intentionally naive and never fails; fields
// that cannot be recognized get fixed defaults.
func HeuristicExtract(text, sourceURL string) Posting {
	p := Posting{
		Title:            firstMatch(titlePatterns, text, DefaultTitle, maxTitleLen),
		Company:          firstMatch(companyPatterns, text, "", maxFieldLen),
		Location:         firstMatch(locationPatterns, text, "", maxFieldLen),
		Salary:           firstMatch(salaryPatterns, text, "", maxFieldLen),
		JobType:          firstMatch(jobTypePatterns, text, "", maxFieldLen),
		Description:      nlp.Truncate(text, maxDescriptionLen),
		Requirements:     matchingLines(text, requirementLine),
		Responsibilities: matchingLines(text, responsibilityLine),
		Skills:           nlp.ScanSkills(text),
		URL:              sourceURL,
		Source:           SourceHeuristic,
	}
	if p.Company == "" {
		p.Company = companyFromURL(sourceURL)
	}
	p.Normalize()
	return p
}

func firstMatch(patterns []*regexp.Regexp, text, fallback string, limit int) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return nlp.Truncate(strings.TrimSpace(m[1]), limit)
		}
	}
	return fallback
}

// matchingLines picks lines that look like list items for the given
// keyword pattern: long enough to carry content, truncated and capped.
func matchingLines(text string, re *regexp.Regexp) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 10 || !re.MatchString(line) {
			continue
		}
		out = append(out, nlp.Truncate(line, maxLineLen))
		if len(out) == maxListEntries {
			break
		}
	}
	return out
}

// companyFromURL guesses the company from the host name: strip the
// www prefix, take the first label, capitalize it.
func companyFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return DefaultCompany
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return DefaultCompany
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

