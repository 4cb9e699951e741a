package nlp

import "strings"

// SkillVocabulary is the fixed list scanned against posting and resume
// text. Scan output follows this order. The scan is a plain substring
// check, so short names also hit their longer variants ("Java" matches
// inside "JavaScript"); that looseness is accepted behavior.
var SkillVocabulary = []string{
	"JavaScript",
	"TypeScript",
	"React",
	"Angular",
	"Vue",
	"Node.js",
	"Python",
	"Java",
	"C++",
	"C#",
	"Go",
	"Rust",
	"Ruby",
	"PHP",
	"Swift",
	"Kotlin",
	"SQL",
	"NoSQL",
	"MongoDB",
	"PostgreSQL",
	"MySQL",
	"Redis",
	"AWS",
	"Azure",
	"GCP",
	"Docker",
	"Kubernetes",
	"Git",
	"CI/CD",
	"Agile",
	"Scrum",
	"REST API",
	"GraphQL",
	"HTML",
	"CSS",
}

// ScanSkills finds vocabulary skills mentioned anywhere in the text.
// Case-insensitive, deduplicated, ordered by the vocabulary.
func ScanSkills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{}, len(SkillVocabulary))
	var found []string
	for _, skill := range SkillVocabulary {
		if !strings.Contains(lower, strings.ToLower(skill)) {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		found = append(found, skill)
	}
	return found
}
