// Package bullet validates resume achievement bullets against the
// six-point structure (action, context, method, result, impact,
// outcome) and the quality bar that goes with it: a tight length
// window, quantified results and strong verbs.
package bullet

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Length window for an assembled bullet, in characters.
const (
	MinChars   = 240
	MaxChars   = 260
	IdealChars = 250
)

// passScore is the quality floor a bullet must clear to be valid.
const passScore = 70

// SixPoint is one achievement bullet split into its six parts.
type SixPoint struct {
	Action  string `json:"action"`
	Context string `json:"context"`
	Method  string `json:"method"`
	Result  string `json:"result"`
	Impact  string `json:"impact"`
	Outcome string `json:"outcome"`
}

// Report is the full validation verdict for one bullet.
type Report struct {
	Valid             bool              `json:"is_valid"`
	CharacterCount    int               `json:"character_count"`
	HasMetrics        bool              `json:"has_metrics"`
	HasAllSixPoints   bool              `json:"has_all_six_points"`
	HasStrongVerb     bool              `json:"has_strong_verb"`
	NoGenericLanguage bool              `json:"no_generic_language"`
	QualityScore      int               `json:"quality_score"`
	Errors            []string          `json:"errors"`
	Warnings          []string          `json:"warnings"`
	Suggestions       []string          `json:"suggestions"`
	AutoFixAvailable  bool              `json:"auto_fix_available"`
	AutoFix           map[string]string `json:"auto_fix_suggestions"`
}

// Metrics is the result of scanning text for quantified outcomes.
type Metrics struct {
	Found  bool     `json:"has_metrics"`
	Values []string `json:"metrics_found"`
	Types  []string `json:"metric_types"`
}

var strongVerbs = []string{
	"led", "built", "designed", "developed", "created", "established",
	"launched", "implemented", "architected", "drove", "spearheaded",
	"orchestrated", "pioneered", "transformed", "optimized", "scaled",
	"increased", "reduced", "improved", "accelerated", "delivered",
	"achieved", "exceeded", "generated", "streamlined", "automated",
	"coordinated", "facilitated", "managed", "directed", "executed",
}

var weakVerbs = []string{
	"helped", "worked on", "responsible for", "assisted with",
	"participated in", "contributed to", "involved in", "dealt with",
	"handled", "did", "made", "got", "had",
}

var genericPhrases = []string{
	"various tasks", "day-to-day", "as needed", "duties included",
	"worked closely", "team player", "hard worker", "detail-oriented",
	"self-starter", "go-getter", "think outside the box",
}

// verbUpgrades maps weak openers to a stronger replacement.
var verbUpgrades = []struct{ weak, strong string }{
	{"helped", "Enabled"},
	{"worked on", "Developed"},
	{"assisted", "Supported"},
	{"responsible for", "Managed"},
	{"participated", "Contributed"},
	{"handled", "Managed"},
	{"did", "Executed"},
	{"made", "Created"},
}

var (
	rePercent    = regexp.MustCompile(`\d+(?:\.\d+)?%`)
	reDollar     = regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d{2})?[KMB]?`)
	reCommaNum   = regexp.MustCompile(`\d+(?:,\d{3})+`)
	reScaledNum  = regexp.MustCompile(`\d+(?:\.\d+)?[KMB]\+?`)
	reRatio      = regexp.MustCompile(`(?i)\d+:\d+|\d+x`)
	rePlainNum   = regexp.MustCompile(`\b\d+\b`)
	reSpaceRuns  = regexp.MustCompile(`\s+`)
	reSpaceComma = regexp.MustCompile(`\s+,`)
)

// Assemble joins the six parts into the bullet as it would appear on
// the resume: action and context first, the middle parts attached
// with commas, the outcome appended last.
func (b SixPoint) Assemble() string {
	text := b.Action + " " + b.Context
	if b.Method != "" {
		text += ", " + b.Method
	}
	if b.Result != "" {
		text += ", " + b.Result
	}
	if b.Impact != "" {
		text += ", " + b.Impact
	}
	if b.Outcome != "" {
		text += " " + b.Outcome
	}
	text = strings.TrimSpace(reSpaceRuns.ReplaceAllString(text, " "))
	return reSpaceComma.ReplaceAllString(text, ",")
}

// Validate checks one bullet against the six-point quality bar and
// returns the full verdict. It never fails; everything wrong with the
// bullet lands in the report.
func Validate(b SixPoint) Report {
	r := Report{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
		AutoFix:     map[string]string{},
	}

	full := b.Assemble()
	r.CharacterCount = utf8.RuneCountInString(full)

	r.HasAllSixPoints = checkAllSixPoints(b, &r)
	charCountOK := checkCharacterCount(r.CharacterCount, &r)

	metrics := DetectMetrics(full)
	r.HasMetrics = metrics.Found
	if !metrics.Found {
		r.Errors = append(r.Errors, "Bullet must contain metrics (numbers, percentages, dollar amounts)")
		r.Suggestions = append(r.Suggestions, missingMetricSuggestions...)
	}

	r.HasStrongVerb = checkActionVerb(b.Action, &r)
	r.NoGenericLanguage = checkGenericLanguage(full, &r)
	resultHasMetrics := checkResultMetrics(b.Result, &r)
	checkBrevity(b.Method, "Method field is very brief. Add more detail about how you did it.",
		"Example: 'using Agile methodology', 'through stakeholder interviews', 'by implementing automation'", &r)
	checkBrevity(b.Impact, "Impact field is very brief. Describe the business effect.",
		"Example: 'improving team productivity', 'enhancing customer satisfaction', 'reducing operational costs'", &r)

	r.QualityScore = qualityScore(r.CharacterCount, r.HasMetrics, r.HasAllSixPoints,
		r.HasStrongVerb, r.NoGenericLanguage, resultHasMetrics)

	if r.CharacterCount > MaxChars {
		r.AutoFix["character_count"] = fmt.Sprintf("Trim to %d characters", MaxChars)
	}
	if !r.HasStrongVerb && b.Action != "" {
		r.AutoFix["action_verb"] = "Replace with: " + suggestStrongVerb(b.Action)
	}
	r.AutoFixAvailable = len(r.AutoFix) > 0

	r.Valid = r.HasAllSixPoints && charCountOK && r.HasMetrics && r.QualityScore >= passScore
	return r
}

var missingMetricSuggestions = []string{
	"Add specific numbers: How many? How much?",
	"Include percentages: By what %?",
	"Quantify impact: How many users, dollars, hours saved?",
	"Example: 'reduced time by 40%', 'grew revenue by $500K', 'served 10K+ users'",
}

// DetectMetrics scans text for quantified outcomes: percentages,
// dollar amounts, large or scaled numbers, ratios. Plain digits only
// count when nothing better is present.
func DetectMetrics(text string) Metrics {
	var m Metrics
	add := func(values []string, kind string) {
		if len(values) > 0 {
			m.Values = append(m.Values, values...)
			m.Types = append(m.Types, kind)
		}
	}
	add(rePercent.FindAllString(text, -1), "percentage")
	add(reDollar.FindAllString(text, -1), "dollar")
	add(reCommaNum.FindAllString(text, -1), "number")
	add(reScaledNum.FindAllString(text, -1), "scaled_number")
	add(reRatio.FindAllString(text, -1), "ratio")

	if len(m.Values) == 0 {
		plain := rePlainNum.FindAllString(text, 3)
		add(plain, "plain_number")
	}
	m.Found = len(m.Values) > 0
	return m
}

func checkAllSixPoints(b SixPoint, r *Report) bool {
	var missing []string
	for _, part := range []struct{ name, value string }{
		{"Action", b.Action}, {"Context", b.Context}, {"Method", b.Method},
		{"Result", b.Result}, {"Impact", b.Impact}, {"Outcome", b.Outcome},
	} {
		if strings.TrimSpace(part.value) == "" {
			missing = append(missing, part.name)
		}
	}
	if len(missing) > 0 {
		r.Errors = append(r.Errors, "Missing required fields: "+strings.Join(missing, ", "))
		return false
	}
	return true
}

func checkCharacterCount(count int, r *Report) bool {
	switch {
	case count < MinChars:
		r.Errors = append(r.Errors, fmt.Sprintf("Bullet too short (%d chars). Must be at least %d characters.", count, MinChars))
		r.Suggestions = append(r.Suggestions, "Add more detail to context, method, or impact")
		return false
	case count > MaxChars:
		r.Errors = append(r.Errors, fmt.Sprintf("Bullet too long (%d chars). Must be under %d characters.", count, MaxChars))
		r.Suggestions = append(r.Suggestions, "Trim less important details or use more concise language")
		return false
	}
	if count < MinChars+10 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("Bullet is close to minimum length (%d chars)", count))
	}
	if count > MaxChars-10 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("Bullet is close to maximum length (%d chars)", count))
	}
	return true
}

func checkActionVerb(action string, r *Report) bool {
	if action == "" {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(action))
	for _, weak := range weakVerbs {
		if strings.Contains(lower, weak) {
			r.Warnings = append(r.Warnings, fmt.Sprintf("Weak action verb: '%s'. Use a stronger, more specific verb.", action))
			r.Suggestions = append(r.Suggestions, "Try: "+strings.Join(strongVerbs[:5], ", "))
			return false
		}
	}
	fields := strings.Fields(lower)
	if len(fields) > 0 {
		for _, strong := range strongVerbs {
			if fields[0] == strong {
				return true
			}
		}
	}
	// Not weak, not on the strong list either.
	r.Warnings = append(r.Warnings, "Consider using a more impactful action verb")
	return true
}

func checkGenericLanguage(text string, r *Report) bool {
	lower := strings.ToLower(text)
	var found []string
	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			found = append(found, phrase)
		}
	}
	if len(found) > 0 {
		r.Warnings = append(r.Warnings, "Generic language detected: "+strings.Join(found, ", "))
		r.Suggestions = append(r.Suggestions, "Replace generic phrases with specific, quantified achievements")
		return false
	}
	return true
}

func checkResultMetrics(result string, r *Report) bool {
	if result == "" {
		return false
	}
	if !DetectMetrics(result).Found {
		r.Errors = append(r.Errors, "Result field must contain specific metrics or numbers")
		r.Suggestions = append(r.Suggestions, "Add quantified outcome: 'reducing X by Y%', 'increasing Z to N'")
		return false
	}
	return true
}

func checkBrevity(value, warning, suggestion string, r *Report) {
	if value == "" || utf8.RuneCountInString(value) >= 10 {
		return
	}
	r.Warnings = append(r.Warnings, warning)
	r.Suggestions = append(r.Suggestions, suggestion)
}

func qualityScore(count int, hasMetrics, allSix, strongVerb, noGeneric, resultMetrics bool) int {
	score := 0
	if allSix {
		score += 30
	}
	if hasMetrics {
		score += 25
	}
	if resultMetrics {
		score += 20
	}
	if count >= MinChars && count <= MaxChars {
		score += 10
		if diff := count - IdealChars; diff >= -5 && diff <= 5 {
			score += 5
		}
	}
	if strongVerb {
		score += 5
	}
	if noGeneric {
		score += 5
	}
	if score > 100 {
		score = 100
	}
	return score
}

func suggestStrongVerb(action string) string {
	lower := strings.ToLower(action)
	for _, up := range verbUpgrades {
		if strings.Contains(lower, up.weak) {
			return up.strong
		}
	}
	return "Led"
}
