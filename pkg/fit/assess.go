// Package fit scores how well a candidate matches a job description
// across weighted competency areas and turns the result into concrete
// advice: strengths, gaps, tone of voice for the target company stage
// and how to spread resume bullets across the areas.
package fit

import (
	"fmt"
	"math"
	"strings"

	"github.com/careeragentpro/backend/pkg/resume"
)

// Level buckets the fit score.
type Level string

const (
	LevelExcellent Level = "excellent" // 85-100
	LevelStrong    Level = "strong"    // 70-84
	LevelModerate  Level = "moderate"  // 50-69
	LevelWeak      Level = "weak"      // below 50
)

// totalBullets is how many resume bullets the distribution spreads
// across the competency areas the posting actually asks for.
const totalBullets = 13

const summaryGuidance = "Create a 3-line summary (360-380 characters total). " +
	"Frontload JD keywords. Avoid metrics in summary."

// CompetencyMatch is the verdict for one competency area the posting
// mentions. Weight is the share of the overall score in percent.
type CompetencyMatch struct {
	Area    string   `json:"area"`
	Weight  float64  `json:"weight"`
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Assessment is the complete fit verdict for one posting.
type Assessment struct {
	FitScore        int               `json:"fit_score"`
	FitLevel        Level             `json:"fit_level"`
	InterestLevel   int               `json:"interest_level"`
	Decision        string            `json:"decision"`
	Strengths       []string          `json:"strengths"`
	Gaps            []string          `json:"gaps"`
	StageAdvice     string            `json:"stage_advice"`
	ActionItems     []string          `json:"action_items"`
	BulletPlan      map[string]int    `json:"bullet_distribution"`
	SummaryGuidance string            `json:"summary_guidance"`
	Competencies    []CompetencyMatch `json:"competency_breakdown"`
}

// competency areas with their base weight and signature keywords.
// Order matters: ties in later aggregations resolve to the first area.
var competencyAreas = []struct {
	name     string
	weight   float64
	keywords []string
}{
	{"technical_skills", 0.25, []string{
		"python", "javascript", "java", "sql", "react", "node", "aws",
		"docker", "kubernetes", "api", "database", "cloud", "machine learning",
		"data analysis", "software development", "programming", "coding",
	}},
	{"leadership", 0.20, []string{
		"lead", "manage", "mentor", "coach", "direct", "oversee",
		"team", "cross-functional", "stakeholder", "influence",
	}},
	{"product_strategy", 0.20, []string{
		"product", "roadmap", "strategy", "vision", "prioritize",
		"user research", "market analysis", "competitive", "growth",
	}},
	{"communication", 0.15, []string{
		"communicate", "present", "collaborate", "negotiate",
		"stakeholder", "documentation", "report", "articulate",
	}},
	{"execution", 0.20, []string{
		"deliver", "execute", "implement", "launch", "ship",
		"agile", "scrum", "project management", "deadline", "on-time",
	}},
}

// Company stage signals and the matching language advice.
var stages = []struct {
	name     string
	patterns []string
	advice   string
}{
	{"early_stage", []string{
		"startup", "seed", "pre-seed", "angel", "bootstrap",
		"small team", "wear many hats", "fast-paced", "scrappy",
	}, "Use startup-focused language: 'agile', 'MVP', 'iterate quickly', 'wear many hats'"},
	{"growth_stage", []string{
		"series a", "series b", "series c", "hypergrowth", "scaling",
		"rapid growth", "expanding", "growing team",
	}, "Emphasize scaling experience: 'growth metrics', '10x', 'process optimization'"},
	{"enterprise", []string{
		"fortune 500", "enterprise", "global", "multinational",
		"large-scale", "established", "public company",
	}, "Highlight enterprise experience: 'cross-functional', 'stakeholder management', 'governance'"},
}

var interestSignals = []string{"remote", "leadership", "0-to-1", "founding", "growth"}

// Assess scores the candidate profile against a job description. It
// is a pure function over its inputs and never fails; an empty
// profile simply scores low.
func Assess(description string, profile resume.Profile) Assessment {
	jd := strings.ToLower(description)
	candidate := candidateText(profile)

	var matches []CompetencyMatch
	var internal []competencyResult
	weighted := 0.0
	for _, area := range competencyAreas {
		res := assessArea(area.name, area.weight, area.keywords, jd, candidate)
		weighted += res.score * res.weight
		internal = append(internal, res)
		if res.weight > 0 {
			matches = append(matches, CompetencyMatch{
				Area:    titleCase(res.name),
				Weight:  math.Round(res.weight*1000) / 10,
				Score:   res.score,
				Matched: res.matched,
				Missing: res.missing,
			})
		}
	}

	fitScore := int(weighted)
	if fitScore > 100 {
		fitScore = 100
	}

	var strengths, gaps []string
	for _, res := range internal {
		switch {
		case res.score >= 70:
			strengths = append(strengths, titleCase(res.name))
		case res.score < 50:
			gaps = append(gaps, titleCase(res.name))
		}
	}

	_, advice := DetectStage(jd)
	interest := interestLevel(jd)

	return Assessment{
		FitScore:        fitScore,
		FitLevel:        levelFor(fitScore),
		InterestLevel:   interest,
		Decision:        decide(fitScore, interest),
		Strengths:       strengths,
		Gaps:            gaps,
		StageAdvice:     advice,
		ActionItems:     actionItems(internal, gaps),
		BulletPlan:      bulletPlan(internal),
		SummaryGuidance: summaryGuidance,
		Competencies:    matches,
	}
}

// DetectStage guesses the company stage from the posting language and
// returns the stage name with the matching wording advice. With no
// signal at all it defaults to the first (early stage) advice.
func DetectStage(description string) (string, string) {
	jd := strings.ToLower(description)
	best := 0
	bestScore := -1
	for i, stage := range stages {
		score := 0
		for _, p := range stage.patterns {
			if strings.Contains(jd, p) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return stages[best].name, stages[best].advice
}

type competencyResult struct {
	name    string
	weight  float64
	score   float64
	matched []string
	missing []string
	advice  []string
}

func assessArea(name string, weight float64, keywords []string, jd, candidate string) competencyResult {
	var mentioned []string
	for _, kw := range keywords {
		if strings.Contains(jd, kw) {
			mentioned = append(mentioned, kw)
		}
	}
	// An area the posting never brings up neither helps nor hurts.
	if len(mentioned) == 0 {
		return competencyResult{name: name, score: 100}
	}

	var matched, missing []string
	for _, kw := range mentioned {
		if strings.Contains(candidate, kw) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := math.Round(float64(len(matched))/float64(len(mentioned))*1000) / 10
	res := competencyResult{
		name:    name,
		weight:  weight * float64(len(mentioned)) / float64(len(keywords)),
		score:   score,
		matched: matched,
		missing: missing,
	}
	if len(missing) > 0 {
		top := missing
		if len(top) > 3 {
			top = top[:3]
		}
		res.advice = append(res.advice, "Consider highlighting experience with: "+strings.Join(top, ", "))
	}
	if score < 50 {
		res.advice = append(res.advice, fmt.Sprintf("Strengthen %s section in resume", strings.ReplaceAll(name, "_", " ")))
	}
	return res
}

func candidateText(profile resume.Profile) string {
	var parts []string
	parts = append(parts, profile.Skills...)
	for _, exp := range profile.Experience {
		parts = append(parts, exp.Role, exp.Company, exp.Description)
	}
	parts = append(parts, profile.Summary)
	return strings.ToLower(strings.Join(parts, " "))
}

func levelFor(score int) Level {
	switch {
	case score >= 85:
		return LevelExcellent
	case score >= 70:
		return LevelStrong
	case score >= 50:
		return LevelModerate
	default:
		return LevelWeak
	}
}

func interestLevel(jd string) int {
	interest := 7
	for _, kw := range interestSignals {
		if strings.Contains(jd, kw) {
			interest++
		}
	}
	if interest > 10 {
		interest = 10
	}
	return interest
}

func decide(fitScore, interest int) string {
	switch {
	case fitScore >= 85 && interest >= 8:
		return "PROCEED (High Priority)"
	case fitScore >= 75 || interest >= 7:
		return "PRESENT TO USER (Medium Priority)"
	default:
		return "ARCHIVE (Low Priority)"
	}
}

func actionItems(results []competencyResult, gaps []string) []string {
	var actions []string
	for i, gap := range gaps {
		if i == 2 {
			break
		}
		actions = append(actions, fmt.Sprintf("Critical: Add more %s experience to resume", gap))
	}
	improved := 0
	for _, res := range results {
		if res.score < 50 || res.score >= 70 || len(res.advice) == 0 {
			continue
		}
		actions = append(actions, "Improve: "+res.advice[0])
		if improved++; improved == 2 {
			break
		}
	}
	for _, res := range results {
		if res.score >= 70 && res.weight > 0 {
			actions = append(actions, fmt.Sprintf("Leverage: Lead with %s experience", strings.ReplaceAll(res.name, "_", " ")))
			break
		}
	}
	return actions
}

// bulletPlan spreads the bullet budget proportionally to the adjusted
// area weights; leftover bullets go to the biggest area.
func bulletPlan(results []competencyResult) map[string]int {
	totalWeight := 0.0
	for _, res := range results {
		totalWeight += res.weight
	}
	if totalWeight == 0 {
		return map[string]int{"general": totalBullets}
	}

	plan := map[string]int{}
	assigned := 0
	topArea, topCount := "", -1
	for _, res := range results {
		if res.weight == 0 {
			continue
		}
		n := int(res.weight / totalWeight * totalBullets)
		if n == 0 {
			continue
		}
		plan[res.name] = n
		assigned += n
		if n > topCount {
			topArea, topCount = res.name, n
		}
	}
	if remaining := totalBullets - assigned; remaining > 0 && topArea != "" {
		plan[topArea] += remaining
	} else if len(plan) == 0 {
		plan["general"] = totalBullets
	}
	return plan
}

func titleCase(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
