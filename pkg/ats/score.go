package ats

import (
	"math"

	"github.com/careeragentpro/backend/pkg/job"
	"github.com/careeragentpro/backend/pkg/nlp"
	"github.com/careeragentpro/backend/pkg/resume"
)

// Component weights. They sum to 1.
const (
	weightSkills     = 0.30
	weightExperience = 0.30
	weightKeywords   = 0.20
	weightEducation  = 0.10
	weightFormat     = 0.10
)

// Score rates the profile against the posting. It never fails: missing
// sections simply score lower.
func Score(p resume.Profile, posting job.Posting) Result {
	b := Breakdown{
		SkillsMatch:         skillsMatch(p.Skills, posting.Skills),
		ExperienceRelevance: experienceRelevance(p.Experience),
		KeywordDensity:      keywordDensity(p.Skills, posting.Skills),
		Education:           education(p.Education),
		FormatQuality:       formatQuality(p),
	}

	total := weightSkills*float64(b.SkillsMatch) +
		weightExperience*float64(b.ExperienceRelevance) +
		weightKeywords*float64(b.KeywordDensity) +
		weightEducation*float64(b.Education) +
		weightFormat*float64(b.FormatQuality)

	return Result{Score: clamp(int(math.Round(total))), Breakdown: b}
}

// skillsMatch is the share of the posting's skills present in the
// resume, as a percentage. A posting without skills scores a neutral
// 50 because there is nothing to compare against.
func skillsMatch(resumeSkills, jobSkills []string) int {
	want := normalizeSet(jobSkills)
	if len(want) == 0 {
		return 50
	}
	have := normalizeSet(resumeSkills)
	matched := 0
	for s := range want {
		if _, ok := have[s]; ok {
			matched++
		}
	}
	return clamp(int(math.Round(100 * float64(matched) / float64(len(want)))))
}

// experienceRelevance is a coarse signal: any work history at all
// counts for more than none.
func experienceRelevance(entries []resume.ExperienceEntry) int {
	if len(entries) > 0 {
		return 60
	}
	return 30
}

// keywordDensity measures how many of the posting's keywords the
// resume carries. The posting's skill list doubles as its keyword
// list, so the formula mirrors skillsMatch.
func keywordDensity(resumeSkills, jobSkills []string) int {
	want := normalizeSet(jobSkills)
	if len(want) == 0 {
		return 50
	}
	have := normalizeSet(resumeSkills)
	matched := 0
	for s := range want {
		if _, ok := have[s]; ok {
			matched++
		}
	}
	return clamp(int(math.Round(100 * float64(matched) / float64(len(want)))))
}

func education(entries []resume.EducationEntry) int {
	if len(entries) > 0 {
		return 100
	}
	return 70
}

// formatQuality rewards a resume that has both a summary and a skill
// list; everything else gets a solid baseline.
func formatQuality(p resume.Profile) int {
	if p.Summary != "" && len(p.Skills) > 0 {
		return 100
	}
	return 80
}

func normalizeSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		n := nlp.Normalize(v)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
