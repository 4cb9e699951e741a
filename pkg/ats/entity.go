// Package ats scores how well a resume fits a job posting the way an
// applicant tracking system would: skill overlap, experience,
// education and formatting, combined into a single 0-100 score.
package ats

// Breakdown holds the five component scores, each 0-100.
type Breakdown struct {
	SkillsMatch         int `json:"skills_match"`
	ExperienceRelevance int `json:"experience_relevance"`
	KeywordDensity      int `json:"keyword_density"`
	Education           int `json:"education"`
	FormatQuality       int `json:"format_quality"`
}

// Result is the total score with its breakdown.
type Result struct {
	Score     int       `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}
