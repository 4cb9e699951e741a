package enhance

import (
	"github.com/careeragentpro/backend/pkg/ats"
)

// Source tells who produced the enhancement content.
type Source string

const (
	SourceAI        Source = "ai"
	SourceHeuristic Source = "heuristic"
)

// Enhancement is the full analysis of a resume against one posting:
// the ATS score with its breakdown, a tailored summary, per-experience
// bullet suggestions and actionable tips. It lives for one request and
// is never persisted.
type Enhancement struct {
	ats.Result
	Feedback          string     `json:"feedback"`
	Summary           string     `json:"tailoredSummary"`
	ExperienceBullets [][]string `json:"experienceBullets"`
	MatchedSkills     []string   `json:"matchedSkills"`
	MissingSkills     []string   `json:"missingSkills"`
	Tips              []string   `json:"tips"`
	Source            Source     `json:"source"`
	Model             string     `json:"model,omitempty"`
}
