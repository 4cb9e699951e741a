package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careeragentpro/backend/pkg/resume"
)

const sampleJD = `We need python and sql skills. You will lead a team of engineers
and deliver on agile deadlines. Fast-paced startup, remote work.`

func matchingProfile() resume.Profile {
	return resume.Profile{
		Skills: []string{"Python", "SQL", "Agile"},
		Experience: []resume.ExperienceEntry{
			{Role: "Team Lead", Company: "Initech", Description: "Delivered projects on deadline"},
		},
	}
}

func TestAssessFullMatch(t *testing.T) {
	a := Assess(sampleJD, matchingProfile())

	// Three areas are mentioned (technical, leadership, execution) and
	// the candidate covers every mentioned keyword.
	assert.Equal(t, 12, a.FitScore)
	assert.Equal(t, LevelWeak, a.FitLevel)
	assert.Empty(t, a.Gaps)
	assert.Contains(t, a.Strengths, "Technical Skills")
	assert.Contains(t, a.Strengths, "Leadership")
	assert.Contains(t, a.Strengths, "Execution")

	require.Len(t, a.Competencies, 3)
	for _, c := range a.Competencies {
		assert.Equal(t, 100.0, c.Score, c.Area)
		assert.Empty(t, c.Missing, c.Area)
	}
}

func TestAssessBulletPlanSpendsFullBudget(t *testing.T) {
	a := Assess(sampleJD, matchingProfile())

	total := 0
	for _, n := range a.BulletPlan {
		total += n
	}
	assert.Equal(t, 13, total)
	// Execution carries the most adjusted weight and absorbs the
	// rounding leftover.
	assert.Equal(t, map[string]int{
		"technical_skills": 2,
		"leadership":       4,
		"execution":        7,
	}, a.BulletPlan)
}

func TestAssessInterestAndDecision(t *testing.T) {
	a := Assess(sampleJD, matchingProfile())

	// Base interest 7 plus the remote signal.
	assert.Equal(t, 8, a.InterestLevel)
	assert.Equal(t, "PRESENT TO USER (Medium Priority)", a.Decision)
}

func TestAssessEmptyProfileReportsGaps(t *testing.T) {
	a := Assess(sampleJD, resume.Profile{})

	assert.Equal(t, 0, a.FitScore)
	assert.Equal(t, LevelWeak, a.FitLevel)
	assert.ElementsMatch(t, []string{"Technical Skills", "Leadership", "Execution"}, a.Gaps)
	require.NotEmpty(t, a.ActionItems)
	assert.Equal(t, "Critical: Add more Technical Skills experience to resume", a.ActionItems[0])
}

func TestAssessEmptyDescription(t *testing.T) {
	a := Assess("", matchingProfile())

	assert.Equal(t, 0, a.FitScore)
	assert.Empty(t, a.Competencies)
	assert.Equal(t, map[string]int{"general": 13}, a.BulletPlan)
}

func TestAssessWeakAreaGetsImproveAction(t *testing.T) {
	// Leadership: "lead" and "team" mentioned, only "team" covered.
	jd := "You will lead a great team."
	p := resume.Profile{Skills: []string{"team management"}}

	a := Assess(jd, p)

	require.NotEmpty(t, a.ActionItems)
	assert.Contains(t, a.ActionItems[0], "Improve: Consider highlighting experience with: lead")
}

func TestDetectStage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "startup signals", text: "fast-paced startup, wear many hats", want: "early_stage"},
		{name: "growth signals", text: "Series B company in hypergrowth, scaling the team", want: "growth_stage"},
		{name: "enterprise signals", text: "Fortune 500 global enterprise", want: "enterprise"},
		{name: "no signal defaults early", text: "a job posting", want: "early_stage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, advice := DetectStage(tt.text)
			assert.Equal(t, tt.want, stage)
			assert.NotEmpty(t, advice)
		})
	}
}
