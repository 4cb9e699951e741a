package enhance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/careeragentpro/backend/pkg/ats"
	"github.com/careeragentpro/backend/pkg/job"
	"github.com/careeragentpro/backend/pkg/llm"
	"github.com/careeragentpro/backend/pkg/nlp"
	"github.com/careeragentpro/backend/pkg/resume"
)

const maxTips = 6

const improveSystemPrompt = "You are an expert resume writer. Return valid JSON only."

const improvePromptFormat = `As an expert career coach and ATS optimization specialist, improve this resume for the job:

JOB: %s at %s
Required Skills: %s
Key Requirements: %s

CANDIDATE PROFILE:
- Current Summary: %s
- Skills: %s
- Experience: %d positions

Generate JSON with:
1. "summary": A powerful 2-3 sentence professional summary tailored for this exact role (include keywords: %s)
2. "experience_bullets": Array of arrays - for each experience, provide 2-3 impactful bullet points with metrics

Return ONLY valid JSON, no explanation.`

// Service analyzes a resume against a posting. Enhance never fails:
// when the model is unavailable the local analysis stands on its own.
type Service interface {
	Enhance(ctx context.Context, p resume.Profile, posting job.Posting) Enhancement
}

type service struct {
	ai  llm.Assistant
	log *zap.Logger
}

func NewService(ai llm.Assistant, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{ai: ai, log: log}
}

func (s *service) Enhance(ctx context.Context, p resume.Profile, posting job.Posting) Enhancement {
	matched, missing := splitSkills(p.Skills, posting.Skills)

	e := Enhancement{
		Result:        ats.Score(p, posting),
		MatchedSkills: matched,
		MissingSkills: missing,
		Source:        SourceHeuristic,
	}
	e.Feedback = feedback(e.Breakdown)
	e.Summary = tailoredSummary(p, posting)
	e.ExperienceBullets = suggestedBullets(p, posting)
	e.Tips = tips(p, posting, missing)

	if s.ai == nil {
		return e
	}
	if summary, bullets, model, ok := s.aiImprove(ctx, p, posting); ok {
		if summary != "" {
			e.Summary = summary
		}
		if len(bullets) > 0 {
			e.ExperienceBullets = bullets
		}
		e.Source = SourceAI
		e.Model = model
	}
	return e
}

// aiImprovement is the shape the improvement prompt asks for.
type aiImprovement struct {
	Summary           string     `json:"summary"`
	ExperienceBullets [][]string `json:"experience_bullets"`
}

func (s *service) aiImprove(ctx context.Context, p resume.Profile, posting job.Posting) (string, [][]string, string, bool) {
	user := fmt.Sprintf(improvePromptFormat,
		posting.Title, posting.Company,
		joinOr(firstN(posting.Skills, 10), "See description"),
		truncateOr(posting.Description, 500, "N/A"),
		truncateOr(p.Summary, 300, "None"),
		joinOr(firstN(p.Skills, 15), "None"),
		len(p.Experience),
		strings.Join(firstN(posting.Skills, 5), ", "),
	)

	raw, model, err := s.ai.AskModel(ctx, improveSystemPrompt, user)
	if err != nil {
		s.log.Warn("ai improvements unavailable, using local analysis", zap.Error(err))
		return "", nil, "", false
	}

	var imp aiImprovement
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &imp); err != nil {
		s.log.Warn("ai improvements returned malformed payload", zap.Error(err))
		return "", nil, "", false
	}
	if imp.Summary == "" && len(imp.ExperienceBullets) == 0 {
		return "", nil, "", false
	}
	return strings.TrimSpace(imp.Summary), imp.ExperienceBullets, model, true
}

// splitSkills partitions the posting's skills into those the resume
// already carries and those it misses. Comparison ignores case; the
// posting's casing and order are preserved in both outputs.
func splitSkills(resumeSkills, jobSkills []string) (matched, missing []string) {
	matched, missing = []string{}, []string{}
	have := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		have[nlp.Normalize(s)] = struct{}{}
	}
	for _, s := range jobSkills {
		if _, ok := have[nlp.Normalize(s)]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

func feedback(b ats.Breakdown) string {
	var parts []string
	switch {
	case b.SkillsMatch >= 70:
		parts = append(parts, "✓ Strong skills alignment")
	case b.SkillsMatch >= 40:
		parts = append(parts, "⚠ Moderate skills match - add more keywords")
	default:
		parts = append(parts, "✗ Low skills match - update your skills section")
	}
	if b.ExperienceRelevance >= 60 {
		parts = append(parts, "✓ Relevant experience detected")
	} else {
		parts = append(parts, "⚠ Tailor experience descriptions to the job")
	}
	if b.FormatQuality < 70 {
		parts = append(parts, "⚠ Complete all profile sections")
	}
	return strings.Join(parts, " | ")
}

// tailoredSummary writes a summary suggestion from the resume's top
// skills and the posting's title and company.
func tailoredSummary(p resume.Profile, posting job.Posting) string {
	if posting.Title == "" {
		return ""
	}
	expertise := "relevant technologies"
	if len(p.Skills) > 0 {
		expertise = strings.Join(firstN(p.Skills, 3), ", ")
	}
	company := posting.Company
	if company == "" {
		company = "a leading company"
	}
	out := fmt.Sprintf(
		"Results-driven professional with expertise in %s. Seeking %s role at %s where I can leverage my experience to drive impact.",
		expertise, posting.Title, company)
	if p.Summary != "" {
		out += " " + nlp.Truncate(p.Summary, 200)
	}
	return out
}

// suggestedBullets proposes bullet points per experience entry: a
// metrics bullet when the description has no numbers, and a skills
// bullet naming posting skills the entry does not mention yet.
func suggestedBullets(p resume.Profile, posting job.Posting) [][]string {
	bullets := make([][]string, len(p.Experience))
	for i, exp := range p.Experience {
		var suggestions []string
		if !strings.ContainsAny(exp.Description, "0123456789") {
			suggestions = append(suggestions, "Led initiatives resulting in X% improvement in key metrics")
		}
		desc := strings.ToLower(exp.Description)
		var unmentioned []string
		for _, skill := range posting.Skills {
			if !strings.Contains(desc, strings.ToLower(skill)) {
				unmentioned = append(unmentioned, skill)
				if len(unmentioned) == 2 {
					break
				}
			}
		}
		if len(unmentioned) > 0 {
			suggestions = append(suggestions,
				"Utilized "+strings.Join(unmentioned, ", ")+" to deliver solutions")
		}
		bullets[i] = suggestions
	}
	return bullets
}

func tips(p resume.Profile, posting job.Posting, missing []string) []string {
	var out []string
	if len(missing) > 0 {
		out = append(out, "Add these skills: "+strings.Join(firstN(missing, 5), ", "))
	}
	switch {
	case p.Summary == "":
		out = append(out, "Add a 2-3 sentence summary highlighting your key strengths")
	case len(p.Summary) < 100:
		out = append(out, "Expand your summary to 100-200 characters")
	case posting.Title != "" && !strings.Contains(strings.ToLower(p.Summary), strings.ToLower(posting.Title)):
		out = append(out, "Mention '"+posting.Title+"' in your summary")
	}
	for i, exp := range p.Experience {
		if i == 2 {
			break
		}
		if len(exp.Description) < 50 {
			out = append(out, "Experience: description too brief - add more details")
		} else if !strings.ContainsAny(exp.Description, "0123456789") {
			out = append(out, "Experience: add quantified achievements (numbers, percentages, metrics)")
		}
	}
	out = append(out, "Quantify 2-3 achievements with specific metrics")
	if posting.Company != "" {
		out = append(out, "Research "+posting.Company+" and customize your cover letter")
	}
	if len(out) > maxTips {
		out = out[:maxTips]
	}
	return out
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func truncateOr(s string, n int, fallback string) string {
	if s == "" {
		return fallback
	}
	return nlp.Truncate(s, n)
}
