// Package letter writes application prose: cover letters and short
// outreach messages. Cover letters prefer the model and fall back to a
// fixed local template; outreach messages are templates only.
package letter

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/careeragentpro/backend/pkg/job"
	"github.com/careeragentpro/backend/pkg/llm"
	"github.com/careeragentpro/backend/pkg/resume"
)

// Source tells who wrote the letter.
type Source string

const (
	SourceAI        Source = "ai"
	SourceHeuristic Source = "heuristic"
)

// Communication kinds.
const (
	KindEmail    = "email"
	KindLinkedIn = "linkedin_message"
	KindFollowUp = "follow_up"
)

// CoverLetter is generated prose with its provenance.
type CoverLetter struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
	Model  string `json:"model,omitempty"`
}

const coverSystemPrompt = "You are an expert cover letter writer."

const coverPromptFormat = `Write a 4-paragraph cover letter for a %s role at %s.
Constraints:
- 8-12 lines total
- 150-200 words
- No formal headers beyond the letter itself
- Minimalist, professional tone
- 4 paragraphs: Hook, Value, Alignment, CTA

Use these candidate details:
- Summary: %s
- Skills: %s
- Experience: %s

Return ONLY the letter with blank lines between paragraphs.`

// Service generates cover letters and outreach messages. Neither
// operation fails; the template fallback always produces text.
type Service interface {
	Cover(ctx context.Context, p resume.Profile, posting job.Posting) CoverLetter
	Communication(p resume.Profile, posting job.Posting, kind string) string
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

func (s *service) Cover(ctx context.Context, p resume.Profile, posting job.Posting) CoverLetter {
	name := fallbackStr(p.Name, "Applicant")
	title := fallbackStr(posting.Title, "the position")
	company := fallbackStr(posting.Company, "your company")

	if s.ai != nil {
		experience := ""
		if len(p.Experience) > 0 {
			experience = p.Experience[0].Role
		}
		user := fmt.Sprintf(coverPromptFormat, title, company,
			fallbackStr(p.Summary, "N/A"),
			fallbackStr(strings.Join(firstN(p.Skills, 6), ", "), "N/A"),
			experience)

		raw, model, err := s.ai.AskModel(ctx, coverSystemPrompt, user)
		if err != nil {
			s.log.Warn("ai cover letter unavailable, using template", zap.Error(err))
		} else if text := stripFences(raw); text != "" {
			return CoverLetter{Text: text, Source: SourceAI, Model: model}
		}
	}

	return CoverLetter{Text: coverFallback(p, posting, name, title, company), Source: SourceHeuristic}
}

// coverFallback assembles a fixed 4-paragraph letter: hook, value,
// alignment, call to action.
func coverFallback(p resume.Profile, posting job.Posting, name, title, company string) string {
	topSkills := "product strategy, stakeholder alignment, and execution"
	if len(p.Skills) > 0 {
		topSkills = strings.Join(firstN(p.Skills, 3), ", ")
	}
	hookSkill := "customer outcomes and operational excellence"
	if len(p.Skills) >= 2 {
		hookSkill = strings.Join(firstN(p.Skills, 2), ", ")
	}
	role, recentCompany := "a recent role", "a previous company"
	if len(p.Experience) > 0 {
		role = fallbackStr(p.Experience[0].Role, role)
		recentCompany = fallbackStr(p.Experience[0].Company, recentCompany)
	}
	highlight := fallbackStr(p.Summary, "delivering measurable outcomes across cross-functional teams")

	line1 := fmt.Sprintf("I was excited to see the %s opening at %s, especially your focus on %s.", title, company, hookSkill)
	line2 := "The role's emphasis on measurable impact mirrors how I approach product work: clarify the problem, test quickly, and deliver outcomes."
	line3 := fmt.Sprintf("In my recent role as %s at %s, I focused on %s.", role, recentCompany, highlight)
	line4 := "That experience sharpened my ability to translate ambiguous problems into roadmaps, align stakeholders, and deliver with clear metrics."
	line5 := fmt.Sprintf("I bring strengths in %s and a bias for experimentation, customer-driven decisions, and cross-functional alignment.", topSkills)
	line6 := "I am comfortable partnering with engineering and design to ship iteratively while balancing strategy."
	line7 := fmt.Sprintf("I'd welcome the chance to discuss how I can help %s build and scale %s.", company, inferFocus(posting))
	line8 := "If helpful, I'm available for a quick call and can share concrete examples of the results I've delivered."

	return strings.Join([]string{
		line1 + "\n" + line2,
		line3 + "\n" + line4,
		line5 + "\n" + line6,
		line7 + "\n" + line8 + "\nBest regards,\n" + name,
	}, "\n\n")
}

// inferFocus borrows the posting's first few description words for the
// call-to-action line.
func inferFocus(posting job.Posting) string {
	words := strings.Fields(posting.Description)
	if len(words) >= 4 {
		return strings.TrimRight(strings.Join(words[:4], " "), ".")
	}
	return "customer experiences"
}

// Communication renders a short outreach message. Unknown kinds fall
// back to the email template.
func (s *service) Communication(p resume.Profile, posting job.Posting, kind string) string {
	name := fallbackStr(p.Name, "Applicant")
	title := fallbackStr(posting.Title, "the position")
	company := fallbackStr(posting.Company, "your company")

	switch kind {
	case KindLinkedIn:
		return fmt.Sprintf("Hi! I'm interested in %s at %s. Would love to connect and learn more about the team!", title, company)
	case KindFollowUp:
		return fmt.Sprintf(`Subject: Following Up - %s Application

Dear Hiring Manager,

I wanted to follow up on my application for %s at %s.

I remain very interested in this opportunity and am happy to provide additional information.

Best regards,
%s`, title, title, company, name)
	default:
		return fmt.Sprintf(`Subject: Application for %s

Dear Hiring Manager,

I am writing to express my interest in %s at %s.

%s

I would welcome the opportunity to discuss my qualifications.

Best regards,
%s`, title, title, company,
			fallbackStr(p.Summary, "I have the skills and experience needed for this role."), name)
	}
}

// stripFences unwraps a fenced block when the model insists on
// wrapping the letter in one.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "```") {
		return s
	}
	parts := strings.SplitN(s, "```", 3)
	if len(parts) < 2 {
		return s
	}
	body := strings.TrimSpace(parts[1])
	return strings.TrimSpace(strings.TrimPrefix(body, "json"))
}

func fallbackStr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
