package letter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careeragentpro/backend/pkg/job"
	"github.com/careeragentpro/backend/pkg/resume"
)

type stubAssistant struct {
	text  string
	model string
	err   error
	calls int
}

func (s *stubAssistant) AskModel(_ context.Context, _, _ string) (string, string, error) {
	s.calls++
	return s.text, s.model, s.err
}

func fixtureProfile() resume.Profile {
	return resume.Profile{
		Name:    "Jane Smith",
		Summary: "Backend engineer focused on payment infrastructure.",
		Skills:  []string{"Go", "PostgreSQL", "Docker", "Kubernetes"},
		Experience: []resume.ExperienceEntry{
			{Role: "Senior Engineer", Company: "Acme Payments"},
		},
	}
}

func fixturePosting() job.Posting {
	return job.Posting{
		Title:       "Platform Engineer",
		Company:     "Initech",
		Description: "Build and run the payments platform used by thousands of merchants.",
	}
}

func TestCoverFallbackStructure(t *testing.T) {
	svc := NewService(nil, nil)

	letter := svc.Cover(context.Background(), fixtureProfile(), fixturePosting())

	assert.Equal(t, SourceHeuristic, letter.Source)
	paragraphs := strings.Split(letter.Text, "\n\n")
	require.Len(t, paragraphs, 4)

	assert.Contains(t, paragraphs[0], "Platform Engineer opening at Initech")
	assert.Contains(t, paragraphs[0], "Go, PostgreSQL")
	assert.Contains(t, paragraphs[1], "Senior Engineer at Acme Payments")
	assert.Contains(t, paragraphs[2], "Go, PostgreSQL, Docker")
	assert.Contains(t, paragraphs[3], "build and scale Build and run the")
	assert.True(t, strings.HasSuffix(letter.Text, "Best regards,\nJane Smith"))
}

func TestCoverFallbackDefaults(t *testing.T) {
	svc := NewService(nil, nil)

	letter := svc.Cover(context.Background(), resume.Profile{}, job.Posting{})

	assert.Contains(t, letter.Text, "the position opening at your company")
	assert.Contains(t, letter.Text, "customer outcomes and operational excellence")
	assert.Contains(t, letter.Text, "a recent role")
	assert.Contains(t, letter.Text, "build and scale customer experiences")
	assert.True(t, strings.HasSuffix(letter.Text, "Best regards,\nApplicant"))
}

func TestCoverUsesAI(t *testing.T) {
	ai := &stubAssistant{
		text:  "Dear team,\n\nI want this job.\n\nSincerely,\nJane",
		model: "qwen/qwen-2.5-coder-32b-instruct",
	}
	svc := NewService(ai, nil)

	letter := svc.Cover(context.Background(), fixtureProfile(), fixturePosting())

	assert.Equal(t, 1, ai.calls)
	assert.Equal(t, SourceAI, letter.Source)
	assert.Equal(t, "qwen/qwen-2.5-coder-32b-instruct", letter.Model)
	assert.Equal(t, ai.text, letter.Text)
}

func TestCoverUnwrapsFencedResponse(t *testing.T) {
	ai := &stubAssistant{text: "```\nDear team, here is the letter.\n```"}
	svc := NewService(ai, nil)

	letter := svc.Cover(context.Background(), fixtureProfile(), fixturePosting())

	assert.Equal(t, SourceAI, letter.Source)
	assert.Equal(t, "Dear team, here is the letter.", letter.Text)
}

func TestCoverAIFailureFallsBack(t *testing.T) {
	cases := map[string]*stubAssistant{
		"error":     {err: errors.New("all models exhausted")},
		"empty":     {text: "   "},
		"barefence": {text: "``````"},
	}
	for name, ai := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewService(ai, nil)
			letter := svc.Cover(context.Background(), fixtureProfile(), fixturePosting())
			assert.Equal(t, SourceHeuristic, letter.Source)
			assert.Contains(t, letter.Text, "I was excited to see")
		})
	}
}

func TestCommunicationEmail(t *testing.T) {
	svc := NewService(nil, nil)

	msg := svc.Communication(fixtureProfile(), fixturePosting(), KindEmail)

	assert.True(t, strings.HasPrefix(msg, "Subject: Application for Platform Engineer"))
	assert.Contains(t, msg, "Backend engineer focused on payment infrastructure.")
	assert.True(t, strings.HasSuffix(msg, "Best regards,\nJane Smith"))
}

func TestCommunicationLinkedIn(t *testing.T) {
	svc := NewService(nil, nil)

	msg := svc.Communication(fixtureProfile(), fixturePosting(), KindLinkedIn)

	assert.Equal(t, "Hi! I'm interested in Platform Engineer at Initech. Would love to connect and learn more about the team!", msg)
}

func TestCommunicationFollowUp(t *testing.T) {
	svc := NewService(nil, nil)

	msg := svc.Communication(fixtureProfile(), fixturePosting(), KindFollowUp)

	assert.True(t, strings.HasPrefix(msg, "Subject: Following Up - Platform Engineer Application"))
	assert.Contains(t, msg, "follow up on my application")
}

func TestCommunicationUnknownKindUsesEmail(t *testing.T) {
	svc := NewService(nil, nil)

	msg := svc.Communication(fixtureProfile(), fixturePosting(), "carrier_pigeon")

	assert.True(t, strings.HasPrefix(msg, "Subject: Application for"))
}

func TestCommunicationDefaultsWithoutSummary(t *testing.T) {
	svc := NewService(nil, nil)

	msg := svc.Communication(resume.Profile{}, job.Posting{}, KindEmail)

	assert.Contains(t, msg, "I have the skills and experience needed for this role.")
	assert.Contains(t, msg, "the position at your company")
}
