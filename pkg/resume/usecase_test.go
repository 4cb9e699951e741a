package resume

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssistant struct {
	text  string
	model string
	err   error
	calls int
	user  string
}

func (s *stubAssistant) AskModel(_ context.Context, _, user string) (string, string, error) {
	s.calls++
	s.user = user
	return s.text, s.model, s.err
}

func TestParseTextEmpty(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.ParseText(context.Background(), "  \n ")
	assert.ErrorIs(t, err, ErrEmptyResume)
}

func TestParseTextHeuristicOnly(t *testing.T) {
	svc := NewService(nil, nil)

	got, err := svc.ParseText(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, SourceHeuristic, got.Source)
	assert.Empty(t, got.Model)
	assert.Equal(t, "Jane Smith", got.Profile.Name)
}

func TestParseTextAIMerge(t *testing.T) {
	ai := &stubAssistant{
		text: "```json\n" + `{
			"name": "Jane Elizabeth Smith",
			"summary": "Backend engineer with eight years of experience building payment systems at scale.",
			"skills": ["Go", "Python", "SQL", "Docker", "Kubernetes", "Terraform"],
			"experience": [
				{"role": "Senior Software Engineer", "company": "Acme Payments", "duration": "2020 - Present", "description": "Settlement pipeline."},
				{"role": "Software Engineer", "company": "Initech", "duration": "2016 - 2019", "description": "Billing tools."},
				{"role": "Intern", "company": "Globex", "duration": "2015", "description": "Tooling."}
			]
		}` + "\n```",
		model: "qwen/qwen-2.5-coder-32b-instruct",
	}
	svc := NewService(ai, nil)

	got, err := svc.ParseText(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, 1, ai.calls)
	assert.Equal(t, SourceAI, got.Source)
	assert.Equal(t, "qwen/qwen-2.5-coder-32b-instruct", got.Model)

	// Longer values win the merge.
	assert.Equal(t, "Jane Elizabeth Smith", got.Profile.Name)
	assert.Len(t, got.Profile.Experience, 3)
	assert.Len(t, got.Profile.Skills, 6)
	// The heuristic email survives because the model returned none.
	assert.Equal(t, "jane.smith@example.com", got.Profile.Email)
	// The heuristic education survives because the model returned fewer entries.
	require.Len(t, got.Profile.Education, 1)
	assert.Equal(t, "Stanford University", got.Profile.Education[0].Institution)
}

func TestParseTextMalformedAIKeepsHeuristics(t *testing.T) {
	ai := &stubAssistant{text: "I am sorry, I cannot parse resumes."}
	svc := NewService(ai, nil)

	got, err := svc.ParseText(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, SourceHeuristic, got.Source)
	assert.Equal(t, "Jane Smith", got.Profile.Name)
}

func TestParseTextAIErrorKeepsHeuristics(t *testing.T) {
	ai := &stubAssistant{err: errors.New("all models exhausted")}
	svc := NewService(ai, nil)

	got, err := svc.ParseText(context.Background(), sampleResume)
	require.NoError(t, err)
	assert.Equal(t, SourceHeuristic, got.Source)
}

func TestParseTextPromptTruncated(t *testing.T) {
	ai := &stubAssistant{text: `{"name":"X"}`}
	svc := NewService(ai, nil)

	long := "Jane Smith\n" + strings.Repeat("experience line\n", 1000)
	_, err := svc.ParseText(context.Background(), long)
	require.NoError(t, err)

	assert.Less(t, len(ai.user), maxParsePromptLen+500)
}

func TestParseUploadUnsupportedFormat(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.ParseUpload(context.Background(), "resume.odt", []byte("data"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseUploadPlainText(t *testing.T) {
	svc := NewService(nil, nil)

	got, err := svc.ParseUpload(context.Background(), "resume.txt", []byte(sampleResume))
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.Profile.Name)
	assert.Equal(t, "jane.smith@example.com", got.Profile.Email)
}
