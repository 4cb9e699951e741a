package job

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPages struct {
	body string
	err  error
	urls []string
}

func (s *stubPages) Page(_ context.Context, rawURL string) (string, error) {
	s.urls = append(s.urls, rawURL)
	return s.body, s.err
}

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

const jobPage = `<html><body>
<h1>Senior Backend Engineer</h1>
<p>Company: Initech</p>
<p>Location: Berlin</p>
<p>Qualifications: several years of Go and PostgreSQL experience required.</p>
<p>You will build and run distributed services.</p>
</body></html>`

func TestExtractFromURLRejectsBadURL(t *testing.T) {
	svc := NewService(&stubPages{}, nil, nil)

	for _, raw := range []string{"", "not a url", "ftp://example.com/job", "/relative/path"} {
		_, err := svc.ExtractFromURL(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidURL, raw)
	}
}

func TestExtractFromURLHeuristicOnly(t *testing.T) {
	pages := &stubPages{body: jobPage}
	svc := NewService(pages, nil, nil)

	p, err := svc.ExtractFromURL(context.Background(), "https://initech.com/jobs/42")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://initech.com/jobs/42"}, pages.urls)
	assert.Equal(t, "Initech", p.Company)
	assert.Equal(t, "Berlin", p.Location)
	assert.Equal(t, SourceHeuristic, p.Source)
	assert.Contains(t, p.Skills, "Go")
}

func TestExtractFromURLDownloadFailureDegrades(t *testing.T) {
	pages := &stubPages{err: errors.New("connection refused")}
	svc := NewService(pages, nil, nil)

	p, err := svc.ExtractFromURL(context.Background(), "https://initech.com/jobs/42")
	require.NoError(t, err)

	assert.Equal(t, "Job from URL", p.Title)
	assert.Contains(t, p.Description, "https://initech.com/jobs/42")
	assert.Equal(t, SourceHeuristic, p.Source)
}

func TestExtractFromURLTinyPageDegrades(t *testing.T) {
	pages := &stubPages{body: "<html><body>Gone</body></html>"}
	svc := NewService(pages, nil, nil)

	p, err := svc.ExtractFromURL(context.Background(), "https://initech.com/jobs/42")
	require.NoError(t, err)

	assert.Equal(t, "Job from URL", p.Title)
	assert.Equal(t, []string{"See job posting for requirements"}, p.Requirements)
}

func TestExtractFromURLAIRefinement(t *testing.T) {
	pages := &stubPages{body: jobPage}
	ai := &stubAssistant{
		text: "```json\n" + `{
			"title": "Senior Backend Engineer (Platform)",
			"company": "Initech GmbH",
			"location": "Berlin, Germany",
			"salary_range": "90-110k EUR",
			"description": "Build the platform.",
			"requirements": ["Go", "PostgreSQL"],
			"responsibilities": ["Own services end to end"]
		}` + "\n```",
		model: "qwen/qwen-2.5-coder-32b-instruct",
	}
	svc := NewService(pages, ai, nil)

	p, err := svc.ExtractFromURL(context.Background(), "https://initech.com/jobs/42")
	require.NoError(t, err)

	assert.Equal(t, 1, ai.calls)
	assert.Contains(t, ai.user, "URL: https://initech.com/jobs/42")
	assert.Equal(t, "Senior Backend Engineer (Platform)", p.Title)
	assert.Equal(t, "Initech GmbH", p.Company)
	assert.Equal(t, "90-110k EUR", p.Salary)
	assert.Equal(t, []string{"Own services end to end"}, p.Responsibilities)
	assert.Equal(t, SourceAI, p.Source)
	assert.Equal(t, "qwen/qwen-2.5-coder-32b-instruct", p.Model)
	// Skills still come from the vocabulary scan.
	assert.Contains(t, p.Skills, "Go")
}

func TestExtractFromURLMalformedAIKeepsHeuristics(t *testing.T) {
	pages := &stubPages{body: jobPage}
	ai := &stubAssistant{text: "Sorry, I cannot help with that."}
	svc := NewService(pages, ai, nil)

	p, err := svc.ExtractFromURL(context.Background(), "https://initech.com/jobs/42")
	require.NoError(t, err)

	assert.Equal(t, 1, ai.calls)
	assert.Equal(t, SourceHeuristic, p.Source)
	assert.Equal(t, "Initech", p.Company)
}

func TestExtractFromURLAIErrorKeepsHeuristics(t *testing.T) {
	pages := &stubPages{body: jobPage}
	ai := &stubAssistant{err: errors.New("all models exhausted")}
	svc := NewService(pages, ai, nil)

	p, err := svc.ExtractFromURL(context.Background(), "https://initech.com/jobs/42")
	require.NoError(t, err)
	assert.Equal(t, SourceHeuristic, p.Source)
}

func TestAnalyzeTextEmpty(t *testing.T) {
	svc := NewService(&stubPages{}, nil, nil)

	_, err := svc.AnalyzeText(context.Background(), "   \n\t ")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestAnalyzeTextHeuristics(t *testing.T) {
	svc := NewService(&stubPages{}, nil, nil)

	text := "Position: Data Engineer\nCompany: Acme\nMust have strong SQL and Python skills."
	p, err := svc.AnalyzeText(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", p.Title)
	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, []string{"Python", "SQL"}, p.Skills)
	assert.Empty(t, p.URL)
}

func TestAnalyzeTextStripsHTML(t *testing.T) {
	svc := NewService(&stubPages{}, nil, nil)

	// Pasted from a browser: the markup must not defeat the
	// line-anchored field patterns.
	p, err := svc.AnalyzeText(context.Background(), jobPage)
	require.NoError(t, err)

	assert.Equal(t, "Initech", p.Company)
	assert.Equal(t, "Berlin", p.Location)
	assert.Contains(t, p.Skills, "Go")
	assert.NotContains(t, p.Description, "<p>")
	assert.NotContains(t, p.Description, "<html>")
}

func TestAnalyzeTextPromptOmitsURLLine(t *testing.T) {
	ai := &stubAssistant{text: `{"title":"Data Engineer","company":"Acme","description":"d"}`}
	svc := NewService(&stubPages{}, ai, nil)

	_, err := svc.AnalyzeText(context.Background(), "Position: Data Engineer at Acme, Python required please")
	require.NoError(t, err)

	assert.False(t, strings.Contains(ai.user, "URL:"), ai.user)
}
