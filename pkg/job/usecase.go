package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/careeragentpro/backend/pkg/llm"
	"github.com/careeragentpro/backend/pkg/nlp"
)

var (
	ErrInvalidURL = errors.New("job: invalid url")
	ErrEmptyText  = errors.New("job: empty text")
)

const (
	minContentLen = 50
	maxTextLen    = 10000
	maxPromptLen  = 5000
)

const extractSystemPrompt = "You are a job posting data extractor. Return only valid JSON, no markdown or explanation."

const extractPromptFormat = `Extract job details from the following text into a structured JSON format.
%s
CONTENT:
%s

Return ONLY valid JSON (no markdown, no explanation) with these fields:
- title: string (job title)
- company: string (company name)
- location: string or null
- salary_range: string or null
- job_type: string or null
- description: string (job description summary)
- requirements: array of strings (job requirements/qualifications)
- responsibilities: array of strings (job duties)

If a field cannot be determined, use a sensible default or null.`

// PageFetcher downloads a page body.
type PageFetcher interface {
	Page(ctx context.Context, rawURL string) (string, error)
}

// Service turns job posting pages and pasted descriptions into
// structured postings.
type Service interface {
	ExtractFromURL(ctx context.Context, rawURL string) (Posting, error)
	AnalyzeText(ctx context.Context, text string) (Posting, error)
}

type service struct {
	pages PageFetcher
	ai    llm.Assistant
	log   *zap.Logger
}

func NewService(pages PageFetcher, ai llm.Assistant, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{pages: pages, ai: ai, log: log}
}

// ExtractFromURL downloads the page, extracts its text and analyzes
// it. Download failures and near-empty pages degrade to a placeholder
// posting that points the user back at the URL; only a malformed URL
// is reported as an error.
func (s *service) ExtractFromURL(ctx context.Context, rawURL string) (Posting, error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Posting{}, ErrInvalidURL
	}

	html, err := s.pages.Page(ctx, rawURL)
	if err != nil {
		s.log.Warn("job page download failed", zap.String("url", rawURL), zap.Error(err))
		return placeholder(rawURL), nil
	}

	text := nlp.ExtractText(html)
	if len(strings.TrimSpace(text)) < minContentLen {
		return placeholder(rawURL), nil
	}
	return s.analyze(ctx, nlp.Truncate(text, maxTextLen), rawURL), nil
}

// AnalyzeText analyzes a pasted job description. Pasted content is
// often copied straight out of a browser, so it goes through the same
// HTML stripping as a downloaded page; plain text passes through with
// only its whitespace collapsed.
func (s *service) AnalyzeText(ctx context.Context, text string) (Posting, error) {
	text = nlp.ExtractText(text)
	if text == "" {
		return Posting{}, ErrEmptyText
	}
	return s.analyze(ctx, nlp.Truncate(text, maxTextLen), ""), nil
}

// analyze always computes the heuristic posting first, then lets the
// model refine it. When the model is unavailable or returns something
// unusable, the heuristic result stands on its own.
func (s *service) analyze(ctx context.Context, text, sourceURL string) Posting {
	base := HeuristicExtract(text, sourceURL)
	if s.ai == nil {
		return base
	}
	refined, ok := s.aiRefine(ctx, text, sourceURL, base)
	if !ok {
		return base
	}
	return refined
}

// aiPosting is the shape the extraction prompt asks for.
type aiPosting struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	SalaryRange      string   `json:"salary_range"`
	JobType          string   `json:"job_type"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
}

func (s *service) aiRefine(ctx context.Context, text, sourceURL string, base Posting) (Posting, bool) {
	urlLine := ""
	if sourceURL != "" {
		urlLine = "URL: " + sourceURL + "\n"
	}
	user := fmt.Sprintf(extractPromptFormat, urlLine, nlp.Truncate(text, maxPromptLen))

	raw, model, err := s.ai.AskModel(ctx, extractSystemPrompt, user)
	if err != nil {
		s.log.Warn("ai job extraction unavailable", zap.Error(err))
		return Posting{}, false
	}

	var data aiPosting
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &data); err != nil {
		s.log.Warn("ai job extraction returned malformed payload", zap.Error(err))
		return Posting{}, false
	}
	if data.Title == "" && data.Company == "" && data.Description == "" {
		return Posting{}, false
	}

	p := base
	overlay(&p.Title, data.Title)
	overlay(&p.Company, data.Company)
	overlay(&p.Location, data.Location)
	overlay(&p.Salary, data.SalaryRange)
	overlay(&p.JobType, data.JobType)
	overlay(&p.Description, data.Description)
	if len(data.Requirements) > 0 {
		p.Requirements = data.Requirements
	}
	if len(data.Responsibilities) > 0 {
		p.Responsibilities = data.Responsibilities
	}
	p.Source = SourceAI
	p.Model = model
	p.Normalize()
	return p, true
}

func overlay(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func placeholder(sourceURL string) Posting {
	return Posting{
		Title:            "Job from URL",
		Company:          "Company",
		Description:      "Please visit the job posting directly: " + sourceURL,
		Requirements:     []string{"See job posting for requirements"},
		Responsibilities: []string{"See job posting for responsibilities"},
		Skills:           []string{},
		URL:              sourceURL,
		Source:           SourceHeuristic,
	}
}
