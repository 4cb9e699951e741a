package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/careeragentpro/backend/pkg/llm"
	"github.com/careeragentpro/backend/pkg/nlp"
)

// ErrEmptyResume is returned when an upload or pasted text contains
// no usable content.
var ErrEmptyResume = errors.New("resume: no text content")

const maxParsePromptLen = 4000

const parseSystemPrompt = "You are a JSON resume parser. Return only valid JSON, no explanation."

const parsePromptFormat = `Parse this resume and return ONLY valid JSON with these fields:
%s

Return JSON: {"name": "", "email": "", "phone": "", "linkedin": "", "website": "", "location": "", "summary": "", "skills": [], "experience": [{"role": "", "company": "", "duration": "", "description": ""}], "education": [{"degree": "", "institution": "", "year": ""}], "projects": [{"name": "", "description": "", "technologies": []}], "certifications": []}`

// Service parses uploaded resume files and pasted resume text into
// structured profiles.
type Service interface {
	ParseUpload(ctx context.Context, filename string, data []byte) (ParseResult, error)
	ParseText(ctx context.Context, text string) (ParseResult, error)
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

func (s *service) ParseUpload(ctx context.Context, filename string, data []byte) (ParseResult, error) {
	text, err := ExtractFileText(filename, data)
	if err != nil {
		return ParseResult{}, err
	}
	return s.ParseText(ctx, text)
}

// ParseText runs the heuristic parser and then lets the model fill in
// what the heuristics missed. Field by field, the longer value wins;
// that keeps a good heuristic hit when the model returns less.
func (s *service) ParseText(ctx context.Context, text string) (ParseResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ParseResult{}, ErrEmptyResume
	}

	result := ParseResult{Profile: HeuristicParse(text), RawText: text, Source: SourceHeuristic}
	if s.ai == nil {
		return result, nil
	}

	aiProfile, model, ok := s.aiParse(ctx, text)
	if !ok {
		return result, nil
	}
	result.Profile = mergeProfiles(result.Profile, aiProfile)
	result.Source = SourceAI
	result.Model = model
	return result, nil
}

func (s *service) aiParse(ctx context.Context, text string) (Profile, string, bool) {
	text = nlp.Truncate(text, maxParsePromptLen)
	raw, model, err := s.ai.AskModel(ctx, parseSystemPrompt, fmt.Sprintf(parsePromptFormat, text))
	if err != nil {
		s.log.Warn("ai resume parsing unavailable", zap.Error(err))
		return Profile{}, "", false
	}

	var p Profile
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &p); err != nil {
		s.log.Warn("ai resume parsing returned malformed payload", zap.Error(err))
		return Profile{}, "", false
	}
	return p, model, true
}

// mergeProfiles overlays ai onto base: strings replace when longer,
// lists replace when they carry more entries.
func mergeProfiles(base, ai Profile) Profile {
	out := base
	mergeString(&out.Name, ai.Name)
	mergeString(&out.Email, ai.Email)
	mergeString(&out.Phone, ai.Phone)
	mergeString(&out.LinkedIn, ai.LinkedIn)
	mergeString(&out.Website, ai.Website)
	mergeString(&out.Location, ai.Location)
	mergeString(&out.Summary, ai.Summary)
	if len(ai.Skills) > len(out.Skills) {
		out.Skills = ai.Skills
	}
	if len(ai.Experience) > len(out.Experience) {
		out.Experience = ai.Experience
	}
	if len(ai.Education) > len(out.Education) {
		out.Education = ai.Education
	}
	if len(ai.Projects) > len(out.Projects) {
		out.Projects = ai.Projects
	}
	if len(ai.Certifications) > len(out.Certifications) {
		out.Certifications = ai.Certifications
	}
	out.Normalize()
	return out
}

func mergeString(dst *string, value string) {
	if len(value) > len(*dst) {
		*dst = value
	}
}
